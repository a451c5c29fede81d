// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"cogentcore.org/nodetable/colors"
	"cogentcore.org/nodetable/host"
)

// Editor is an editor opened on a cell. Editors are plain
// descriptions of the fields a UI shows, holding the value
// being edited.
type Editor interface {

	// Value returns the current value of the editor.
	Value() (any, error)

	// SetValue sets the editor to the given value.
	SetValue(value any) error

	// Geometry returns the rectangle covered by the editor.
	Geometry() image.Rectangle

	// SetGeometry sets the rectangle covered by the editor.
	SetGeometry(r image.Rectangle)
}

// Box is the geometry of an [Editor], embedded by all editors.
type Box struct {
	rect image.Rectangle
}

// Geometry returns the rectangle covered by the editor.
func (b *Box) Geometry() image.Rectangle { return b.rect }

// SetGeometry sets the rectangle covered by the editor.
func (b *Box) SetGeometry(r image.Rectangle) { b.rect = r }

// ComboBox is a drop-down list of strings.
type ComboBox struct {
	Box

	// Items are the strings to choose from.
	Items []string

	// Current is the index of the chosen item, or -1.
	Current int
}

// NewComboBox returns a new [ComboBox] with the given items
// and nothing chosen.
func NewComboBox(items []string) *ComboBox {
	return &ComboBox{Items: items, Current: -1}
}

// CurrentText returns the chosen item, or "".
func (cb *ComboBox) CurrentText() string {
	if cb.Current < 0 || cb.Current >= len(cb.Items) {
		return ""
	}
	return cb.Items[cb.Current]
}

// Value returns the chosen item.
func (cb *ComboBox) Value() (any, error) {
	if cb.Current < 0 || cb.Current >= len(cb.Items) {
		return nil, fmt.Errorf("%w: no item chosen", host.ErrType)
	}
	return cb.Items[cb.Current], nil
}

// SetValue chooses the given string item.
func (cb *ComboBox) SetValue(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %T for combo box", host.ErrType, value)
	}
	idx := slices.Index(cb.Items, s)
	if idx < 0 {
		return fmt.Errorf("%w: %q is not one of %v", host.ErrType, s, cb.Items)
	}
	cb.Current = idx
	return nil
}

// LineEditor is a single line text field for
// values of the given kind.
type LineEditor struct {
	Box

	// Kind is the kind of the edited value.
	Kind host.Kind

	// Text is the current text.
	Text string
}

// Value returns the text parsed as a value of the kind.
func (le *LineEditor) Value() (any, error) {
	return host.Parse(le.Kind, le.Text)
}

// SetValue sets the text to the formatted value.
func (le *LineEditor) SetValue(value any) error {
	le.Text = host.FormatValue(value)
	return nil
}

// ArrayEditor is a grid of numeric fields.
type ArrayEditor struct {
	Box

	// Values are the values of the fields.
	Values []float64

	// Rows is the number of rows of the grid; fields
	// fill the rows in order.
	Rows int

	// Decimals is the precision of the fields.
	Decimals int
}

// NewArrayEditor returns a new [ArrayEditor] with the given
// number of fields in the given number of rows.
func NewArrayEditor(length, rows, decimals int) *ArrayEditor {
	return &ArrayEditor{Values: make([]float64, length), Rows: max(rows, 1), Decimals: decimals}
}

// Columns returns the number of columns of the grid.
func (ae *ArrayEditor) Columns() int {
	return (len(ae.Values) + ae.Rows - 1) / ae.Rows
}

// Position returns the row and column of the given field.
func (ae *ArrayEditor) Position(i int) (row, col int) {
	cols := max(ae.Columns(), 1)
	return i / cols, i % cols
}

// Value returns a copy of the values.
func (ae *ArrayEditor) Value() (any, error) {
	return slices.Clone(ae.Values), nil
}

// SetValue sets the fields to the given numbers, rounded to the
// precision. A single number sets the first field.
func (ae *ArrayEditor) SetValue(value any) error {
	fs, ok := host.ToFloats(value)
	if !ok {
		return fmt.Errorf("%w: %T for array editor", host.ErrType, value)
	}
	if len(fs) > len(ae.Values) {
		return fmt.Errorf("%w: %d values for %d fields", host.ErrType, len(fs), len(ae.Values))
	}
	for i, f := range fs {
		ae.Values[i] = ae.round(f)
	}
	return nil
}

// SetAt sets the field of the given index.
func (ae *ArrayEditor) SetAt(i int, v float64) error {
	if i < 0 || i >= len(ae.Values) {
		return fmt.Errorf("field %d: %w", i, host.ErrIndex)
	}
	ae.Values[i] = ae.round(v)
	return nil
}

func (ae *ArrayEditor) round(v float64) float64 {
	if ae.Decimals <= 0 || ae.Decimals > 15 {
		return v
	}
	p := math.Pow10(ae.Decimals)
	return math.Round(v*p) / p
}

// ColorEditor is an [ArrayEditor] of color channels
// with a button picking a color.
type ColorEditor struct {
	ArrayEditor
}

// NewColorEditor returns a new [ColorEditor] with
// the given number of channels.
func NewColorEditor(channels, decimals int) *ColorEditor {
	return &ColorEditor{ArrayEditor: *NewArrayEditor(channels, 1, decimals)}
}

// Swatch returns the color shown on the pick button.
func (ce *ColorEditor) Swatch() color.Color {
	return colors.FromFloats(ce.Values...).NRGBA()
}

// Pick opens the color picker of the host, seeded with the current
// color, and sets the editor to the picked color. It returns false
// if the user cancelled, leaving the editor unchanged.
func (ce *ColorEditor) Pick(h host.Host) bool {
	picked, ok := h.PickColor(colors.PackFloats(ce.Values...))
	if !ok {
		return false
	}
	ch := colors.UnpackFloats(picked)
	n := min(len(ce.Values), len(ch))
	for i := range n {
		ce.Values[i] = ce.round(ch[i])
	}
	return true
}

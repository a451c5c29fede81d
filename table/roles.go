// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "strings"

// Role is the kind of data requested from a cell or header.
type Role int32

const (
	// Display is the human readable string of a value.
	Display Role = iota

	// Edit is the native value used to seed an editor,
	// with the Go type given by the knob kind.
	Edit

	// CheckState is the bool state of a boolean knob.
	CheckState

	// Background is the [image/color.Color] of the cell background.
	Background

	// Foreground is the [image/color.Color] of the text, for headers.
	Foreground

	// KnobRole is the [host.Knob] of a cell or column header.
	KnobRole

	// NodeRole is the [host.Node] of a row header.
	NodeRole
)

// Orientation is the orientation of a header.
type Orientation int32

const (
	// Horizontal is the column header, holding knob names.
	Horizontal Orientation = iota

	// Vertical is the row header, holding node names.
	Vertical
)

// Flags are the interaction flags of a cell.
type Flags int32

const (
	// NoFlags is a cell that can not be interacted with.
	NoFlags Flags = 0

	// Selectable is a cell that can be selected.
	Selectable Flags = 1 << iota

	// Editable is a cell whose value can be edited.
	Editable

	// Checkable is a cell with a check box.
	Checkable

	// Enabled is a cell that is enabled.
	Enabled
)

// Has returns whether all of the given flags are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// String returns the names of the set flags, joined by "|".
func (f Flags) String() string {
	if f == NoFlags {
		return "NoFlags"
	}
	var s []string
	for i, nm := range []string{"Selectable", "Editable", "Checkable", "Enabled"} {
		if f.Has(Selectable << i) {
			s = append(s, nm)
		}
	}
	return strings.Join(s, "|")
}

// ChangeKinds are the kinds of [Change] notifications.
type ChangeKinds int32

const (
	// Reset is sent when the rows were replaced; all indexes are invalid.
	Reset ChangeKinds = iota

	// RowsRemoved is sent after the rows First through Last were removed.
	RowsRemoved

	// CellChanged is sent after the value of the cell at Row, Column
	// was written.
	CellChanged
)

// Change is a change notification sent to the functions
// registered with OnChange.
type Change struct {
	Kind ChangeKinds

	// First and Last are the inclusive range of removed rows.
	First, Last int

	// Row and Column are the changed cell.
	Row, Column int
}

// Cells is a table of cells with row and column headers,
// implemented by [Model] and by filtered views onto it.
// Editors and edit propagation work on Cells, so that they
// can operate on any stage of a filter pipeline.
type Cells interface {

	// NumRows returns the number of rows.
	NumRows() int

	// NumColumns returns the number of columns.
	NumColumns() int

	// RowName returns the name of the node of the given row.
	RowName(row int) string

	// ColumnName returns the knob name of the given column.
	ColumnName(col int) string

	// Data returns the data of the given cell for the given role,
	// or nil if there is none.
	Data(row, col int, role Role) any

	// SetData writes the given value to the knob of the given cell,
	// returning whether it succeeded.
	SetData(row, col int, value any) bool

	// Flags returns the interaction flags of the given cell.
	Flags(row, col int) Flags

	// HeaderData returns the data of the given row or column header.
	HeaderData(section int, orientation Orientation, role Role) any

	// OnChange adds a function that is called on every [Change].
	OnChange(fun func(c Change))
}

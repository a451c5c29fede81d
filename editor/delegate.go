// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package editor chooses and drives the editor of a cell of the
// node table, according to the [Capabilities] of the kind of its
// knob, and translates between knob values and editor values.
package editor

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/nodetable/base/errors"
	"cogentcore.org/nodetable/config"
	"cogentcore.org/nodetable/host"
	"cogentcore.org/nodetable/table"
)

// Delegate opens and commits the editors of cells.
type Delegate struct {

	// Host is the host of the knobs.
	Host host.Host

	// Config is the configuration for editor layout and precision.
	Config *config.Config
}

// NewDelegate returns a new [Delegate]. If cfg is nil,
// the [config.Default] configuration is used.
func NewDelegate(h host.Host, cfg *config.Config) *Delegate {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Delegate{Host: h, Config: cfg}
}

// knob returns the knob and edit value of the given cell.
func knob(m table.Cells, row, col int) (host.Knob, any, bool) {
	k, ok := m.Data(row, col, table.KnobRole).(host.Knob)
	if !ok {
		return nil, nil, false
	}
	return k, m.Data(row, col, table.Edit), true
}

// CreateEditor returns a new editor for the given cell, or nil if
// the cell is not editable or is edited in place, as booleans are.
func (d *Delegate) CreateEditor(m table.Cells, row, col int) Editor {
	if !m.Flags(row, col).Has(table.Editable) {
		return nil
	}
	k, value, ok := knob(m, row, col)
	if !ok {
		return nil
	}
	c := CapabilityFor(k.Kind())
	if c.Build == nil {
		return nil
	}
	return c.Build(d, k, value)
}

// SetEditorData sets the editor to the value of the given cell.
func (d *Delegate) SetEditorData(ed Editor, m table.Cells, row, col int) error {
	k, value, ok := knob(m, row, col)
	if !ok {
		return fmt.Errorf("cell %d, %d: %w", row, col, host.ErrGone)
	}
	if c := CapabilityFor(k.Kind()); c.Seed != nil {
		value = c.Seed(d, k, value)
	}
	return ed.SetValue(value)
}

// Commit returns the value to write to the given cell from the editor.
func (d *Delegate) Commit(ed Editor, m table.Cells, row, col int) (any, error) {
	k, _, ok := knob(m, row, col)
	if !ok {
		return nil, fmt.Errorf("cell %d, %d: %w", row, col, host.ErrGone)
	}
	if c := CapabilityFor(k.Kind()); c.Commit != nil {
		return c.Commit(d, k, ed)
	}
	return ed.Value()
}

// SetModelData writes the value of the editor to the given cell,
// returning whether it succeeded.
func (d *Delegate) SetModelData(ed Editor, m table.Cells, row, col int) bool {
	v, err := d.Commit(ed, m, row, col)
	if err != nil {
		errors.Warn(err, "row", row, "column", col)
		return false
	}
	return m.SetData(row, col, v)
}

// UpdateGeometry sets the geometry of the editor from the given
// cell rectangle, making room for all fields of array editors,
// and returns it.
func (d *Delegate) UpdateGeometry(ed Editor, m table.Cells, row, col int, r image.Rectangle) image.Rectangle {
	if k, value, ok := knob(m, row, col); ok {
		if c := CapabilityFor(k.Kind()); c.Geometry != nil {
			r = c.Geometry(d, k, value, col, r)
		}
	}
	ed.SetGeometry(r)
	return r
}

// Toggle flips the check state of the given boolean cell,
// returning whether it succeeded.
func (d *Delegate) Toggle(m table.Cells, row, col int) bool {
	f := m.Flags(row, col)
	if !f.Has(table.Checkable | table.Editable) {
		return false
	}
	checked, ok := m.Data(row, col, table.CheckState).(bool)
	if !ok {
		return false
	}
	slog.Debug("toggle", "row", row, "column", col, "checked", !checked)
	return m.SetData(row, col, !checked)
}

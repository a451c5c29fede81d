// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package multiedit propagates the edit of one cell to all other
// selected cells whose knobs have the same kind.
package multiedit

import (
	"log/slog"

	"cogentcore.org/nodetable/host"
	"cogentcore.org/nodetable/table"
)

// Cell is the position of a cell.
type Cell struct {
	Row, Column int
}

// Range is a rectangle of selected cells, with inclusive bounds.
type Range struct {
	Top, Left, Bottom, Right int
}

// Contains returns whether the range contains the given cell.
func (r Range) Contains(c Cell) bool {
	return c.Row >= r.Top && c.Row <= r.Bottom && c.Column >= r.Left && c.Column <= r.Right
}

// Selection is the list of selected ranges.
type Selection []Range

// Cells returns the selected cells, in range order and row major
// order within each range, without duplicates.
func (s Selection) Cells() []Cell {
	var cells []Cell
	seen := map[Cell]bool{}
	for _, r := range s {
		for row := r.Top; row <= r.Bottom; row++ {
			for col := r.Left; col <= r.Right; col++ {
				c := Cell{row, col}
				if !seen[c] {
					seen[c] = true
					cells = append(cells, c)
				}
			}
		}
	}
	return cells
}

// Result counts the cells an edit was propagated to.
type Result struct {

	// Applied is the number of cells that were written.
	Applied int

	// Failed is the number of cells whose write failed.
	Failed int

	// Skipped is the number of cells without a knob of the same kind.
	Skipped int
}

// target is a selected cell named by its node and knob, which stays
// valid while rows are removed from the table.
type target struct {
	node, knob string
}

// locate returns the current cell of the target, and false if its
// node or knob is no longer in the table.
func (t target) locate(m table.Cells) (Cell, bool) {
	c := Cell{-1, -1}
	for row := range m.NumRows() {
		if m.RowName(row) == t.node {
			c.Row = row
			break
		}
	}
	for col := range m.NumColumns() {
		if m.ColumnName(col) == t.knob {
			c.Column = col
			break
		}
	}
	return c, c.Row >= 0 && c.Column >= 0
}

// Commit writes the edit value of the current cell, which has just
// been edited, to every other selected cell whose knob has the same
// kind. The selected cells are resolved to their nodes and knobs
// before anything is read, so rows removed along the way do not shift
// the edit onto unselected nodes. Failed writes are counted and the
// remaining cells are still written; nothing is rolled back.
func Commit(m table.Cells, current Cell, sel Selection) Result {
	var res Result
	cur := target{m.RowName(current.Row), m.ColumnName(current.Column)}
	var targets []target
	seen := map[target]bool{cur: true}
	for _, c := range sel.Cells() {
		t := target{m.RowName(c.Row), m.ColumnName(c.Column)}
		if c == current || seen[t] {
			continue
		}
		seen[t] = true
		targets = append(targets, t)
	}

	edited, ok := m.Data(current.Row, current.Column, table.KnobRole).(host.Knob)
	if !ok {
		return res
	}
	value := m.Data(current.Row, current.Column, table.Edit)
	for _, t := range targets {
		c, ok := t.locate(m)
		if !ok {
			res.Skipped++
			continue
		}
		k, ok := m.Data(c.Row, c.Column, table.KnobRole).(host.Knob)
		if !ok || k.Kind() != edited.Kind() {
			res.Skipped++
			continue
		}
		if m.SetData(c.Row, c.Column, value) {
			res.Applied++
		} else {
			res.Failed++
		}
	}
	if res.Failed > 0 {
		slog.Warn("could not propagate edit to all cells", "knob", edited.Name(), "applied", res.Applied, "failed", res.Failed)
	}
	return res
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"slices"

	"cogentcore.org/nodetable/host"
)

// Source is the data that stages filter, implemented by [table.Model].
// Its accessors never remove rows.
type Source interface {
	NumRows() int
	NumColumns() int
	RowName(row int) string
	ColumnName(col int) string
	RowNode(row int) (host.Node, bool)
	ColumnKnob(col int) (host.Knob, bool)
	HasKnob(row int, name string) bool
}

// View is a filtered view onto a [Source], as the indexes of the
// visible rows and columns of the source, in source order.
type View struct {
	Rows    []int
	Columns []int
}

// All returns the view of all rows and columns of the given source.
func All(src Source) View {
	v := View{Rows: make([]int, src.NumRows()), Columns: make([]int, src.NumColumns())}
	for i := range v.Rows {
		v.Rows[i] = i
	}
	for i := range v.Columns {
		v.Columns[i] = i
	}
	return v
}

// Stage is one stage of a [Pipeline]: a pure function narrowing
// the rows or columns of a view.
type Stage interface {
	Filter(src Source, v View) View
}

// keep returns the indexes for which the given function returns true,
// without modifying the given slice.
func keep(indexes []int, fun func(idx int) bool) []int {
	ix := slices.Clone(indexes)
	for i := len(ix) - 1; i >= 0; i-- { // always go in reverse for filtering
		if !fun(ix[i]) {
			ix = append(ix[:i], ix[i+1:]...)
		}
	}
	return ix
}

// StateStage removes the columns of hidden and disabled knobs,
// unless they are shown. The state of a column is that of its
// knob on the first node having it.
type StateStage struct {
	ShowHidden   bool
	ShowDisabled bool
}

func (s StateStage) Filter(src Source, v View) View {
	v.Columns = keep(v.Columns, func(col int) bool {
		k, ok := src.ColumnKnob(col)
		if !ok {
			return false
		}
		return (s.ShowHidden || k.Visible()) && (s.ShowDisabled || k.Enabled())
	})
	return v
}

// ClassStage keeps the rows whose node class matches the list.
type ClassStage struct {
	Classes List
}

func (s ClassStage) Filter(src Source, v View) View {
	if len(s.Classes) == 0 {
		return v
	}
	v.Rows = keep(v.Rows, func(row int) bool {
		n, ok := src.RowNode(row)
		return ok && s.Classes.Match(n.Class())
	})
	return v
}

// NameStage keeps the rows whose node name matches the list.
type NameStage struct {
	Names List
}

func (s NameStage) Filter(src Source, v View) View {
	if len(s.Names) == 0 {
		return v
	}
	v.Rows = keep(v.Rows, func(row int) bool {
		return s.Names.Match(src.RowName(row))
	})
	return v
}

// KnobNameStage keeps the columns whose knob name matches the list.
type KnobNameStage struct {
	Knobs List
}

func (s KnobNameStage) Filter(src Source, v View) View {
	if len(s.Knobs) == 0 {
		return v
	}
	v.Columns = keep(v.Columns, func(col int) bool {
		return s.Knobs.Match(src.ColumnName(col))
	})
	return v
}

// EmptyColumnStage removes the columns that none of the rows
// of the view have a knob for. It must come after all row stages.
type EmptyColumnStage struct{}

func (s EmptyColumnStage) Filter(src Source, v View) View {
	v.Columns = keep(v.Columns, func(col int) bool {
		name := src.ColumnName(col)
		return slices.ContainsFunc(v.Rows, func(row int) bool {
			return src.HasKnob(row, name)
		})
	})
	return v
}

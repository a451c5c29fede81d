// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filter provides the filtered view of the node table:
// a [Pipeline] of [Stage]s narrowing the rows and columns of a
// [table.Model] by knob state, node class, node name and knob name,
// and finally removing the columns that are empty for the remaining
// rows.
package filter

import (
	"log/slog"
	"slices"

	"cogentcore.org/nodetable/config"
	"cogentcore.org/nodetable/table"
)

// Model is the source of a [Pipeline].
type Model interface {
	Source
	table.Cells
}

// State is the state of all filters.
type State struct {

	// Classes, Names and Knobs are the delimiter separated
	// class, node name and knob name filters.
	Classes string
	Names   string
	Knobs   string

	// ShowHidden includes the columns of hidden knobs.
	ShowHidden bool

	// ShowDisabled includes the columns of disabled knobs.
	ShowDisabled bool
}

// Pipeline is the filtered view of a [Model], computed by applying
// its stages in order to the full view of the source. The view is
// recomputed from scratch by [Pipeline.Invalidate], which every
// setter calls, and whenever the rows of the source change.
// Pipeline implements [table.Cells] in view coordinates.
type Pipeline struct {

	// Source is the model being filtered.
	Source Model

	// Delimiter separates the terms of the filter lists.
	Delimiter string

	state    State
	view     View
	onChange []func(c table.Change)
}

// New returns a new [Pipeline] for the given source, using the
// delimiter of the given configuration, or the default one if nil.
func New(src Model, cfg *config.Config) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	p := &Pipeline{Source: src, Delimiter: cfg.Delimiter}
	src.OnChange(p.sourceChanged)
	p.Invalidate()
	return p
}

// Stages returns the stages for the current state, in the order
// they are applied: knob state, class, name, knob name, and
// empty columns last, so that it sees the rows left by the others.
func (p *Pipeline) Stages() []Stage {
	return []Stage{
		StateStage{ShowHidden: p.state.ShowHidden, ShowDisabled: p.state.ShowDisabled},
		ClassStage{Classes: ParseList(p.state.Classes, p.Delimiter)},
		NameStage{Names: ParseList(p.state.Names, p.Delimiter)},
		KnobNameStage{Knobs: ParseList(p.state.Knobs, p.Delimiter)},
		EmptyColumnStage{},
	}
}

// Invalidate recomputes the view and sends a [table.Reset] change.
func (p *Pipeline) Invalidate() {
	v := All(p.Source)
	for _, s := range p.Stages() {
		v = s.Filter(p.Source, v)
	}
	p.view = v
	slog.Debug("filtered", "rows", len(v.Rows), "columns", len(v.Columns))
	p.send(table.Change{Kind: table.Reset})
}

func (p *Pipeline) sourceChanged(c table.Change) {
	if c.Kind != table.CellChanged {
		p.Invalidate()
		return
	}
	row := slices.Index(p.view.Rows, c.Row)
	col := slices.Index(p.view.Columns, c.Column)
	if row < 0 || col < 0 {
		return
	}
	p.send(table.Change{Kind: table.CellChanged, Row: row, Column: col})
}

func (p *Pipeline) send(c table.Change) {
	for _, fun := range p.onChange {
		fun(c)
	}
}

// State returns the current filter state.
func (p *Pipeline) State() State { return p.state }

// SetState sets the whole filter state.
func (p *Pipeline) SetState(s State) {
	p.state = s
	p.Invalidate()
}

// SetClassFilter sets the class filter list.
func (p *Pipeline) SetClassFilter(s string) {
	p.state.Classes = s
	p.Invalidate()
}

// SetNameFilter sets the node name filter list.
func (p *Pipeline) SetNameFilter(s string) {
	p.state.Names = s
	p.Invalidate()
}

// SetKnobFilter sets the knob name filter list.
func (p *Pipeline) SetKnobFilter(s string) {
	p.state.Knobs = s
	p.Invalidate()
}

// SetShowHidden sets whether the columns of hidden knobs are shown.
func (p *Pipeline) SetShowHidden(show bool) {
	p.state.ShowHidden = show
	p.Invalidate()
}

// SetShowDisabled sets whether the columns of disabled knobs are shown.
func (p *Pipeline) SetShowDisabled(show bool) {
	p.state.ShowDisabled = show
	p.Invalidate()
}

// View returns a copy of the current view.
func (p *Pipeline) View() View {
	return View{Rows: slices.Clone(p.view.Rows), Columns: slices.Clone(p.view.Columns)}
}

// SourceRow returns the source row of the given row, or -1.
func (p *Pipeline) SourceRow(row int) int {
	if row < 0 || row >= len(p.view.Rows) {
		return -1
	}
	return p.view.Rows[row]
}

// SourceColumn returns the source column of the given column, or -1.
func (p *Pipeline) SourceColumn(col int) int {
	if col < 0 || col >= len(p.view.Columns) {
		return -1
	}
	return p.view.Columns[col]
}

// NumRows returns the number of visible rows.
func (p *Pipeline) NumRows() int { return len(p.view.Rows) }

// NumColumns returns the number of visible columns.
func (p *Pipeline) NumColumns() int { return len(p.view.Columns) }

// RowName returns the node name of the given row.
func (p *Pipeline) RowName(row int) string {
	return p.Source.RowName(p.SourceRow(row))
}

// ColumnName returns the knob name of the given column.
func (p *Pipeline) ColumnName(col int) string {
	return p.Source.ColumnName(p.SourceColumn(col))
}

// ColumnNames returns the knob names of all visible columns.
func (p *Pipeline) ColumnNames() []string {
	names := make([]string, len(p.view.Columns))
	for i, col := range p.view.Columns {
		names[i] = p.Source.ColumnName(col)
	}
	return names
}

// RowNames returns the node names of all visible rows.
func (p *Pipeline) RowNames() []string {
	names := make([]string, len(p.view.Rows))
	for i, row := range p.view.Rows {
		names[i] = p.Source.RowName(row)
	}
	return names
}

// Data returns the data of the given cell of the source.
func (p *Pipeline) Data(row, col int, role table.Role) any {
	sr, sc := p.SourceRow(row), p.SourceColumn(col)
	if sr < 0 || sc < 0 {
		return nil
	}
	return p.Source.Data(sr, sc, role)
}

// SetData writes the given cell of the source.
func (p *Pipeline) SetData(row, col int, value any) bool {
	sr, sc := p.SourceRow(row), p.SourceColumn(col)
	if sr < 0 || sc < 0 {
		return false
	}
	return p.Source.SetData(sr, sc, value)
}

// Flags returns the flags of the given cell of the source.
func (p *Pipeline) Flags(row, col int) table.Flags {
	sr, sc := p.SourceRow(row), p.SourceColumn(col)
	if sr < 0 || sc < 0 {
		return table.NoFlags
	}
	return p.Source.Flags(sr, sc)
}

// HeaderData returns the data of the given header of the source.
func (p *Pipeline) HeaderData(section int, orientation table.Orientation, role table.Role) any {
	s := p.SourceColumn(section)
	if orientation == table.Vertical {
		s = p.SourceRow(section)
	}
	if s < 0 {
		return nil
	}
	return p.Source.HeaderData(s, orientation, role)
}

// OnChange adds a function that is called on every [table.Change],
// in view coordinates.
func (p *Pipeline) OnChange(fun func(c table.Change)) {
	p.onChange = append(p.onChange, fun)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides the [Model] of the node table: nodes of the
// host as rows, and the sorted union of their knob names as columns.
//
// The model only holds the names of its nodes, resolving them against
// the host on every access. A row whose node no longer exists is
// removed the next time its data or flags are requested, and a
// [RowsRemoved] change is sent.
package table

import (
	"cmp"
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/nodetable/base/errors"
	"cogentcore.org/nodetable/colors"
	"cogentcore.org/nodetable/config"
	"cogentcore.org/nodetable/host"
	"golang.org/x/text/cases"
)

// Model is the table of knob values of a list of nodes.
type Model struct {

	// Host is the host owning the nodes.
	Host host.Host

	// Config is the configuration for colors.
	Config *config.Config

	// rows are the references to the nodes, in insertion order.
	rows []host.Ref

	// columns are the knob names, sorted case-insensitively.
	columns []string

	// onChange are the functions called on every change.
	onChange []func(c Change)
}

// New returns a new empty [Model] for the given host. If cfg is nil,
// the [config.Default] configuration is used.
func New(h host.Host, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Model{Host: h, Config: cfg}
}

// SetNodes sets the nodes of the rows, in the given order,
// and recomputes the columns. It sends a [Reset] change.
func (m *Model) SetNodes(nodes []host.Node) {
	m.rows = host.Refs(nodes)
	m.setupColumns()
	m.send(Change{Kind: Reset})
}

// Nodes returns the nodes of all rows that still exist.
func (m *Model) Nodes() []host.Node {
	var ns []host.Node
	for _, r := range m.rows {
		if n, ok := r.Resolve(m.Host); ok {
			ns = append(ns, n)
		}
	}
	return ns
}

// NumRows returns the number of rows.
func (m *Model) NumRows() int { return len(m.rows) }

// NumColumns returns the number of columns.
func (m *Model) NumColumns() int { return len(m.columns) }

// ColumnName returns the knob name of the given column,
// or "" if it is out of range.
func (m *Model) ColumnName(col int) string {
	if col < 0 || col >= len(m.columns) {
		return ""
	}
	return m.columns[col]
}

// ColumnNames returns the knob names of all columns.
func (m *Model) ColumnNames() []string {
	return slices.Clone(m.columns)
}

// ColumnIndex returns the column of the given knob name, or -1.
func (m *Model) ColumnIndex(name string) int {
	return slices.Index(m.columns, name)
}

// RowName returns the node name of the given row,
// or "" if it is out of range.
func (m *Model) RowName(row int) string {
	if row < 0 || row >= len(m.rows) {
		return ""
	}
	return m.rows[row].Name
}

// RowNode returns the node of the given row, and false if it is
// out of range or the node no longer exists. Unlike [Model.Data]
// it never removes the row.
func (m *Model) RowNode(row int) (host.Node, bool) {
	if row < 0 || row >= len(m.rows) {
		return nil, false
	}
	return m.rows[row].Resolve(m.Host)
}

// HasKnob returns whether the node of the given row
// exists and has a knob with the given name.
func (m *Model) HasKnob(row int, name string) bool {
	n, ok := m.RowNode(row)
	if !ok {
		return false
	}
	_, ok = n.Knob(name)
	return ok
}

// ColumnKnob returns the knob of the given column of the first
// existing node that has it, which stands for the whole column.
func (m *Model) ColumnKnob(col int) (host.Knob, bool) {
	name := m.ColumnName(col)
	if name == "" {
		return nil, false
	}
	for row := range m.rows {
		n, ok := m.RowNode(row)
		if !ok {
			continue
		}
		if k, ok := n.Knob(name); ok {
			return k, true
		}
	}
	return nil, false
}

// OnChange adds a function that is called on every [Change].
func (m *Model) OnChange(fun func(c Change)) {
	m.onChange = append(m.onChange, fun)
}

func (m *Model) send(c Change) {
	for _, fun := range m.onChange {
		fun(c)
	}
}

// setupColumns sets the columns to the union of the knob names of
// all existing nodes, sorted case-insensitively.
func (m *Model) setupColumns() {
	seen := map[string]bool{}
	m.columns = nil
	for _, n := range m.Nodes() {
		for _, k := range n.Knobs() {
			if name := k.Name(); !seen[name] {
				seen[name] = true
				m.columns = append(m.columns, name)
			}
		}
	}
	fold := cases.Fold()
	slices.SortFunc(m.columns, func(a, b string) int {
		return cmp.Or(cmp.Compare(fold.String(a), fold.String(b)), cmp.Compare(a, b))
	})
}

// liveRow returns the node of the given row. If the node no longer
// exists, the row is removed and false is returned.
func (m *Model) liveRow(row int) (host.Node, bool) {
	if row < 0 || row >= len(m.rows) {
		return nil, false
	}
	n, ok := m.rows[row].Resolve(m.Host)
	if !ok {
		m.removeRows(row, row)
		return nil, false
	}
	return n, true
}

// Prune removes the rows whose nodes no longer exist,
// sending a [RowsRemoved] change for each of them.
func (m *Model) Prune() {
	for row := len(m.rows) - 1; row >= 0; row-- {
		if _, ok := m.rows[row].Resolve(m.Host); !ok {
			m.removeRows(row, row)
		}
	}
}

// removeRows removes the rows first through last, recomputes
// the columns, and sends a [RowsRemoved] change.
func (m *Model) removeRows(first, last int) {
	slog.Debug("removing rows", "first", first, "last", last)
	m.rows = slices.Delete(m.rows, first, last+1)
	m.setupColumns()
	m.send(Change{Kind: RowsRemoved, First: first, Last: last})
}

// cell returns the node of the given row, removing the row if the
// node is gone, and its knob of the given column if it has one.
func (m *Model) cell(row, col int) (n host.Node, k host.Knob, ok bool) {
	n, ok = m.liveRow(row)
	if !ok || col < 0 || col >= len(m.columns) {
		return nil, nil, false
	}
	k, hasKnob := n.Knob(m.columns[col])
	if !hasKnob {
		k = nil
	}
	return n, k, true
}

// Data returns the data of the given cell for the given role:
//   - [Display]: the value as a string, "" for boolean knobs.
//   - [Edit]: the native value of the knob.
//   - [CheckState]: the bool value of a boolean knob.
//   - [Background]: the [color.Color] of the cell.
//   - [KnobRole]: the [host.Knob].
//
// It returns nil for cells without a knob, except for [Background],
// and for rows whose node no longer exists, which are removed.
func (m *Model) Data(row, col int, role Role) any {
	n, k, ok := m.cell(row, col)
	if !ok {
		return nil
	}
	if role == Background {
		return m.background(row, n, k)
	}
	if k == nil {
		return nil
	}
	switch role {
	case Display:
		if k.Kind() == host.Boolean {
			return ""
		}
		v, err := k.Value()
		if err != nil {
			slog.Warn("could not get value", "node", n.Name(), "knob", k.Name(), "err", err)
			return ""
		}
		return host.FormatValue(v)
	case Edit:
		v, err := k.Value()
		if err != nil {
			slog.Warn("could not get value", "node", n.Name(), "knob", k.Name(), "err", err)
			return nil
		}
		return v
	case CheckState:
		if k.Kind() != host.Boolean {
			return nil
		}
		v, err := k.Value()
		if err != nil {
			return nil
		}
		b, _ := v.(bool)
		return b
	case KnobRole:
		return k
	}
	return nil
}

// background returns the background color of a cell: the animated
// colors for animated knobs, and otherwise the row base color mixed
// with the node color, more so if the cell has a knob.
func (m *Model) background(row int, n host.Node, k host.Knob) color.Color {
	if k != nil && k.Animated() {
		if k.KeyAt(m.Host.Frame()) {
			return m.Config.KeyAtColor()
		}
		return m.Config.AnimatedColor()
	}
	base := m.Config.RowBase(row)
	nc, ok := m.NodeColor(n)
	if !ok {
		return base
	}
	mix := m.Config.Colors.MixNoKnob
	if k != nil {
		mix = m.Config.Colors.MixHasKnob
	}
	return colors.Blend(100*mix, base, nc)
}

// NodeColor returns the tile color of the given node, which is the
// default color of its class if it has none, and false if neither is set.
func (m *Model) NodeColor(n host.Node) (color.Color, bool) {
	packed := n.TileColor()
	if packed == colors.Unset {
		packed = m.Host.DefaultNodeColor(n.Class())
	}
	if packed == colors.Unset {
		return nil, false
	}
	return colors.Unpack(packed), true
}

// HeaderData returns the data of a header. For [Vertical] headers
// these are the node name ([Display]), the [host.Node] ([NodeRole]),
// its tile color ([Background]) and font color ([Foreground]).
// For [Horizontal] headers these are the knob name ([Display]) and
// the [host.Knob] from [Model.ColumnKnob] ([KnobRole]).
// Headers never remove rows.
func (m *Model) HeaderData(section int, orientation Orientation, role Role) any {
	if orientation == Horizontal {
		if section < 0 || section >= len(m.columns) {
			return nil
		}
		switch role {
		case Display:
			return m.columns[section]
		case KnobRole:
			if k, ok := m.ColumnKnob(section); ok {
				return k
			}
		}
		return nil
	}
	n, ok := m.RowNode(section)
	if !ok {
		return nil
	}
	switch role {
	case Display:
		return n.Name()
	case NodeRole:
		return n
	case Background:
		if c, ok := m.NodeColor(n); ok {
			return c
		}
	case Foreground:
		if fc := n.FontColor(); fc != colors.Unset {
			return colors.Unpack(fc)
		}
	}
	return nil
}

// SetData writes the given value to the knob of the given cell.
// It only writes to enabled knobs that are not read-only. Slice values
// are written element by element at the current frame of the host.
// Writing a value equal to the current one succeeds without sending
// a change. Otherwise a [CellChanged] change is sent for the cell.
// Failures are logged as warnings and return false.
func (m *Model) SetData(row, col int, value any) bool {
	n, k, ok := m.cell(row, col)
	if !ok || k == nil {
		return false
	}
	var err error
	switch {
	case !k.Enabled():
		err = host.ErrDisabled
	case k.Kind().IsReadOnly():
		err = host.ErrReadOnly
	}
	changed := false
	if err == nil {
		changed, err = m.write(k, value)
	}
	if changed {
		m.send(Change{Kind: CellChanged, Row: row, Column: col})
	}
	if err != nil {
		errors.Warn(err, "node", n.Name(), "knob", k.Name())
		return false
	}
	return true
}

// write writes the value to the knob, returning whether
// the knob value changed.
func (m *Model) write(k host.Knob, value any) (bool, error) {
	if fs, ok := sliceValue(value); ok {
		t := m.Host.Frame()
		changed := false
		for i, f := range fs {
			cur, err := k.ValueAt(t, i)
			if err != nil {
				return changed, err
			}
			if cur == f {
				continue
			}
			if err := k.SetValueAt(f, t, i); err != nil {
				return changed, err
			}
			changed = true
		}
		return changed, nil
	}
	v, err := host.Convert(k.Kind(), value)
	if err != nil {
		return false, err
	}
	cur, err := k.Value()
	if err != nil {
		return false, err
	}
	if host.Equal(cur, v) {
		return false, nil
	}
	if err := k.SetValue(v); err != nil {
		return false, err
	}
	return true, nil
}

// sliceValue returns the given value as []float64 if it is a slice.
func sliceValue(value any) ([]float64, bool) {
	switch value.(type) {
	case []float64, []float32, []int, []any:
		return host.ToFloats(value)
	}
	return nil, false
}

// Flags returns the flags of the given cell. Cells without a knob
// or with a disabled knob have [NoFlags]. Enabled knobs are
// [Selectable] and [Enabled], and [Editable] unless read-only.
// Boolean knobs are [Checkable].
func (m *Model) Flags(row, col int) Flags {
	_, k, ok := m.cell(row, col)
	if !ok || k == nil || !k.Enabled() {
		return NoFlags
	}
	f := Selectable | Enabled
	if k.Kind() == host.Boolean {
		f |= Checkable
	}
	if !k.Kind().IsReadOnly() {
		f |= Editable
	}
	return f
}

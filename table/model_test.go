// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"image/color"
	"testing"

	"cogentcore.org/nodetable/colors"
	"cogentcore.org/nodetable/config"
	"cogentcore.org/nodetable/host"
	"cogentcore.org/nodetable/host/memhost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestModel returns a model of ObjA (Blur, size 4, disable false)
// and ObjB (Merge, size 2), with the changes it sends.
func newTestModel(t *testing.T) (*memhost.Host, *Model, *[]Change) {
	h := memhost.New()
	a := h.AddNode("ObjA", "Blur")
	a.AddKnob("size", host.Scalar, 4.0)
	a.AddKnob("disable", host.Boolean, false)
	b := h.AddNode("ObjB", "Merge")
	b.AddKnob("size", host.Scalar, 2.0)

	m := New(h, nil)
	var changes []Change
	m.OnChange(func(c Change) { changes = append(changes, c) })
	m.SetNodes([]host.Node{a, b})
	require.Equal(t, []Change{{Kind: Reset}}, changes)
	changes = nil
	return h, m, &changes
}

func TestColumns(t *testing.T) {
	_, m, _ := newTestModel(t)
	assert.Equal(t, 2, m.NumRows())
	assert.Equal(t, []string{"disable", "size"}, m.ColumnNames())
	assert.Equal(t, 1, m.ColumnIndex("size"))
	assert.Equal(t, -1, m.ColumnIndex("mix"))
	assert.Equal(t, "", m.ColumnName(5))
	assert.Equal(t, "ObjB", m.RowName(1))

	m.SetNodes(nil)
	assert.Equal(t, 0, m.NumColumns())
	assert.Equal(t, 0, m.NumRows())
}

func TestColumnsCaseInsensitive(t *testing.T) {
	h := memhost.New()
	n := h.AddNode("A", "Grade")
	n.AddKnob("white", host.Scalar, 1)
	n.AddKnob("Black", host.Scalar, 0)
	n.AddKnob("gamma", host.Scalar, 1)
	n.AddKnob("Add", host.Scalar, 0)
	o := h.AddNode("B", "Grade")
	o.AddKnob("black", host.Scalar, 0)

	m := New(h, nil)
	m.SetNodes([]host.Node{n, o, n})
	assert.Equal(t, []string{"Add", "Black", "black", "gamma", "white"}, m.ColumnNames())
	assert.Equal(t, 3, m.NumRows(), "duplicates are kept")
}

func TestData(t *testing.T) {
	_, m, _ := newTestModel(t)
	assert.Equal(t, "4", m.Data(0, 1, Display))
	assert.Equal(t, 4.0, m.Data(0, 1, Edit))
	assert.Equal(t, "", m.Data(0, 0, Display))
	assert.Equal(t, false, m.Data(0, 0, CheckState))
	assert.Nil(t, m.Data(0, 1, CheckState))
	assert.Nil(t, m.Data(1, 0, Display), "no knob")
	assert.Nil(t, m.Data(1, 0, Edit))
	assert.Nil(t, m.Data(5, 0, Display))

	k, ok := m.Data(1, 1, KnobRole).(host.Knob)
	require.True(t, ok)
	assert.Equal(t, "size", k.Name())
	assert.Equal(t, "ObjB", k.Node().Name())
}

func TestDataArray(t *testing.T) {
	h := memhost.New()
	n := h.AddNode("T", "Transform")
	n.AddKnob("translate", host.Array, []float64{1, 2.5, -3})
	n.AddKnob("matrix", host.Transform, []float64{1, 0, 0, 1})
	n.AddKnob("tile_color", host.ColorChip, uint32(0xFF0000FF))
	m := New(h, nil)
	m.SetNodes([]host.Node{n})
	assert.Equal(t, []string{"matrix", "tile_color", "translate"}, m.ColumnNames())
	assert.Equal(t, "[1, 0, 0, 1]", m.Data(0, 0, Display))
	assert.Equal(t, "0xFF0000FF", m.Data(0, 1, Display))
	assert.Equal(t, "[1, 2.5, -3]", m.Data(0, 2, Display))
	assert.Equal(t, []float64{1, 2.5, -3}, m.Data(0, 2, Edit))
}

func TestBackground(t *testing.T) {
	h, m, _ := newTestModel(t)
	cfg := m.Config
	h.SetDefaultColor("Blur", 0xFF0000FF)
	a, _ := h.Node("ObjA")
	a.(*memhost.Node).SetTileColor(0x00FF00FF)

	red := color.NRGBA{255, 0, 0, 255}
	green := color.NRGBA{0, 255, 0, 255}
	assert.Equal(t, colors.Blend(30, cfg.RowBase(0), green), m.Data(0, 1, Background))

	a.(*memhost.Node).SetTileColor(colors.Unset)
	assert.Equal(t, colors.Blend(30, cfg.RowBase(0), red), m.Data(0, 1, Background))

	// ObjB has no disable knob, and Merge no default color
	assert.Equal(t, cfg.RowBase(1), m.Data(1, 0, Background))
	h.SetDefaultColor("Merge", 0xFF0000FF)
	assert.Equal(t, colors.Blend(8, cfg.RowBase(1), red), m.Data(1, 0, Background))
	assert.NotEqual(t, m.Data(0, 0, Background), m.Data(1, 0, Background))

	assert.Equal(t, red, m.HeaderData(0, Vertical, Background))
	assert.Nil(t, m.HeaderData(0, Vertical, Foreground))
}

func TestBackgroundAnimated(t *testing.T) {
	h, m, _ := newTestModel(t)
	h.SetFrame(10)
	a, _ := h.Node("ObjA")
	k, _ := a.Knob("size")
	k.(*memhost.Knob).SetKeys(1, 10)
	assert.Equal(t, m.Config.KeyAtColor(), m.Data(0, 1, Background))
	h.SetFrame(5)
	assert.Equal(t, m.Config.AnimatedColor(), m.Data(0, 1, Background))
}

func TestHeaderData(t *testing.T) {
	_, m, _ := newTestModel(t)
	assert.Equal(t, "ObjA", m.HeaderData(0, Vertical, Display))
	n, ok := m.HeaderData(1, Vertical, NodeRole).(host.Node)
	require.True(t, ok)
	assert.Equal(t, "Merge", n.Class())
	assert.Equal(t, "size", m.HeaderData(1, Horizontal, Display))
	k, ok := m.HeaderData(0, Horizontal, KnobRole).(host.Knob)
	require.True(t, ok)
	assert.Equal(t, host.Boolean, k.Kind())
	assert.Nil(t, m.HeaderData(2, Horizontal, Display))
	assert.Nil(t, m.HeaderData(2, Vertical, Display))
}

func TestFlags(t *testing.T) {
	h, m, _ := newTestModel(t)
	assert.Equal(t, Selectable|Enabled|Editable|Checkable, m.Flags(0, 0))
	assert.Equal(t, Selectable|Enabled|Editable, m.Flags(0, 1))
	assert.Equal(t, NoFlags, m.Flags(1, 0))

	b, _ := h.Node("ObjB")
	k, _ := b.Knob("size")
	k.(*memhost.Knob).SetEnabled(false)
	assert.Equal(t, NoFlags, m.Flags(1, 1))

	b.(*memhost.Node).AddKnob("matrix", host.Transform, []float64{1, 0, 0, 1})
	m.SetNodes(m.Nodes())
	col := m.ColumnIndex("matrix")
	assert.Equal(t, Selectable|Enabled, m.Flags(1, col))
	assert.False(t, m.SetData(1, col, []float64{2, 0, 0, 2}))
	assert.Equal(t, "Selectable|Enabled", m.Flags(1, col).String())
}

func TestSetData(t *testing.T) {
	h, m, changes := newTestModel(t)
	assert.True(t, m.SetData(0, 1, 9.0))
	assert.Equal(t, []Change{{Kind: CellChanged, Row: 0, Column: 1}}, *changes)
	a, _ := h.Node("ObjA")
	k, _ := a.Knob("size")
	v, _ := k.Value()
	assert.Equal(t, 9.0, v)

	*changes = nil
	assert.True(t, m.SetData(0, 1, 9), "unchanged")
	assert.Empty(t, *changes)

	assert.False(t, m.SetData(0, 1, "nine"))
	assert.False(t, m.SetData(1, 0, true), "no knob")
	assert.Empty(t, *changes)

	assert.True(t, m.SetData(0, 0, true))
	assert.Equal(t, true, m.Data(0, 0, CheckState))
}

func TestSetDataDisabled(t *testing.T) {
	h, m, changes := newTestModel(t)
	b, _ := h.Node("ObjB")
	k, _ := b.Knob("size")
	k.(*memhost.Knob).SetEnabled(false)
	assert.False(t, m.SetData(1, 1, 3.0))
	v, _ := k.Value()
	assert.Equal(t, 2.0, v)
	assert.Empty(t, *changes)
}

func TestSetDataArray(t *testing.T) {
	h := memhost.New()
	h.SetFrame(7)
	n := h.AddNode("T", "Transform")
	k := n.AddKnob("translate", host.Array, []float64{1, 2}).SetKeys(1)
	m := New(h, config.Default())
	var changes []Change
	m.OnChange(func(c Change) { changes = append(changes, c) })
	m.SetNodes([]host.Node{n})
	changes = nil

	assert.True(t, m.SetData(0, 0, []any{1, 5}))
	assert.Len(t, changes, 1)
	assert.Equal(t, []float64{1, 5}, m.Data(0, 0, Edit))
	assert.True(t, k.KeyAt(7), "written at the current frame")

	changes = nil
	assert.True(t, m.SetData(0, 0, []float64{1, 5}))
	assert.Empty(t, changes)
	assert.False(t, m.SetData(0, 0, []float64{1, 5, 6}))
}

func TestStaleRow(t *testing.T) {
	h, m, changes := newTestModel(t)
	require.True(t, h.Delete("ObjA"))
	assert.Equal(t, 2, m.NumRows(), "removed lazily")
	assert.Equal(t, "disable", m.HeaderData(0, Horizontal, Display))
	assert.Nil(t, m.HeaderData(0, Vertical, Display))

	assert.NotPanics(t, func() {
		assert.Nil(t, m.Data(0, 1, Display))
	})
	assert.Equal(t, []Change{{Kind: RowsRemoved, First: 0, Last: 0}}, *changes)
	assert.Equal(t, 1, m.NumRows())
	assert.Equal(t, []string{"size"}, m.ColumnNames())
	assert.Equal(t, "2", m.Data(0, 0, Display))

	require.True(t, h.Delete("ObjB"))
	assert.Equal(t, NoFlags, m.Flags(0, 0))
	assert.Equal(t, 0, m.NumRows())
	assert.Equal(t, 0, m.NumColumns())
	assert.False(t, m.SetData(0, 0, 1.0))
}

func TestPrune(t *testing.T) {
	h, m, changes := newTestModel(t)
	m.Prune()
	assert.Empty(t, *changes)
	require.True(t, h.Delete("ObjB"))
	m.Prune()
	assert.Equal(t, []Change{{Kind: RowsRemoved, First: 1, Last: 1}}, *changes)
	assert.Equal(t, "ObjA", m.RowName(0))
	assert.Equal(t, 1, m.NumRows())
}

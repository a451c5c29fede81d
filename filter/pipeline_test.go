// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"testing"

	"cogentcore.org/nodetable/config"
	"cogentcore.org/nodetable/host"
	"cogentcore.org/nodetable/host/memhost"
	"cogentcore.org/nodetable/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPipeline returns a pipeline over ObjA (Blur, size 4,
// disable false) and ObjB (Merge, size 2).
func newTestPipeline(t *testing.T) (*memhost.Host, *table.Model, *Pipeline) {
	h := memhost.New()
	a := h.AddNode("ObjA", "Blur")
	a.AddKnob("size", host.Scalar, 4.0)
	a.AddKnob("disable", host.Boolean, false)
	b := h.AddNode("ObjB", "Merge")
	b.AddKnob("size", host.Scalar, 2.0)

	m := table.New(h, nil)
	m.SetNodes([]host.Node{a, b})
	p := New(m, nil)
	require.Equal(t, []string{"disable", "size"}, p.ColumnNames())
	return h, m, p
}

func TestKnobFilter(t *testing.T) {
	_, _, p := newTestPipeline(t)
	p.SetKnobFilter("size")
	assert.Equal(t, []string{"size"}, p.ColumnNames())
	assert.Equal(t, []string{"ObjA", "ObjB"}, p.RowNames())
	p.SetKnobFilter("SIZE, disable")
	assert.Equal(t, []string{"disable", "size"}, p.ColumnNames())
	p.SetKnobFilter("")
	assert.Equal(t, 2, p.NumColumns())
}

func TestNameFilter(t *testing.T) {
	_, _, p := newTestPipeline(t)
	p.SetNameFilter("ObjA")
	assert.Equal(t, []string{"ObjA"}, p.RowNames())
	assert.Equal(t, []string{"disable", "size"}, p.ColumnNames(), "ObjA has disable")

	p.SetNameFilter("objb")
	assert.Equal(t, []string{"ObjB"}, p.RowNames())
	assert.Equal(t, []string{"size"}, p.ColumnNames(), "no remaining row has disable")

	p.SetNameFilter("Obj, ObjA")
	assert.Equal(t, []string{"ObjA"}, p.RowNames())

	p.SetNameFilter("nothing")
	assert.Equal(t, 0, p.NumRows())
	assert.Equal(t, 0, p.NumColumns())
}

func TestClassFilter(t *testing.T) {
	_, _, p := newTestPipeline(t)
	p.SetClassFilter("merge")
	assert.Equal(t, []string{"ObjB"}, p.RowNames())
	assert.Equal(t, []string{"size"}, p.ColumnNames())
	p.SetClassFilter("Blur, Merge")
	assert.Equal(t, []string{"ObjA", "ObjB"}, p.RowNames())
	p.SetNameFilter("ObjB")
	assert.Equal(t, []string{"ObjB"}, p.RowNames())
}

func TestStateFilter(t *testing.T) {
	h, m, p := newTestPipeline(t)
	b, _ := h.Node("ObjB")
	b.(*memhost.Node).AddKnob("label", host.String, "").SetVisible(false)
	b.(*memhost.Node).AddKnob("mix", host.Scalar, 1).SetEnabled(false)
	m.SetNodes(m.Nodes())
	assert.Equal(t, []string{"disable", "size"}, p.ColumnNames())

	p.SetShowHidden(true)
	assert.Equal(t, []string{"disable", "label", "size"}, p.ColumnNames())
	p.SetShowDisabled(true)
	assert.Equal(t, []string{"disable", "label", "mix", "size"}, p.ColumnNames())

	p.SetState(State{Knobs: "mix", ShowDisabled: true})
	assert.Equal(t, []string{"mix"}, p.ColumnNames())
	assert.Equal(t, State{Knobs: "mix", ShowDisabled: true}, p.State())
}

func TestStagesOrder(t *testing.T) {
	_, _, p := newTestPipeline(t)
	st := p.Stages()
	require.Len(t, st, 5)
	assert.IsType(t, StateStage{}, st[0])
	assert.IsType(t, ClassStage{}, st[1])
	assert.IsType(t, NameStage{}, st[2])
	assert.IsType(t, KnobNameStage{}, st[3])
	assert.IsType(t, EmptyColumnStage{}, st[4])
}

func TestStagePure(t *testing.T) {
	_, m, _ := newTestPipeline(t)
	v := All(m)
	nv := NameStage{Names: List{"ObjB"}}.Filter(m, v)
	assert.Equal(t, []int{1}, nv.Rows)
	assert.Equal(t, []int{0, 1}, v.Rows, "input view is not modified")
	ev := EmptyColumnStage{}.Filter(m, nv)
	assert.Equal(t, []int{1}, ev.Columns)
}

func TestPipelineCells(t *testing.T) {
	_, _, p := newTestPipeline(t)
	var changes []table.Change
	p.OnChange(func(c table.Change) { changes = append(changes, c) })

	p.SetNameFilter("ObjB")
	assert.Equal(t, []table.Change{{Kind: table.Reset}}, changes)
	assert.Equal(t, 1, p.SourceRow(0))
	assert.Equal(t, 1, p.SourceColumn(0))
	assert.Equal(t, "2", p.Data(0, 0, table.Display))
	assert.Equal(t, "ObjB", p.HeaderData(0, table.Vertical, table.Display))
	assert.Equal(t, "size", p.HeaderData(0, table.Horizontal, table.Display))
	assert.Equal(t, table.Selectable|table.Enabled|table.Editable, p.Flags(0, 0))
	assert.Nil(t, p.Data(1, 0, table.Display))
	assert.Equal(t, table.NoFlags, p.Flags(0, 1))

	changes = nil
	assert.True(t, p.SetData(0, 0, 5.0))
	assert.Equal(t, []table.Change{{Kind: table.CellChanged, Row: 0, Column: 0}}, changes)
	assert.Equal(t, 5.0, p.Data(0, 0, table.Edit))
	assert.False(t, p.SetData(3, 0, 5.0))
}

func TestPipelineStale(t *testing.T) {
	h, m, p := newTestPipeline(t)
	require.True(t, h.Delete("ObjA"))
	assert.Equal(t, 2, p.NumRows())
	assert.Nil(t, p.Data(0, 0, table.Display))
	assert.Equal(t, 1, m.NumRows())
	assert.Equal(t, []string{"ObjB"}, p.RowNames())
	assert.Equal(t, []string{"size"}, p.ColumnNames())
}

func TestDelimiter(t *testing.T) {
	_, m, _ := newTestPipeline(t)
	cfg := config.Default()
	cfg.Delimiter = ";"
	p := New(m, cfg)
	p.SetNameFilter("ObjA; ObjB")
	assert.Equal(t, []string{"ObjA", "ObjB"}, p.RowNames())
	p.SetNameFilter("ObjA, ObjB")
	assert.Equal(t, 0, p.NumRows())
}

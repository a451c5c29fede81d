// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memhost

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/nodetable/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openScene(t *testing.T) *Host {
	h, err := Open(filepath.Join("testdata", "scene.yaml"))
	require.NoError(t, err)
	return h
}

func names(nodes []host.Node) []string {
	s := make([]string, len(nodes))
	for i, n := range nodes {
		s[i] = n.Name()
	}
	return s
}

func TestOpen(t *testing.T) {
	h := openScene(t)
	assert.Equal(t, 6, h.Len())
	assert.Equal(t, 12.0, h.Frame())
	assert.True(t, h.Preference("ShadeDAGNodes"))
	assert.False(t, h.Preference("missing"))
	assert.Equal(t, []string{"HD_1080", "UHD_4K", "square_2K"}, h.Formats())
	assert.Equal(t, []string{"Blur", "Group", "Merge2", "Transform"}, h.Classes())
	assert.Equal(t, uint32(0xCC804EFF), h.DefaultNodeColor("Blur"))

	n, ok := h.Node("Merge1")
	require.True(t, ok)
	assert.Equal(t, "Merge2", n.Class())
	assert.Equal(t, uint32(0xFF0000FF), n.TileColor())
	x, y := n.Position()
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 120.0, y)

	k, ok := n.Knob("tile_color")
	require.True(t, ok)
	v, err := k.Value()
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xFF0000FF), v)

	k, ok = n.Knob("mix")
	require.True(t, ok)
	assert.False(t, k.Enabled())

	tr, _ := h.Node("Transform1")
	k, _ = tr.Knob("grid")
	w, hh := k.Dims()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, hh)
	k, _ = tr.Knob("translate")
	w, hh = k.Dims()
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, hh)
}

func TestKnobOrder(t *testing.T) {
	h := openScene(t)
	n, _ := h.Node("Blur1")
	var ks []string
	for _, k := range n.Knobs() {
		ks = append(ks, k.Name())
	}
	assert.Equal(t, []string{"size", "disable", "channels", "tile_color", "label", "hidden_knob"}, ks)
}

func TestSelected(t *testing.T) {
	h := openScene(t)
	assert.Equal(t, []string{"Blur1", "Merge1", "Transform1", "Group1"}, names(h.Selected(false)))
	assert.Equal(t, []string{"Blur1", "Merge1", "Transform1", "Group1", "Group1.Blur2"}, names(h.Selected(true)))

	h.Select("Group1.Blur2", "Group1.Blur3")
	assert.Empty(t, h.Selected(true))
	h.Select("Group1", "Group1.Blur3")
	assert.Equal(t, []string{"Group1", "Group1.Blur3"}, names(h.Selected(true)))
}

func TestDelete(t *testing.T) {
	h := openScene(t)
	n, _ := h.Node("Blur1")
	k, _ := n.Knob("size")
	assert.True(t, h.Delete("Blur1"))
	assert.False(t, h.Delete("Blur1"))
	_, ok := h.Node("Blur1")
	assert.False(t, ok)
	_, err := k.Value()
	assert.ErrorIs(t, err, host.ErrGone)
	assert.ErrorIs(t, k.SetValue(1.0), host.ErrGone)

	assert.True(t, h.Delete("Group1"))
	_, ok = h.Node("Group1.Blur2")
	assert.False(t, ok)
	assert.Equal(t, 2, h.Len())
}

func TestSetValue(t *testing.T) {
	h := openScene(t)
	n, _ := h.Node("Blur1")
	k, _ := n.Knob("size")
	assert.NoError(t, k.SetValue(9))
	v, _ := k.Value()
	assert.Equal(t, 9.0, v)
	assert.ErrorIs(t, k.SetValue("big"), host.ErrType)

	k, _ = n.Knob("channels")
	assert.NoError(t, k.SetValue("alpha"))
	assert.ErrorIs(t, k.SetValue("depth"), host.ErrType)

	m, _ := h.Node("Merge1")
	k, _ = m.Knob("mix")
	assert.ErrorIs(t, k.SetValue(0.5), host.ErrDisabled)

	tr, _ := h.Node("Transform1")
	k, _ = tr.Knob("matrix")
	assert.ErrorIs(t, k.SetValueAt(2, 12, 0), host.ErrReadOnly)
	k, _ = tr.Knob("format")
	assert.NoError(t, k.SetValue("UHD_4K"))
	assert.ErrorIs(t, k.SetValue("PAL"), host.ErrType)
	k, _ = tr.Knob("translate")
	assert.ErrorIs(t, k.SetValue([]float64{1, 2, 3}), host.ErrType)
}

func TestValueAt(t *testing.T) {
	h := openScene(t)
	tr, _ := h.Node("Transform1")
	k, _ := tr.Knob("translate")
	assert.NoError(t, k.SetValueAt(5, 12, 1))
	f, err := k.ValueAt(12, 1)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, f)
	_, err = k.ValueAt(12, 2)
	assert.ErrorIs(t, err, host.ErrIndex)

	v, _ := k.Value()
	v.([]float64)[0] = 100
	f, _ = k.ValueAt(12, 0)
	assert.Equal(t, 0.0, f, "values are returned as copies")
}

func TestAnimation(t *testing.T) {
	h := openScene(t)
	n, _ := h.Node("Blur1")
	k, _ := n.Knob("size")
	assert.True(t, k.Animated())
	assert.True(t, k.KeyAt(12))
	assert.False(t, k.KeyAt(5))
	assert.NoError(t, k.SetValueAt(3, 5, 0))
	assert.True(t, k.KeyAt(5))

	k, _ = n.Knob("disable")
	assert.False(t, k.Animated())
}

func TestSelectNode(t *testing.T) {
	h := openScene(t)
	assert.NoError(t, h.SelectNode("Merge1", 1))
	assert.Equal(t, []string{"Merge1"}, names(h.Selected(true)))
	assert.Equal(t, [2]float64{100, 120}, h.Zoomed)

	assert.NoError(t, h.SelectNode("Group1.Blur2", 0))
	assert.Equal(t, []string{"Group1"}, names(h.Selected(true)))
	assert.ErrorIs(t, h.SelectNode("Nope", 1), host.ErrGone)

	assert.NoError(t, h.ShowProperties("Blur1"))
	assert.Equal(t, []string{"Blur1"}, h.Shown)
	assert.Error(t, h.ShowProperties("Nope"))
}

func TestPickConfirm(t *testing.T) {
	h := New()
	c, ok := h.PickColor(0x11223344)
	assert.False(t, ok)
	assert.Equal(t, uint32(0x11223344), c)
	assert.True(t, h.Confirm("load?"))

	h.Picker = func(initial uint32) (uint32, bool) { return 0xFF0000FF, true }
	h.Confirmer = func(string) bool { return false }
	c, ok = h.PickColor(0)
	assert.True(t, ok)
	assert.Equal(t, uint32(0xFF0000FF), c)
	assert.False(t, h.Confirm("load?"))
}

func TestWriteRead(t *testing.T) {
	h := openScene(t)
	n, _ := h.Node("Blur1")
	k, _ := n.Knob("size")
	require.NoError(t, k.SetValue(9.5))

	var b bytes.Buffer
	require.NoError(t, h.Write(&b))
	o, err := Read(&b)
	require.NoError(t, err)
	assert.Equal(t, h.Scene(), o.Scene())

	n, _ = o.Node("Blur1")
	k, _ = n.Knob("size")
	v, _ := k.Value()
	assert.Equal(t, 9.5, v)
}

func TestWriteReadDims(t *testing.T) {
	h := New()
	n := h.AddNode("Transform1", "Transform")
	n.AddKnob("translate", host.Array, []float64{0, 0, 0}).SetDims(3, 1)
	n.AddKnob("grid", host.Array2D, []float64{1, 2, 3, 4, 5, 6}).SetDims(3, 2)
	n.AddKnob("scale", host.Array, []float64{1, 1})

	var b bytes.Buffer
	require.NoError(t, h.Write(&b))
	o, err := Read(&b)
	require.NoError(t, err)
	dims := func(name string) [2]int {
		n, ok := o.Node("Transform1")
		require.True(t, ok)
		k, ok := n.Knob(name)
		require.True(t, ok)
		w, h := k.Dims()
		return [2]int{w, h}
	}
	assert.Equal(t, [2]int{3, 1}, dims("translate"))
	assert.Equal(t, [2]int{3, 2}, dims("grid"))
	assert.Equal(t, [2]int{1, 1}, dims("scale"))
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("version: 2.0.0\nnodes: []\n"))
	assert.Error(t, err)
	_, err = Read(strings.NewReader("version: one\nnodes: []\n"))
	assert.Error(t, err)
	_, err = Read(strings.NewReader("nodes:\n  - {name: A, class: B, tile_color: nothex}\n"))
	assert.Error(t, err)
	_, err = Read(strings.NewReader("nodes:\n  - {name: A, class: B, knobs: [{name: s, kind: Scalar, value: abc}]}\n"))
	assert.Error(t, err)
	_, err = Read(strings.NewReader("nodes:\n  - {name: A, class: B, knobs: [{name: s, kind: Knob, value: 1}]}\n"))
	assert.Error(t, err)
	_, err = Read(strings.NewReader("unknown: 1\n"))
	assert.Error(t, err)
}

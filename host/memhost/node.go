// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memhost

import (
	"strings"

	"cogentcore.org/nodetable/host"
)

// Node is a node of a [Host].
type Node struct {
	host      *Host
	name      string
	class     string
	x, y      float64
	tileColor uint32
	fontColor uint32
	selected  bool
	deleted   bool
	knobs     registry[*Knob]
}

// Name implements [host.Node].
func (n *Node) Name() string { return n.name }

// Class implements [host.Node].
func (n *Node) Class() string { return n.class }

// Position implements [host.Node].
func (n *Node) Position() (x, y float64) { return n.x, n.y }

// TileColor implements [host.Node].
func (n *Node) TileColor() uint32 { return n.tileColor }

// FontColor implements [host.Node].
func (n *Node) FontColor() uint32 { return n.fontColor }

// Knobs implements [host.Node].
func (n *Node) Knobs() []host.Knob {
	n.host.mu.RLock()
	defer n.host.mu.RUnlock()
	ks := make([]host.Knob, len(n.knobs.values))
	for i, k := range n.knobs.values {
		ks[i] = k
	}
	return ks
}

// Knob implements [host.Node].
func (n *Node) Knob(name string) (host.Knob, bool) {
	n.host.mu.RLock()
	defer n.host.mu.RUnlock()
	k, ok := n.knobs.at(name)
	if !ok {
		return nil, false
	}
	return k, true
}

// AddKnob adds a knob with the given name, kind and initial value,
// replacing any knob of the same name. The value is converted with
// [host.Convert]; a value that can not be converted leaves the knob
// with a nil value.
func (n *Node) AddKnob(name string, kind host.Kind, value any) *Knob {
	v, _ := host.Convert(kind, value)
	k := &Knob{node: n, name: name, kind: kind, value: v}
	if fs, ok := v.([]float64); ok {
		k.width = len(fs)
		k.height = 1
	}
	n.host.mu.Lock()
	defer n.host.mu.Unlock()
	n.knobs.set(name, k)
	return k
}

// SetPosition sets the position of the node in the node graph.
func (n *Node) SetPosition(x, y float64) *Node {
	n.x, n.y = x, y
	return n
}

// SetTileColor sets the packed tile color, 0 for the class default.
func (n *Node) SetTileColor(packed uint32) *Node {
	n.tileColor = packed
	return n
}

// SetFontColor sets the packed label color.
func (n *Node) SetFontColor(packed uint32) *Node {
	n.fontColor = packed
	return n
}

// SetSelected sets whether the node is selected.
func (n *Node) SetSelected(selected bool) *Node {
	n.host.mu.Lock()
	defer n.host.mu.Unlock()
	n.selected = selected
	return n
}

// Selected returns whether the node is selected.
func (n *Node) Selected() bool { return n.selected }

// Parent returns the name of the group containing the node,
// or "" for a node at the root.
func (n *Node) Parent() string {
	if i := strings.LastIndexByte(n.name, '.'); i >= 0 {
		return n.name[:i]
	}
	return ""
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memhost provides an in-memory [host.Host], used by the
// command line tool and by tests. Its nodes are kept in a registry
// keyed by their full name; the nodes of a group are named
// "Group.Node". A host is read from and written to YAML scene
// documents, see [Scene].
package memhost

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/nodetable/host"
	"golang.org/x/exp/maps"
)

// GroupClass is the class of group nodes.
const GroupClass = "Group"

// Host is an in-memory [host.Host].
type Host struct {
	mu sync.RWMutex

	nodes registry[*Node]

	// defaultColors are the packed default tile colors by class.
	defaultColors map[string]uint32

	formats     []string
	preferences map[string]bool
	frame       float64

	// Picker is called by [Host.PickColor]. If it is nil, picking
	// is cancelled.
	Picker func(initial uint32) (uint32, bool)

	// Confirmer is called by [Host.Confirm]. If it is nil,
	// every question is answered with yes.
	Confirmer func(question string) bool

	// Zoomed is the position last zoomed onto by [Host.SelectNode].
	Zoomed [2]float64

	// Zoom is the zoom level of the last [Host.SelectNode].
	Zoom float64

	// Shown are the nodes whose properties were shown
	// with [Host.ShowProperties], in order.
	Shown []string
}

// New returns a new empty [Host].
func New() *Host {
	return &Host{
		defaultColors: map[string]uint32{},
		preferences:   map[string]bool{},
	}
}

// AddNode adds a node with the given full name and class,
// replacing any existing node with that name.
func (h *Host) AddNode(name, class string) *Node {
	n := &Node{host: h, name: name, class: class}
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.nodes.at(name); ok {
		old.deleted = true
	}
	h.nodes.set(name, n)
	if _, ok := h.defaultColors[class]; !ok {
		h.defaultColors[class] = 0
	}
	return n
}

// Delete deletes the node with the given name and, for a group,
// all nodes inside it. References to deleted nodes no longer resolve.
func (h *Host) Delete(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	n, ok := h.nodes.at(name)
	if !ok {
		return false
	}
	n.deleted = true
	h.nodes.delete(name)
	prefix := name + "."
	for _, nm := range slices.Clone(h.nodes.names) {
		if strings.HasPrefix(nm, prefix) {
			c, _ := h.nodes.at(nm)
			c.deleted = true
			h.nodes.delete(nm)
		}
	}
	return true
}

// Len returns the number of nodes.
func (h *Host) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.nodes.len()
}

// All returns all nodes in the order they were added.
func (h *Host) All() []*Node {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.nodes.values)
}

// Select sets the selection to exactly the named nodes.
func (h *Host) Select(names ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, n := range h.nodes.values {
		n.selected = slices.Contains(names, n.name)
	}
}

// SetFrame sets the current frame.
func (h *Host) SetFrame(frame float64) {
	h.frame = frame
}

// SetDefaultColor sets the packed default tile color of a class.
func (h *Host) SetDefaultColor(class string, packed uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.defaultColors[class] = packed
}

// SetFormats sets the names of the formats.
func (h *Host) SetFormats(names ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.formats = names
}

// SetPreference sets a boolean preference.
func (h *Host) SetPreference(name string, value bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.preferences[name] = value
}

// Selected implements [host.Host]. Nodes inside groups are only
// included if grouped is true and all their enclosing groups are
// selected too.
func (h *Host) Selected(grouped bool) []host.Node {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var sel []host.Node
	for _, n := range h.nodes.values {
		if !n.selected {
			continue
		}
		parent := n.Parent()
		if parent != "" && (!grouped || !h.groupSelected(parent)) {
			continue
		}
		sel = append(sel, n)
	}
	return sel
}

// groupSelected returns whether the named group and
// all groups enclosing it are selected.
func (h *Host) groupSelected(name string) bool {
	for name != "" {
		g, ok := h.nodes.at(name)
		if !ok || !g.selected {
			return false
		}
		name = g.Parent()
	}
	return true
}

// Node implements [host.Host].
func (h *Host) Node(name string) (host.Node, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n, ok := h.nodes.at(name)
	if !ok || n.deleted {
		return nil, false
	}
	return n, true
}

// Classes implements [host.Host].
func (h *Host) Classes() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	cls := maps.Keys(h.defaultColors)
	slices.Sort(cls)
	return cls
}

// Formats implements [host.Host].
func (h *Host) Formats() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.formats)
}

// DefaultNodeColor implements [host.Host].
func (h *Host) DefaultNodeColor(class string) uint32 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.defaultColors[class]
}

// Preference implements [host.Host].
func (h *Host) Preference(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.preferences[name]
}

// Frame implements [host.Host].
func (h *Host) Frame() float64 { return h.frame }

// PickColor implements [host.Host].
func (h *Host) PickColor(initial uint32) (uint32, bool) {
	if h.Picker == nil {
		return initial, false
	}
	return h.Picker(initial)
}

// Confirm implements [host.Host].
func (h *Host) Confirm(question string) bool {
	if h.Confirmer == nil {
		return true
	}
	return h.Confirmer(question)
}

// SelectNode implements [host.Host].
func (h *Host) SelectNode(name string, zoom float64) error {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	n, ok := h.nodes.at(name)
	if !ok {
		return fmt.Errorf("select %q: %w", name, host.ErrGone)
	}
	for _, o := range h.nodes.values {
		o.selected = false
	}
	n.selected = true
	if zoom != 0 {
		h.Zoom = zoom
		h.Zoomed = [2]float64{n.x, n.y}
	}
	return nil
}

// ShowProperties implements [host.Host].
func (h *Host) ShowProperties(name string) error {
	if _, ok := h.Node(name); !ok {
		return fmt.Errorf("show properties %q: %w", name, host.ErrGone)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Shown = append(h.Shown, name)
	return nil
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host defines the object model of the host application that
// the node table edits: nodes with ordered, typed knobs, and the
// application level services around them. Nodes are owned by the
// host; the table only keeps their names and resolves them again on
// every access through a [Ref].
package host

import "errors"

var (
	// ErrGone is returned for a node or knob that no longer exists.
	ErrGone = errors.New("node no longer exists")

	// ErrDisabled is returned when writing to a disabled knob.
	ErrDisabled = errors.New("knob is disabled")

	// ErrReadOnly is returned when writing to a read-only knob.
	ErrReadOnly = errors.New("knob is read-only")

	// ErrType is returned when a value has the wrong shape for a knob.
	ErrType = errors.New("wrong value type for knob")

	// ErrIndex is returned for an out of range array index.
	ErrIndex = errors.New("array index out of range")
)

// Host is the application hosting the nodes.
type Host interface {

	// Selected returns the currently selected nodes in selection order.
	// If grouped is true, the nodes inside selected group nodes
	// are included as well.
	Selected(grouped bool) []Node

	// Node returns the node with the given name,
	// and false if it does not exist (anymore).
	Node(name string) (Node, bool)

	// Classes returns all node classes available in the host.
	Classes() []string

	// Formats returns the names of all formats defined in the host.
	Formats() []string

	// DefaultNodeColor returns the packed default tile color
	// of nodes of the given class.
	DefaultNodeColor(class string) uint32

	// Preference returns the value of the named boolean preference.
	Preference(name string) bool

	// Frame returns the current frame of the timeline, the time
	// at which array values are read and written.
	Frame() float64

	// PickColor opens the blocking color picker of the host, seeded
	// with the given packed color. It returns the picked packed color,
	// and false if the user cancelled.
	PickColor(initial uint32) (uint32, bool)

	// Confirm asks the user the given yes/no question.
	Confirm(question string) bool

	// SelectNode makes the named node the only selected node and,
	// if zoom is non-zero, zooms the node graph onto it. A name of a
	// node inside a group ("Group1.Blur1") selects the group.
	SelectNode(name string, zoom float64) error

	// ShowProperties opens the properties panel of the named node.
	ShowProperties(name string) error
}

// Node is an element of the host: the row of the node table.
type Node interface {

	// Name returns the unique (full) name of the node.
	Name() string

	// Class returns the class of the node.
	Class() string

	// Position returns the position of the node in the node graph.
	Position() (x, y float64)

	// TileColor returns the packed tile color of the node,
	// with 0 meaning the class default.
	TileColor() uint32

	// FontColor returns the packed label color of the node.
	FontColor() uint32

	// Knobs returns the knobs of the node, in their defined order.
	Knobs() []Knob

	// Knob returns the knob with the given name,
	// and false if the node has no such knob.
	Knob(name string) (Knob, bool)
}

// Knob is a named, typed property of a [Node]: a cell of the node table.
type Knob interface {

	// Name returns the name of the knob, unique within its node.
	Name() string

	// Kind returns the kind of the knob.
	Kind() Kind

	// Node returns the node owning the knob.
	Node() Node

	// Value returns the current value of the knob, with the Go type
	// given by its [Kind]: bool, string, float64, []float64 or uint32.
	Value() (any, error)

	// SetValue sets the knob to the given value, of the Go type
	// given by its [Kind].
	SetValue(value any) error

	// ValueAt returns the array element at the given index at the
	// given time. Scalar knobs have the single index 0.
	ValueAt(time float64, index int) (float64, error)

	// SetValueAt sets the array element at the given index at the
	// given time.
	SetValueAt(value float64, time float64, index int) error

	// Dims returns the declared width and height of array knobs,
	// and 1, 1 otherwise.
	Dims() (width, height int)

	// Values returns the legal values of enumeration knobs.
	Values() []string

	// Enabled returns whether the knob can be edited.
	Enabled() bool

	// Visible returns whether the knob is shown in the properties panel.
	Visible() bool

	// Animated returns whether the knob is animated.
	Animated() bool

	// KeyAt returns whether the animated knob has a key at the given time.
	KeyAt(time float64) bool
}

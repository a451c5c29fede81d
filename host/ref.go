// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "fmt"

// Ref is a non-owning reference to a node by name. It is resolved
// against the host on every access, as the node may be deleted by the
// host at any time.
type Ref struct {

	// Name is the full name of the referenced node.
	Name string
}

// RefTo returns a reference to the given node.
func RefTo(n Node) Ref {
	return Ref{Name: n.Name()}
}

// Refs returns references to the given nodes.
func Refs(nodes []Node) []Ref {
	refs := make([]Ref, len(nodes))
	for i, n := range nodes {
		refs[i] = RefTo(n)
	}
	return refs
}

// Resolve returns the referenced node and true, or nil and false
// if the node is gone.
func (r Ref) Resolve(h Host) (Node, bool) {
	if r.Name == "" {
		return nil, false
	}
	return h.Node(r.Name)
}

// Knob resolves the node and returns its knob with the given name.
// It returns an error wrapping [ErrGone] if the node is gone,
// and false without an error if the node has no such knob.
func (r Ref) Knob(h Host, name string) (Knob, bool, error) {
	n, ok := r.Resolve(h)
	if !ok {
		return nil, false, fmt.Errorf("%w: %q", ErrGone, r.Name)
	}
	k, ok := n.Knob(name)
	return k, ok, nil
}

// String returns the name of the referenced node.
func (r Ref) String() string {
	return r.Name
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memhost

import "slices"

// registry is an ordered list of values with a map from their names
// to indexes, holding the nodes of a [Host] and the knobs of a [Node]
// in the order they were added.
type registry[V any] struct {
	names   []string
	values  []V
	indexes map[string]int
}

// set sets the value for the given name, adding it to the end
// if the name is not already present.
func (r *registry[V]) set(name string, v V) {
	if r.indexes == nil {
		r.indexes = make(map[string]int)
	}
	if idx, ok := r.indexes[name]; ok {
		r.values[idx] = v
		return
	}
	r.indexes[name] = len(r.values)
	r.names = append(r.names, name)
	r.values = append(r.values, v)
}

// at returns the value for the given name, and false if it is missing.
func (r *registry[V]) at(name string) (V, bool) {
	idx, ok := r.indexes[name]
	if ok {
		return r.values[idx], true
	}
	var zv V
	return zv, false
}

// delete removes the value with the given name,
// returning false if it does not find it.
func (r *registry[V]) delete(name string) bool {
	idx, ok := r.indexes[name]
	if !ok {
		return false
	}
	r.names = slices.Delete(r.names, idx, idx+1)
	r.values = slices.Delete(r.values, idx, idx+1)
	for i := idx; i < len(r.names); i++ {
		r.indexes[r.names[i]] = i
	}
	delete(r.indexes, name)
	return true
}

func (r *registry[V]) len() int {
	return len(r.values)
}

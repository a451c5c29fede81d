// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memhost

import (
	"fmt"
	"slices"

	"cogentcore.org/nodetable/host"
)

// Knob is a knob of a [Node].
type Knob struct {
	node     *Node
	name     string
	kind     host.Kind
	value    any
	width    int
	height   int
	values   []string
	disabled bool
	hidden   bool
	keys     []float64
}

// Name implements [host.Knob].
func (k *Knob) Name() string { return k.name }

// Kind implements [host.Knob].
func (k *Knob) Kind() host.Kind { return k.kind }

// Node implements [host.Knob].
func (k *Knob) Node() host.Node { return k.node }

// Value implements [host.Knob]. Array values are returned as copies.
func (k *Knob) Value() (any, error) {
	if err := k.check(); err != nil {
		return nil, err
	}
	k.node.host.mu.RLock()
	defer k.node.host.mu.RUnlock()
	if fs, ok := k.value.([]float64); ok {
		return slices.Clone(fs), nil
	}
	return k.value, nil
}

// SetValue implements [host.Knob].
func (k *Knob) SetValue(value any) error {
	if err := k.checkWrite(); err != nil {
		return err
	}
	v, err := host.Convert(k.kind, value)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", k.node.name, k.name, err)
	}
	if err := k.validate(v); err != nil {
		return err
	}
	k.node.host.mu.Lock()
	defer k.node.host.mu.Unlock()
	k.value = v
	return nil
}

// ValueAt implements [host.Knob]. Values are not interpolated
// between keys; the current value is returned for any time.
func (k *Knob) ValueAt(time float64, index int) (float64, error) {
	if err := k.check(); err != nil {
		return 0, err
	}
	k.node.host.mu.RLock()
	defer k.node.host.mu.RUnlock()
	switch v := k.value.(type) {
	case []float64:
		if index < 0 || index >= len(v) {
			return 0, fmt.Errorf("%s.%s[%d]: %w", k.node.name, k.name, index, host.ErrIndex)
		}
		return v[index], nil
	case float64:
		if index != 0 {
			return 0, fmt.Errorf("%s.%s[%d]: %w", k.node.name, k.name, index, host.ErrIndex)
		}
		return v, nil
	}
	return 0, fmt.Errorf("%s.%s: %w: not numeric", k.node.name, k.name, host.ErrType)
}

// SetValueAt implements [host.Knob]. Setting a value of an
// animated knob sets a key at the given time.
func (k *Knob) SetValueAt(value float64, time float64, index int) error {
	if err := k.checkWrite(); err != nil {
		return err
	}
	k.node.host.mu.Lock()
	defer k.node.host.mu.Unlock()
	switch v := k.value.(type) {
	case []float64:
		if index < 0 || index >= len(v) {
			return fmt.Errorf("%s.%s[%d]: %w", k.node.name, k.name, index, host.ErrIndex)
		}
		v[index] = value
	case float64:
		if index != 0 {
			return fmt.Errorf("%s.%s[%d]: %w", k.node.name, k.name, index, host.ErrIndex)
		}
		k.value = value
	default:
		return fmt.Errorf("%s.%s: %w: not numeric", k.node.name, k.name, host.ErrType)
	}
	if len(k.keys) > 0 && !slices.Contains(k.keys, time) {
		k.keys = append(k.keys, time)
		slices.Sort(k.keys)
	}
	return nil
}

// Dims implements [host.Knob].
func (k *Knob) Dims() (width, height int) {
	return max(k.width, 1), max(k.height, 1)
}

// Values implements [host.Knob].
func (k *Knob) Values() []string { return slices.Clone(k.values) }

// Enabled implements [host.Knob].
func (k *Knob) Enabled() bool { return !k.disabled }

// Visible implements [host.Knob].
func (k *Knob) Visible() bool { return !k.hidden }

// Animated implements [host.Knob].
func (k *Knob) Animated() bool { return len(k.keys) > 0 }

// KeyAt implements [host.Knob].
func (k *Knob) KeyAt(time float64) bool { return slices.Contains(k.keys, time) }

// SetEnabled sets whether the knob is enabled.
func (k *Knob) SetEnabled(enabled bool) *Knob {
	k.disabled = !enabled
	return k
}

// SetVisible sets whether the knob is visible.
func (k *Knob) SetVisible(visible bool) *Knob {
	k.hidden = !visible
	return k
}

// SetKeys sets the key times of the knob, making it
// animated if there is at least one key.
func (k *Knob) SetKeys(times ...float64) *Knob {
	k.keys = slices.Sorted(slices.Values(times))
	return k
}

// SetDims sets the declared width and height of an array knob.
func (k *Knob) SetDims(width, height int) *Knob {
	k.width, k.height = width, height
	return k
}

// SetLegalValues sets the legal values of an enumeration knob.
func (k *Knob) SetLegalValues(values ...string) *Knob {
	k.values = values
	return k
}

func (k *Knob) check() error {
	if k.node.deleted {
		return fmt.Errorf("%w: %q", host.ErrGone, k.node.name)
	}
	return nil
}

func (k *Knob) checkWrite() error {
	if err := k.check(); err != nil {
		return err
	}
	if k.disabled {
		return fmt.Errorf("%s.%s: %w", k.node.name, k.name, host.ErrDisabled)
	}
	if k.kind.IsReadOnly() {
		return fmt.Errorf("%s.%s: %w", k.node.name, k.name, host.ErrReadOnly)
	}
	return nil
}

// validate checks the shape of an already converted value.
func (k *Knob) validate(v any) error {
	switch k.kind {
	case host.Enumeration:
		if len(k.values) > 0 && !slices.Contains(k.values, v.(string)) {
			return fmt.Errorf("%s.%s: %w: %q is not one of %v", k.node.name, k.name, host.ErrType, v, k.values)
		}
	case host.Format:
		if fs := k.node.host.Formats(); len(fs) > 0 && !slices.Contains(fs, v.(string)) {
			return fmt.Errorf("%s.%s: %w: unknown format %q", k.node.name, k.name, host.ErrType, v)
		}
	case host.Array, host.Array2D, host.Color:
		if old, ok := k.value.([]float64); ok && len(old) != len(v.([]float64)) {
			return fmt.Errorf("%s.%s: %w: length %d, expected %d", k.node.name, k.name, host.ErrType, len(v.([]float64)), len(old))
		}
	}
	return nil
}

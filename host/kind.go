// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"strings"
)

// Kind is the type tag of a [Knob]. It determines the Go shape of the
// knob value, the cell editor, and which knobs a multi-cell edit
// propagates to.
type Kind int32 //enums:enum

const (
	// Other is a knob kind without dedicated support;
	// its value is edited as text.
	Other Kind = iota

	// Boolean is a knob holding a bool, shown as a checkbox.
	Boolean

	// Enumeration is a knob holding one string of a fixed set
	// of legal values, see [Knob.Values].
	Enumeration

	// Scalar is a knob holding a single float64.
	Scalar

	// String is a knob holding a string.
	String

	// Array is a knob holding a fixed-length []float64.
	Array

	// Array2D is a knob holding a []float64 grid
	// of [Knob.Dims] width by height, row major.
	Array2D

	// Color is a knob holding 3 or 4 float64 color channels.
	Color

	// ColorChip is a knob holding a packed 0xRRGGBBAA uint32 color,
	// where 0 means unset, in which case the node class default applies.
	ColorChip

	// Format is a knob holding the name of one of the host formats.
	Format

	// Transform is a knob holding a square transform matrix as
	// a []float64. Transform knobs can not be edited from the table.
	Transform
)

var kindNames = [...]string{"Other", "Boolean", "Enumeration", "Scalar", "String", "Array", "Array2D", "Color", "ColorChip", "Format", "Transform"}

// KindValues returns all possible values for the type Kind.
func KindValues() []Kind {
	v := make([]Kind, len(kindNames))
	for i := range v {
		v[i] = Kind(i)
	}
	return v
}

// String returns the string representation of this Kind value.
func (i Kind) String() string {
	if i < 0 || int(i) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int32(i))
	}
	return kindNames[i]
}

// SetString sets the Kind value from its string representation,
// ignoring case, and returns an error if the string is invalid.
func (i *Kind) SetString(s string) error {
	for k, n := range kindNames {
		if strings.EqualFold(n, s) {
			*i = Kind(k)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Kind", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Kind) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Kind) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// IsArray returns whether values of this kind are []float64.
func (i Kind) IsArray() bool {
	switch i {
	case Array, Array2D, Color, Transform:
		return true
	}
	return false
}

// IsReadOnly returns whether knobs of this kind can not be
// edited from the table, regardless of their enabled state.
func (i Kind) IsReadOnly() bool {
	return i == Transform
}

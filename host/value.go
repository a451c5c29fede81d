// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Convert returns the given value converted to the Go type of the
// given kind, accepting the numeric types a UI layer typically
// produces (ints, float32, []float32, []any of numbers).
// It returns an error wrapping [ErrType] if no conversion exists.
func Convert(kind Kind, value any) (any, error) {
	switch kind {
	case Boolean:
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case Scalar:
		if f, ok := toFloat(value); ok {
			return f, nil
		}
	case Enumeration, Format, String, Other:
		switch v := value.(type) {
		case string:
			return v, nil
		case fmt.Stringer:
			return v.String(), nil
		}
		if kind == Other {
			return value, nil
		}
	case Array, Array2D, Color, Transform:
		if fs, ok := ToFloats(value); ok {
			return fs, nil
		}
	case ColorChip:
		switch v := value.(type) {
		case uint32:
			return v, nil
		case int:
			if v >= 0 && int64(v) <= 0xFFFFFFFF {
				return uint32(v), nil
			}
		case int64:
			if v >= 0 && v <= 0xFFFFFFFF {
				return uint32(v), nil
			}
		case uint64:
			if v <= 0xFFFFFFFF {
				return uint32(v), nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %T for %v", ErrType, value, kind)
}

// ToFloats returns the given value as a []float64 if it is
// a slice of numbers, or a single number.
func ToFloats(value any) ([]float64, bool) {
	switch v := value.(type) {
	case []float64:
		return slices.Clone(v), true
	case []float32:
		fs := make([]float64, len(v))
		for i, f := range v {
			fs[i] = float64(f)
		}
		return fs, true
	case []int:
		fs := make([]float64, len(v))
		for i, f := range v {
			fs[i] = float64(f)
		}
		return fs, true
	case []any:
		fs := make([]float64, len(v))
		for i, e := range v {
			f, ok := toFloat(e)
			if !ok {
				return nil, false
			}
			fs[i] = f
		}
		return fs, true
	}
	if f, ok := toFloat(value); ok {
		return []float64{f}, true
	}
	return nil, false
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

// Equal returns whether the two knob values are equal,
// comparing []float64 values element-wise.
func Equal(a, b any) bool {
	af, aok := a.([]float64)
	bf, bok := b.([]float64)
	if aok || bok {
		return aok && bok && slices.Equal(af, bf)
	}
	return a == b
}

// FormatValue returns the human readable string of the given knob value.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case uint32:
		return fmt.Sprintf("0x%08X", v)
	case []float64:
		s := make([]string, len(v))
		for i, f := range v {
			s[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return "[" + strings.Join(s, ", ") + "]"
	}
	return fmt.Sprint(value)
}

// Parse parses the given string as a value of the given kind,
// accepting the output of [FormatValue]. Arrays may be separated
// by commas and/or spaces, with optional brackets.
func Parse(kind Kind, s string) (any, error) {
	s = strings.TrimSpace(s)
	switch kind {
	case Boolean:
		return strconv.ParseBool(s)
	case Scalar:
		return strconv.ParseFloat(s, 64)
	case Array, Array2D, Color, Transform:
		s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
		fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		fs := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, err
			}
			fs[i] = v
		}
		return fs, nil
	case ColorChip:
		var v uint64
		var err error
		switch {
		case strings.HasPrefix(s, "#"):
			v, err = strconv.ParseUint(s[1:], 16, 32)
		case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
			v, err = strconv.ParseUint(s[2:], 16, 32)
		default:
			v, err = strconv.ParseUint(s, 10, 32)
		}
		return uint32(v), err
	}
	return s, nil
}

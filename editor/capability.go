// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"image"
	"math"

	"cogentcore.org/nodetable/colors"
	"cogentcore.org/nodetable/host"
)

// Capability is what a [Delegate] does for knobs of one [host.Kind].
// Nil functions fall back on the default behavior documented for each.
type Capability struct {

	// Build returns a new editor for the given knob and edit value.
	// If it is nil or returns nil, no editor is opened.
	Build func(d *Delegate, k host.Knob, value any) Editor

	// Seed converts the edit value of the knob to the value
	// of the editor. If nil, the edit value is used as is.
	Seed func(d *Delegate, k host.Knob, value any) any

	// Commit returns the value to write to the knob from the editor.
	// If nil, the value of the editor is used as is.
	Commit func(d *Delegate, k host.Knob, ed Editor) (any, error)

	// Geometry returns the rectangle of the editor for the given
	// cell rectangle in the given column. If nil, the cell
	// rectangle is used.
	Geometry func(d *Delegate, k host.Knob, value any, col int, r image.Rectangle) image.Rectangle
}

// Capabilities is the table of the capabilities of each [host.Kind].
// Kinds missing from it use [LineCapability]. You can add to it
// to support more kinds.
var Capabilities = map[host.Kind]Capability{
	host.Boolean: {},
	host.Enumeration: {
		Build: func(d *Delegate, k host.Knob, value any) Editor {
			return NewComboBox(k.Values())
		},
	},
	host.Format: {
		Build: func(d *Delegate, k host.Knob, value any) Editor {
			return NewComboBox(d.Host.Formats())
		},
	},
	host.Color: {
		Build: func(d *Delegate, k host.Knob, value any) Editor {
			return NewColorEditor(max(length(value), 3), d.Config.Editor.Decimals)
		},
		Geometry: arrayGeometry,
	},
	host.ColorChip: {
		Build: func(d *Delegate, k host.Knob, value any) Editor {
			return NewColorEditor(4, d.Config.Editor.ColorChipDecimals)
		},
		Seed:     seedColorChip,
		Commit:   commitColorChip,
		Geometry: arrayGeometry,
	},
	host.Array: {
		Build:    buildArray,
		Geometry: arrayGeometry,
	},
	host.Array2D: {
		Build:    buildArray,
		Geometry: gridGeometry,
	},
	host.Transform: {
		Build: func(d *Delegate, k host.Knob, value any) Editor {
			n := length(value)
			return NewArrayEditor(n, squareSide(n), d.Config.Editor.Decimals)
		},
		Geometry: gridGeometry,
	},
}

// LineCapability is the capability of scalar, string and other
// knobs, edited in a [LineEditor].
var LineCapability = Capability{
	Build: func(d *Delegate, k host.Knob, value any) Editor {
		return &LineEditor{Kind: k.Kind()}
	},
}

// CapabilityFor returns the capability of the given kind.
func CapabilityFor(kind host.Kind) Capability {
	if c, ok := Capabilities[kind]; ok {
		return c
	}
	return LineCapability
}

func buildArray(d *Delegate, k host.Knob, value any) Editor {
	_, h := k.Dims()
	return NewArrayEditor(length(value), h, d.Config.Editor.Decimals)
}

// seedColorChip converts a packed color to channels, substituting
// the default color of the node class for an unset color.
func seedColorChip(d *Delegate, k host.Knob, value any) any {
	packed, _ := value.(uint32)
	if packed == colors.Unset {
		packed = d.Host.DefaultNodeColor(k.Node().Class())
	}
	ch := colors.UnpackFloats(packed)
	return ch[:]
}

// commitColorChip packs the channels, storing the unset color
// if they are the default color of the node class.
func commitColorChip(d *Delegate, k host.Knob, ed Editor) (any, error) {
	v, err := ed.Value()
	if err != nil {
		return nil, err
	}
	fs, _ := host.ToFloats(v)
	packed := colors.PackFloats(fs...)
	if packed == d.Host.DefaultNodeColor(k.Node().Class()) {
		return colors.Unset, nil
	}
	return packed, nil
}

// arrayGeometry widens the cell rectangle, to the right in the
// first column and to both sides otherwise, to at least one
// cell width per field.
func arrayGeometry(d *Delegate, k host.Knob, value any, col int, r image.Rectangle) image.Rectangle {
	columns, _ := k.Dims()
	switch k.Kind() {
	case host.ColorChip:
		columns = 4
	case host.Color:
		columns = length(value)
	}
	if col == 0 {
		r.Max.X += 100
	} else {
		r.Min.X -= 50
		r.Max.X += 50
	}
	return minWidth(r, d.Config.Editor.CellWidth*columns)
}

// gridGeometry sizes the rectangle to one cell per field, using a
// square grid for transforms.
func gridGeometry(d *Delegate, k host.Knob, value any, col int, r image.Rectangle) image.Rectangle {
	w, h := k.Dims()
	if k.Kind() == host.Transform {
		w = squareSide(length(value))
		h = w
	}
	r.Max.X = r.Min.X + d.Config.Editor.CellWidth*w
	r.Max.Y = r.Min.Y + d.Config.Editor.CellHeight*h
	return r
}

func minWidth(r image.Rectangle, width int) image.Rectangle {
	if r.Dx() < width {
		r.Max.X = r.Min.X + width
	}
	return r
}

func length(value any) int {
	fs, _ := value.([]float64)
	return len(fs)
}

func squareSide(n int) int {
	return max(int(math.Round(math.Sqrt(float64(n)))), 1)
}

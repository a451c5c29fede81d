// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the color conversions used by the node table:
// floating point channel colors as stored on color knobs, the packed
// 0xRRGGBBAA form used for node tile colors, hex strings, and blending.
package colors

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Floats is a non-premultiplied color with red, green, blue and alpha
// channels in the 0-1 range, the representation used by color knobs.
type Floats [4]float64

// FromFloats returns the [Floats] for the given channel values.
// Missing channels are zero, except alpha which defaults to 1.
// Extra channels are ignored.
func FromFloats(ch ...float64) Floats {
	f := Floats{0, 0, 0, 1}
	copy(f[:], ch)
	return f
}

// RGBA implements [color.Color].
func (f Floats) RGBA() (r, g, b, a uint32) {
	return f.NRGBA().RGBA()
}

// NRGBA returns the color as an 8-bit non-premultiplied color.
func (f Floats) NRGBA() color.NRGBA {
	return color.NRGBA{to8(f[0]), to8(f[1]), to8(f[2]), to8(f[3])}
}

// Slice returns the first n channels of the color.
func (f Floats) Slice(n int) []float64 {
	n = min(max(n, 0), 4)
	s := make([]float64, n)
	copy(s, f[:n])
	return s
}

// ToFloats returns the given color as [Floats].
func ToFloats(c color.Color) Floats {
	if f, ok := c.(Floats); ok {
		return f
	}
	n := AsNRGBA(c)
	return Floats{float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255, float64(n.A) / 255}
}

// AsNRGBA returns the given color as a non-premultiplied 8-bit color.
// [Floats] are converted without premultiplying, so that no precision
// is lost at low alpha.
func AsNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	if f, ok := c.(Floats); ok {
		return f.NRGBA()
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	n := AsNRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// FromHex parses the given hex color string
// and returns the resulting color. Supported forms are
// #RGB, #RRGGBB and #RRGGBBAA, with or without the leading #.
func FromHex(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.NRGBA{}, fmt.Errorf("colors.FromHex: could not process %q", hex)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// Blend returns a color that is the given percent blend between the first
// and second color -- 10 = 10% of the second and 90% of the first, etc --
// blending is done directly on non-pre-multiplied RGB values.
// The alpha of the result is that of the first color.
func Blend(pct float64, x, y color.Color) color.RGBA {
	xf := ToFloats(x)
	yf := ToFloats(y)
	oth := math.Min(math.Max(pct, 0), 100) / 100
	me := 1 - oth
	for i := range 3 {
		xf[i] = me*xf[i] + oth*yf[i]
	}
	return AsRGBA(xf)
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

// Unset is the packed color value meaning "no color set",
// for which the default color of the node class applies.
const Unset uint32 = 0

// Pack returns the given color in the packed 0xRRGGBBAA form
// used by node tile and font colors.
func Pack(c color.Color) uint32 {
	n := AsNRGBA(c)
	return uint32(n.R)<<24 | uint32(n.G)<<16 | uint32(n.B)<<8 | uint32(n.A)
}

// Unpack returns the color of the given packed 0xRRGGBBAA value.
func Unpack(packed uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(packed >> 24),
		G: uint8(packed >> 16),
		B: uint8(packed >> 8),
		A: uint8(packed),
	}
}

// PackFloats is [Pack] for channel values in the 0-1 range.
// Three channels are packed with an opaque alpha.
func PackFloats(ch ...float64) uint32 {
	return Pack(FromFloats(ch...))
}

// UnpackFloats is [Unpack] returning channel values in the 0-1 range.
func UnpackFloats(packed uint32) Floats {
	return ToFloats(Unpack(packed))
}

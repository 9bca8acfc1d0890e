// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

import (
	"image/color"

	"github.com/Gipcomp/pdfview/errs"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied ARGB color.
type Color struct {
	A, R, G, B uint8
}

var _ color.Color = Color{}

var colorEmpty = Color{}

// ColorEmpty returns the fully transparent color, all channels zero.
func ColorEmpty() Color {
	return colorEmpty
}

func ColorFromArgb(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// ColorFromRGB returns an opaque color.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{A: 0xff, R: r, G: g, B: b}
}

// ColorFromArgbValue unpacks a value produced by ToArgb.
func ColorFromArgbValue(argb uint32) Color {
	return Color{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}

// ToArgb packs c into a 32-bit value with alpha in the highest byte.
func ToArgb(c Color) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ColorFromHex parses "#rrggbb" or "#rgb" into an opaque color.
func ColorFromHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errs.WrapErrorNoPanic(err)
	}

	r, g, b := c.RGB255()

	return ColorFromRGB(r, g, b), nil
}

// Hex formats the color channels as "#rrggbb". Alpha is dropped.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

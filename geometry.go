// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

import (
	"image"
	"math"
)

// Geometry below is measured in device independent units of 1/96".

type Point struct {
	X, Y float64
}

type Size struct {
	Width, Height float64
}

type Rect struct {
	X, Y, Width, Height float64
}

// RenderRect is a rectangle carrying a checked (selected) flag.
type RenderRect struct {
	Rect
	IsChecked bool
}

// Thickness describes the four sides of a margin or padding.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Location() Point {
	return Point{X: r.X, Y: r.Y}
}

func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// CreateSize returns a size with negative dimensions clamped to zero.
func CreateSize(width, height float64) Size {
	return Size{Width: clampNonNegative(width), Height: clampNonNegative(height)}
}

// CreateRect returns a rectangle with negative dimensions clamped to zero.
func CreateRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: clampNonNegative(width), Height: clampNonNegative(height)}
}

func CreateRectFromLocation(location Point, size Size) Rect {
	return CreateRect(location.X, location.Y, size.Width, size.Height)
}

func CreateRenderRect(x, y, width, height float64, isChecked bool) RenderRect {
	return RenderRect{Rect: CreateRect(x, y, width, height), IsChecked: isChecked}
}

// ThicknessHorizontal returns Left + Right.
func ThicknessHorizontal(t Thickness) float64 {
	return t.Left + t.Right
}

// ThicknessVertical returns Top + Bottom.
func ThicknessVertical(t Thickness) float64 {
	return t.Top + t.Bottom
}

func dipToPixels(v float64, dpi int) int {
	return int(math.Round(v * float64(dpi) / referenceDPI))
}

// pixelBounds maps r onto the native pixel grid of a device at dpi.
func (r Rect) pixelBounds(dpi int) image.Rectangle {
	return image.Rect(
		dipToPixels(r.X, dpi),
		dipToPixels(r.Y, dpi),
		dipToPixels(r.Right(), dpi),
		dipToPixels(r.Bottom(), dpi))
}

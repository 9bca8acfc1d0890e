// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

// Brush describes how an area is painted.
type Brush interface {
	// Color returns the color the brush paints with.
	Color() Color
}

type SolidColorBrush struct {
	color Color
}

func NewSolidColorBrush(color Color) *SolidColorBrush {
	return &SolidColorBrush{color: color}
}

func (b *SolidColorBrush) Color() Color {
	return b.color
}

// CreateBrush wraps color into a solid color brush.
func CreateBrush(color Color) Brush {
	return NewSolidColorBrush(color)
}

// brushColor returns the color of brush, or ColorEmpty for a nil brush.
func brushColor(brush Brush) Color {
	if brush == nil {
		return colorEmpty
	}
	return brush.Color()
}

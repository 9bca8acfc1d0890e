// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

// DefaultPenThickness is the stroke thickness of pens created without one.
const DefaultPenThickness = 1.0

type Pen struct {
	brush     Brush
	thickness float64
}

// NewPen prepares a pen stroking with brush. thickness is specified in 1/96"
// units.
func NewPen(brush Brush, thickness float64) *Pen {
	return &Pen{brush: brush, thickness: thickness}
}

func (p *Pen) Brush() Brush {
	return p.brush
}

// Thickness returns the stroke thickness in 1/96" units.
func (p *Pen) Thickness() float64 {
	return p.thickness
}

func CreatePen(brush Brush, thickness float64) *Pen {
	return NewPen(brush, thickness)
}

func CreateDefaultPen(brush Brush) *Pen {
	return NewPen(brush, DefaultPenThickness)
}

// CreateColorPen wraps color into a solid color brush and builds a pen from it.
func CreateColorPen(color Color, thickness float64) *Pen {
	return CreatePen(CreateBrush(color), thickness)
}

func CreateDefaultColorPen(color Color) *Pen {
	return CreateColorPen(color, DefaultPenThickness)
}

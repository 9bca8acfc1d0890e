// Copyright 2017 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declarative

import (
	"github.com/Gipcomp/pdfview"
)

// Brush describes a pdfview.Brush to be created.
type Brush interface {
	Create() (pdfview.Brush, error)
}

type TransparentBrush struct {
}

func (TransparentBrush) Create() (pdfview.Brush, error) {
	return pdfview.CreateBrush(pdfview.ColorEmpty()), nil
}

type SolidColorBrush struct {
	Color pdfview.Color
}

func (scb SolidColorBrush) Create() (pdfview.Brush, error) {
	return pdfview.CreateBrush(scb.Color), nil
}

// HexColorBrush is an opaque solid brush given as "#rrggbb" or "#rgb".
type HexColorBrush struct {
	Color string
}

func (hcb HexColorBrush) Create() (pdfview.Brush, error) {
	color, err := pdfview.ColorFromHex(hcb.Color)
	if err != nil {
		return nil, err
	}

	return pdfview.CreateBrush(color), nil
}

type Pen struct {
	Brush Brush

	// Thickness in 1/96" units. Zero selects pdfview.DefaultPenThickness.
	Thickness float64
}

func (p Pen) Create() (*pdfview.Pen, error) {
	if p.Brush == nil {
		return nil, nil
	}

	brush, err := p.Brush.Create()
	if err != nil {
		return nil, err
	}

	if p.Thickness == 0 {
		return pdfview.CreateDefaultPen(brush), nil
	}

	return pdfview.CreatePen(brush, p.Thickness), nil
}

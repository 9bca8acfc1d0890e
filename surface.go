// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdfview holds the drawing helpers of the PDF viewer control: DPI
// aware unit conversion, colors, brushes, pens, rectangles and the Surface
// they are drawn onto.
package pdfview

import "image"

// Surface is a 2D drawing target. Bounds are in 1/96" units.
type Surface interface {
	// DrawImage draws img stretched into bounds.
	DrawImage(img image.Image, bounds Rect) error

	// FillRectangle paints bounds with brush, without an outline.
	FillRectangle(brush Brush, bounds Rect) error

	// StrokeRectangle outlines bounds with pen, without filling it.
	StrokeRectangle(pen *Pen, bounds Rect) error
}

// referenceDPI is the resolution at which one device independent unit
// equals one pixel.
const referenceDPI = 96

// DrawImageUnscaled draws img with its upper left corner at (x, y) so that
// one image pixel covers one display pixel at the cached DPI.
func DrawImageUnscaled(s Surface, img image.Image, x, y float64) error {
	dpi := Dpi()
	size := img.Bounds().Size()

	return s.DrawImage(img, Rect{
		X:      x,
		Y:      y,
		Width:  float64(size.X * referenceDPI / dpi),
		Height: float64(size.Y * referenceDPI / dpi),
	})
}

// FillRectangle fills rect with brush.
func FillRectangle(s Surface, brush Brush, rect Rect) error {
	return s.FillRectangle(brush, rect)
}

// DrawRectangle outlines rect with pen.
func DrawRectangle(s Surface, pen *Pen, rect Rect) error {
	return s.StrokeRectangle(pen, rect)
}

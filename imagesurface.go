// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

import (
	"image"

	"github.com/Gipcomp/pdfview/errs"
	"golang.org/x/image/draw"
)

// ImageSurface is a software Surface painting into an RGBA image. One 1/96"
// unit covers dpi/96 pixels.
type ImageSurface struct {
	img *image.RGBA
	dpi int
}

var _ Surface = (*ImageSurface)(nil)

// NewImageSurface creates a transparent surface of size native pixels. A
// non-positive dpi selects the cached process DPI.
func NewImageSurface(size Int32Size, dpi int) *ImageSurface {
	w, h := int(size.Width), int(size.Height)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, w, h)), dpi)
}

// NewImageSurfaceFromImage paints into img directly.
func NewImageSurfaceFromImage(img *image.RGBA, dpi int) *ImageSurface {
	if dpi <= 0 {
		dpi = Dpi()
	}

	return &ImageSurface{img: img, dpi: dpi}
}

func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

func (s *ImageSurface) DPI() int {
	return s.dpi
}

// Bounds returns the surface extent in 1/96" units.
func (s *ImageSurface) Bounds() Rect {
	size := s.img.Bounds().Size()

	return Rect{
		Width:  float64(size.X) * referenceDPI / float64(s.dpi),
		Height: float64(size.Y) * referenceDPI / float64(s.dpi),
	}
}

func (s *ImageSurface) DrawImage(img image.Image, bounds Rect) error {
	if img == nil {
		return errs.NewError("image cannot be nil")
	}

	dst := bounds.pixelBounds(s.dpi)
	if dst.Empty() {
		return nil
	}

	src := img.Bounds()
	if dst.Size() == src.Size() {
		draw.Copy(s.img, dst.Min, img, src, draw.Over, nil)
		return nil
	}

	draw.ApproxBiLinear.Scale(s.img, dst, img, src, draw.Over, nil)

	return nil
}

func (s *ImageSurface) FillRectangle(brush Brush, bounds Rect) error {
	s.fillPixels(brushColor(brush), bounds.pixelBounds(s.dpi))

	return nil
}

// StrokeRectangle centers a stroke of the pen's thickness on the edge of
// bounds. The stroke is at least one pixel wide.
func (s *ImageSurface) StrokeRectangle(pen *Pen, bounds Rect) error {
	if pen == nil || pen.thickness <= 0 {
		return nil
	}

	color := brushColor(pen.brush)
	half := pen.thickness / 2

	outer := Rect{
		X:      bounds.X - half,
		Y:      bounds.Y - half,
		Width:  bounds.Width + pen.thickness,
		Height: bounds.Height + pen.thickness,
	}.pixelBounds(s.dpi)

	width := dipToPixels(pen.thickness, s.dpi)
	if width < 1 {
		width = 1
	}

	inner := outer.Inset(width)
	if inner.Empty() {
		s.fillPixels(color, outer)
		return nil
	}

	// Four non-overlapping bands so translucent pens blend once per pixel.
	s.fillPixels(color, image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, inner.Min.Y))
	s.fillPixels(color, image.Rect(outer.Min.X, inner.Max.Y, outer.Max.X, outer.Max.Y))
	s.fillPixels(color, image.Rect(outer.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y))
	s.fillPixels(color, image.Rect(inner.Max.X, inner.Min.Y, outer.Max.X, inner.Max.Y))

	return nil
}

func (s *ImageSurface) fillPixels(color Color, r image.Rectangle) {
	if color.A == 0 || r.Empty() {
		return
	}

	draw.Draw(s.img, r, image.NewUniform(color), image.Point{}, draw.Over)
}

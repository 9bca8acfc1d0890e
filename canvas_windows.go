// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package pdfview

import (
	"image"

	"github.com/Gipcomp/pdfview/errs"
	"github.com/Gipcomp/win32/gdi32"
	"github.com/Gipcomp/win32/kernel32"
)

// GDISurface is a Surface drawing onto a GDI device context.
type GDISurface struct {
	hdc gdi32.HDC
	dpi int
}

var _ Surface = (*GDISurface)(nil)

// NewGDISurface wraps hdc. The caller keeps ownership of the device context.
func NewGDISurface(hdc gdi32.HDC) (*GDISurface, error) {
	if hdc == 0 {
		return nil, errs.NewError("invalid hdc")
	}

	s := &GDISurface{hdc: hdc, dpi: dpiForHDC(hdc)}

	if gdi32.SetBkMode(hdc, gdi32.TRANSPARENT) == 0 {
		return nil, errs.NewError("SetBkMode failed")
	}

	switch gdi32.SetStretchBltMode(hdc, gdi32.HALFTONE) {
	case 0, kernel32.ERROR_INVALID_PARAMETER:
		return nil, errs.NewError("SetStretchBltMode failed")
	}

	if !gdi32.SetBrushOrgEx(hdc, 0, 0, nil) {
		return nil, errs.NewError("SetBrushOrgEx failed")
	}

	return s, nil
}

func (s *GDISurface) HDC() gdi32.HDC {
	return s.hdc
}

func (s *GDISurface) DPI() int {
	return s.dpi
}

func (s *GDISurface) withGdiObj(handle gdi32.HGDIOBJ, f func() error) error {
	oldHandle := gdi32.SelectObject(s.hdc, handle)
	if oldHandle == 0 {
		return errs.NewError("SelectObject failed")
	}
	defer gdi32.SelectObject(s.hdc, oldHandle)

	return f()
}

// withOwnedGdiObj selects handle for the duration of f and deletes it afterwards.
func (s *GDISurface) withOwnedGdiObj(handle gdi32.HGDIOBJ, f func() error) error {
	defer gdi32.DeleteObject(handle)

	return s.withGdiObj(handle, f)
}

func colorref(c Color) gdi32.COLORREF {
	return gdi32.COLORREF(uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16)
}

// newGDIBrush creates a GDI brush for brush. GDI brushes and pens have no
// alpha: a fully transparent color paints nothing, any other color is opaque.
func newGDIBrush(brush Brush) (gdi32.HBRUSH, error) {
	lb := &gdi32.LOGBRUSH{LbStyle: gdi32.BS_NULL}
	if c := brushColor(brush); c.A != 0 {
		lb = &gdi32.LOGBRUSH{LbStyle: gdi32.BS_SOLID, LbColor: colorref(c)}
	}

	hBrush := gdi32.CreateBrushIndirect(lb)
	if hBrush == 0 {
		return 0, errs.NewError("CreateBrushIndirect failed")
	}

	return hBrush, nil
}

func newGDIPen(pen *Pen, dpi int) (gdi32.HPEN, error) {
	var hPen gdi32.HPEN
	if pen == nil || pen.thickness <= 0 || brushColor(pen.brush).A == 0 {
		lb := &gdi32.LOGBRUSH{LbStyle: gdi32.BS_NULL}
		hPen = gdi32.ExtCreatePen(gdi32.PS_COSMETIC|gdi32.PS_NULL, 1, lb, 0, nil)
	} else {
		width := dipToPixels(pen.thickness, dpi)
		if width < 1 {
			width = 1
		}

		lb := &gdi32.LOGBRUSH{LbStyle: gdi32.BS_SOLID, LbColor: colorref(brushColor(pen.brush))}
		hPen = gdi32.ExtCreatePen(
			gdi32.PS_GEOMETRIC|gdi32.PS_SOLID|gdi32.PS_ENDCAP_FLAT|gdi32.PS_JOIN_MITER,
			uint32(width), lb, 0, nil)
	}

	if hPen == 0 {
		return 0, errs.NewError("ExtCreatePen failed")
	}

	return hPen, nil
}

// rectanglePixels draws a rectangle in native pixels. sizeCorrection is
// added to the right and bottom edges.
func (s *GDISurface) rectanglePixels(brush Brush, pen *Pen, bounds image.Rectangle, sizeCorrection int) error {
	hBrush, err := newGDIBrush(brush)
	if err != nil {
		return err
	}

	hPen, err := newGDIPen(pen, s.dpi)
	if err != nil {
		gdi32.DeleteObject(gdi32.HGDIOBJ(hBrush))
		return err
	}

	return s.withOwnedGdiObj(gdi32.HGDIOBJ(hBrush), func() error {
		return s.withOwnedGdiObj(gdi32.HGDIOBJ(hPen), func() error {
			if !gdi32.Rectangle_(
				s.hdc,
				int32(bounds.Min.X),
				int32(bounds.Min.Y),
				int32(bounds.Max.X+sizeCorrection),
				int32(bounds.Max.Y+sizeCorrection)) {

				return errs.NewError("Rectangle_ failed")
			}

			return nil
		})
	})
}

// FillRectangle draws a filled rectangle without an outline. GDI excludes
// the right and bottom edges of pen-less rectangles, so they are grown by
// one pixel.
func (s *GDISurface) FillRectangle(brush Brush, bounds Rect) error {
	return s.rectanglePixels(brush, nil, bounds.pixelBounds(s.dpi), 1)
}

func (s *GDISurface) StrokeRectangle(pen *Pen, bounds Rect) error {
	return s.rectanglePixels(nil, pen, bounds.pixelBounds(s.dpi), 0)
}

// DrawImage composites img stretched into bounds, honoring its alpha channel.
func (s *GDISurface) DrawImage(img image.Image, bounds Rect) error {
	if img == nil {
		return errs.NewError("image cannot be nil")
	}

	dst := bounds.pixelBounds(s.dpi)
	src := img.Bounds()
	if dst.Empty() || src.Empty() {
		return nil
	}

	hdcMem := gdi32.CreateCompatibleDC(s.hdc)
	if hdcMem == 0 {
		return errs.NewError("CreateCompatibleDC failed")
	}
	defer gdi32.DeleteDC(hdcMem)

	hBmp, err := hBitmapFromImage(hdcMem, img, s.dpi)
	if err != nil {
		return err
	}
	defer gdi32.DeleteObject(gdi32.HGDIOBJ(hBmp))

	hOld := gdi32.SelectObject(hdcMem, gdi32.HGDIOBJ(hBmp))
	if hOld == 0 {
		return errs.NewError("SelectObject failed")
	}
	defer gdi32.SelectObject(hdcMem, hOld)

	if !gdi32.AlphaBlend(
		s.hdc,
		int32(dst.Min.X),
		int32(dst.Min.Y),
		int32(dst.Dx()),
		int32(dst.Dy()),
		hdcMem,
		0,
		0,
		int32(src.Dx()),
		int32(src.Dy()),
		gdi32.BLENDFUNCTION{AlphaFormat: gdi32.AC_SRC_ALPHA, SourceConstantAlpha: 255},
	) {
		return errs.NewError("AlphaBlend failed")
	}

	return nil
}

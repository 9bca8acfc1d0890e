// Copyright 2012 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declarative

import (
	"github.com/Gipcomp/pdfview"
)

type Margins struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

func (m Margins) isZero() bool {
	return m.Left == 0 && m.Top == 0 && m.Right == 0 && m.Bottom == 0
}

func (m Margins) toW() pdfview.Thickness {
	return pdfview.Thickness{Left: m.Left, Top: m.Top, Right: m.Right, Bottom: m.Bottom}
}

type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rectangle) toW() pdfview.Rect {
	return pdfview.CreateRect(r.X, r.Y, r.Width, r.Height)
}

type Size struct {
	Width  float64
	Height float64
}

func (s Size) toW() pdfview.Size {
	return pdfview.CreateSize(s.Width, s.Height)
}

// Inset shrinks bounds by margins. The result never has a negative size.
func Inset(bounds Rectangle, margins Margins) pdfview.Rect {
	r := bounds.toW()
	t := margins.toW()

	return pdfview.CreateRect(
		r.X+t.Left,
		r.Y+t.Top,
		r.Width-pdfview.ThicknessHorizontal(t),
		r.Height-pdfview.ThicknessVertical(t))
}

// Outset grows a content size by margins.
func Outset(content Size, margins Margins) pdfview.Size {
	s := content.toW()
	t := margins.toW()

	return pdfview.CreateSize(
		s.Width+pdfview.ThicknessHorizontal(t),
		s.Height+pdfview.ThicknessVertical(t))
}

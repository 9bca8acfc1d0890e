// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

import (
	"image"
	"math"

	"github.com/Gipcomp/pdfview/errs"
)

type metafileOp byte

const (
	metafileDrawImage metafileOp = iota
	metafileFillRectangle
	metafileStrokeRectangle
)

type metafileRecord struct {
	op     metafileOp
	bounds Rect
	img    image.Image
	brush  Brush
	pen    *Pen
}

// Metafile is a Surface that records drawing commands so they can be played
// back onto another Surface, e.g. to cache the decoration of a page.
type Metafile struct {
	records []metafileRecord
}

var _ Surface = (*Metafile)(nil)

func NewMetafile() *Metafile {
	return &Metafile{}
}

func (mf *Metafile) DrawImage(img image.Image, bounds Rect) error {
	mf.records = append(mf.records, metafileRecord{op: metafileDrawImage, bounds: bounds, img: img})
	return nil
}

func (mf *Metafile) FillRectangle(brush Brush, bounds Rect) error {
	mf.records = append(mf.records, metafileRecord{op: metafileFillRectangle, bounds: bounds, brush: brush})
	return nil
}

func (mf *Metafile) StrokeRectangle(pen *Pen, bounds Rect) error {
	mf.records = append(mf.records, metafileRecord{op: metafileStrokeRectangle, bounds: bounds, pen: pen})
	return nil
}

// Len returns the number of recorded commands.
func (mf *Metafile) Len() int {
	return len(mf.records)
}

func (mf *Metafile) Reset() {
	mf.records = mf.records[:0]
}

// Bounds returns the union of all recorded bounds, widened by half the pen
// thickness for strokes.
func (mf *Metafile) Bounds() Rect {
	if len(mf.records) == 0 {
		return Rect{}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, r := range mf.records {
		b := r.bounds
		if r.op == metafileStrokeRectangle && r.pen != nil {
			half := r.pen.thickness / 2
			b = Rect{X: b.X - half, Y: b.Y - half, Width: b.Width + r.pen.thickness, Height: b.Height + r.pen.thickness}
		}

		minX = math.Min(minX, b.X)
		minY = math.Min(minY, b.Y)
		maxX = math.Max(maxX, b.Right())
		maxY = math.Max(maxY, b.Bottom())
	}

	return CreateRect(minX, minY, maxX-minX, maxY-minY)
}

// Play replays the recorded commands onto s in order and stops at the first
// error. A panic raised by s is returned as an *errs.Error.
func (mf *Metafile) Play(s Surface) (err error) {
	defer func() {
		if x := recover(); x != nil {
			err = errs.ToError(x)
		}
	}()

	for _, r := range mf.records {
		switch r.op {
		case metafileDrawImage:
			err = s.DrawImage(r.img, r.bounds)

		case metafileFillRectangle:
			err = s.FillRectangle(r.brush, r.bounds)

		case metafileStrokeRectangle:
			err = s.StrokeRectangle(r.pen, r.bounds)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

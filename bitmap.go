// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

import (
	"image"

	"github.com/Gipcomp/pdfview/errs"
	"github.com/disintegration/imaging"
)

// LoadBitmap decodes the image file at filePath. EXIF orientation is applied.
func LoadBitmap(filePath string) (image.Image, error) {
	img, err := imaging.Open(filePath, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errs.WrapError(err)
	}

	return img, nil
}

// NewBitmap creates a bitmap of size native pixels filled with fill. Negative
// dimensions are clamped to zero.
func NewBitmap(size Int32Size, fill Color) *image.NRGBA {
	w, h := size.Width, size.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return imaging.New(int(w), int(h), fill)
}

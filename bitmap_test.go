// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Gipcomp/pdfview/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBitmap(t *testing.T) {
	bmp := NewBitmap(NewInt32Size(3, 2), ColorFromRGB(1, 2, 3))

	assert.Equal(t, image.Rect(0, 0, 3, 2), bmp.Bounds())
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 255}, bmp.NRGBAAt(2, 1))

	assert.True(t, NewBitmap(NewInt32Size(-3, 2), ColorEmpty()).Bounds().Empty())
}

func TestLoadBitmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.png")

	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	src.SetNRGBA(1, 1, color.NRGBA{R: 200, A: 255})

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	img, err := LoadBitmap(path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(4, 3), img.Bounds().Size())

	r, _, _, a := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(200), r>>8)
	assert.Equal(t, uint32(255), a>>8)
}

func TestLoadBitmapMissing(t *testing.T) {
	_, err := LoadBitmap(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)

	var pdfErr *errs.Error
	assert.True(t, errors.As(err, &pdfErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

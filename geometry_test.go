// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateSizeClamps(t *testing.T) {
	tests := []struct {
		w, h float64
		want Size
	}{
		{10, 20, Size{10, 20}},
		{0, 0, Size{0, 0}},
		{-1, 20, Size{0, 20}},
		{10, -0.5, Size{10, 0}},
		{-3, -4, Size{0, 0}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CreateSize(tt.w, tt.h))
	}
}

func TestCreateRectClamps(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		want       Rect
	}{
		{"unchanged", 1, 2, 3, 4, Rect{1, 2, 3, 4}},
		{"negative width", 1, 2, -3, 4, Rect{1, 2, 0, 4}},
		{"negative height", 1, 2, 3, -4, Rect{1, 2, 3, 0}},
		{"negative position kept", -1, -2, 3, 4, Rect{-1, -2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CreateRect(tt.x, tt.y, tt.w, tt.h)
			assert.Equal(t, tt.want, r)
			assert.GreaterOrEqual(t, r.Width, 0.0)
			assert.GreaterOrEqual(t, r.Height, 0.0)
		})
	}
}

func TestCreateRectFromLocation(t *testing.T) {
	r := CreateRectFromLocation(Point{X: 5, Y: 6}, Size{Width: -7, Height: 8})

	assert.Equal(t, Rect{X: 5, Y: 6, Width: 0, Height: 8}, r)
	assert.Equal(t, Point{X: 5, Y: 6}, r.Location())
	assert.Equal(t, Size{Width: 0, Height: 8}, r.Size())
	assert.Equal(t, 5.0, r.Right())
	assert.Equal(t, 14.0, r.Bottom())
}

func TestCreateRenderRect(t *testing.T) {
	rr := CreateRenderRect(1, 2, -3, 4, true)

	assert.True(t, rr.IsChecked)
	assert.Equal(t, Rect{X: 1, Y: 2, Width: 0, Height: 4}, rr.Rect)

	assert.False(t, CreateRenderRect(0, 0, 1, 1, false).IsChecked)
}

func TestThicknessSums(t *testing.T) {
	margin := Thickness{Left: 2, Right: 3, Top: 4, Bottom: 5}

	assert.Equal(t, 5.0, ThicknessHorizontal(margin))
	assert.Equal(t, 9.0, ThicknessVertical(margin))
	assert.Equal(t, 0.0, ThicknessHorizontal(Thickness{}))
}

func TestPixelBounds(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}

	assert.Equal(t, image.Rect(1, 2, 4, 6), r.pixelBounds(96))
	assert.Equal(t, image.Rect(2, 4, 8, 12), r.pixelBounds(192))
	assert.Equal(t, image.Rect(2, 3, 6, 9), r.pixelBounds(144))
}

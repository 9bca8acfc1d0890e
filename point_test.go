// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// wrappedHash mirrors the combined hash with explicit 32-bit wraparound.
func wrappedHash(a, b int32) int32 {
	h := uint32(17)
	h = h*23 + uint32(a)
	h = h*23 + uint32(b)
	return int32(h)
}

func TestInt32SizeEquality(t *testing.T) {
	a := NewInt32Size(640, 480)
	b := NewInt32Size(640, 480)

	assert.True(t, a.Equals(b))
	assert.True(t, a == b)
	assert.Equal(t, a.HashCode(), b.HashCode())

	assert.False(t, a.Equals(NewInt32Size(641, 480)))
	assert.False(t, a.Equals(NewInt32Size(640, 481)))
	assert.False(t, a == NewInt32Size(480, 640))
}

func TestInt32PointEquality(t *testing.T) {
	a := NewInt32Point(-3, 7)
	b := Int32Point{X: -3, Y: 7}

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.HashCode(), b.HashCode())

	assert.False(t, a.Equals(NewInt32Point(3, 7)))
	assert.False(t, a.Equals(NewInt32Point(-3, -7)))
}

func TestHashCode(t *testing.T) {
	assert.Equal(t, int32(9018), NewInt32Size(1, 2).HashCode())
	assert.Equal(t, int32(9018), NewInt32Point(1, 2).HashCode())
	assert.Equal(t, int32(17*23*23), Int32Point{}.HashCode())

	t.Run("wraps on overflow", func(t *testing.T) {
		values := []int32{math.MaxInt32, math.MinInt32, -1, 0, 1 << 20}
		for _, a := range values {
			for _, b := range values {
				assert.Equal(t, wrappedHash(a, b), NewInt32Size(a, b).HashCode())
				assert.Equal(t, wrappedHash(a, b), NewInt32Point(a, b).HashCode())
			}
		}
	})
}

func TestNegativeValuesKept(t *testing.T) {
	s := NewInt32Size(-5, -6)

	assert.Equal(t, int32(-5), s.Width)
	assert.Equal(t, int32(-6), s.Height)
}

func TestValueTypesAsMapKeys(t *testing.T) {
	pages := map[Int32Size]string{
		NewInt32Size(595, 842): "A4",
		NewInt32Size(612, 792): "Letter",
	}

	assert.Equal(t, "A4", pages[Int32Size{Width: 595, Height: 842}])
	assert.Equal(t, "Letter", pages[Int32Size{Width: 612, Height: 792}])

	visited := map[Int32Point]bool{NewInt32Point(1, 1): true}
	assert.True(t, visited[Int32Point{X: 1, Y: 1}])
	assert.False(t, visited[Int32Point{X: 1, Y: 2}])
}

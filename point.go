// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

// int32Pair is implemented by the two-field integer value types below. It
// lets them share equality and hashing.
type int32Pair interface {
	comparable
	fields() (int32, int32)
}

func pairEquals[T int32Pair](a, b T) bool {
	return a == b
}

// pairHash combines both fields as hash = (17*23 + a)*23 + b. Overflow wraps.
func pairHash[T int32Pair](p T) int32 {
	a, b := p.fields()

	hash := int32(17)
	hash = hash*23 + a
	hash = hash*23 + b

	return hash
}

// Int32Size is a width and height in native pixels.
type Int32Size struct {
	Width, Height int32
}

// NewInt32Size does not validate its arguments; negative values are kept.
func NewInt32Size(width, height int32) Int32Size {
	return Int32Size{Width: width, Height: height}
}

func (s Int32Size) fields() (int32, int32) {
	return s.Width, s.Height
}

func (s Int32Size) Equals(other Int32Size) bool {
	return pairEquals(s, other)
}

func (s Int32Size) HashCode() int32 {
	return pairHash(s)
}

// Int32Point defines a 2D coordinate in native pixels.
type Int32Point struct {
	X, Y int32
}

func NewInt32Point(x, y int32) Int32Point {
	return Int32Point{X: x, Y: y}
}

func (p Int32Point) fields() (int32, int32) {
	return p.X, p.Y
}

func (p Int32Point) Equals(other Int32Point) bool {
	return pairEquals(p, other)
}

func (p Int32Point) HashCode() int32 {
	return pairHash(p)
}

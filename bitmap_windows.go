// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package pdfview

import (
	"image"
	"math"
	"unsafe"

	"github.com/Gipcomp/pdfview/errs"
	"github.com/Gipcomp/win32/gdi32"
	"github.com/Gipcomp/win32/kernel32"
)

const inchesPerMeter float64 = 39.37007874

// newDIBSection creates a top-down 32 bpp DIB section of size native pixels.
// Each pixel is stored as premultiplied B, G, R, A bytes in the returned
// slice.
func newDIBSection(hdc gdi32.HDC, size image.Point, dpi int) (gdi32.HBITMAP, []byte, error) {
	var bi gdi32.BITMAPV5HEADER
	bi.BiSize = uint32(unsafe.Sizeof(bi))
	bi.BiWidth = int32(size.X)
	bi.BiHeight = -int32(size.Y)
	bi.BiPlanes = 1
	bi.BiBitCount = 32
	bi.BiCompression = gdi32.BI_BITFIELDS
	dpm := int32(math.Round(float64(dpi) * inchesPerMeter))
	bi.BiXPelsPerMeter = dpm
	bi.BiYPelsPerMeter = dpm
	// The following mask specification specifies a supported 32 BPP
	// alpha format for Windows XP.
	bi.BV4RedMask = 0x00FF0000
	bi.BV4GreenMask = 0x0000FF00
	bi.BV4BlueMask = 0x000000FF
	bi.BV4AlphaMask = 0xFF000000

	var lpBits unsafe.Pointer

	hBitmap := gdi32.CreateDIBSection(hdc, &bi.BITMAPINFOHEADER, gdi32.DIB_RGB_COLORS, &lpBits, 0, 0)
	switch hBitmap {
	case 0, kernel32.ERROR_INVALID_PARAMETER:
		return 0, nil, errs.NewError("CreateDIBSection failed")
	}

	bits := (*[1 << 30]byte)(lpBits)[: size.X*size.Y*4 : size.X*size.Y*4]

	return hBitmap, bits, nil
}

// hBitmapFromImage copies im into a new DIB section. color.Color.RGBA is
// premultiplied, which is the layout AlphaBlend expects with AC_SRC_ALPHA.
func hBitmapFromImage(hdc gdi32.HDC, im image.Image, dpi int) (gdi32.HBITMAP, error) {
	hBitmap, bits, err := newDIBSection(hdc, im.Bounds().Size(), dpi)
	if err != nil {
		return 0, err
	}

	i := 0
	for y := im.Bounds().Min.Y; y != im.Bounds().Max.Y; y++ {
		for x := im.Bounds().Min.X; x != im.Bounds().Max.X; x++ {
			r, g, b, a := im.At(x, y).RGBA()
			bits[i+3] = byte(a >> 8)
			bits[i+2] = byte(r >> 8)
			bits[i+1] = byte(g >> 8)
			bits[i+0] = byte(b >> 8)
			i += 4
		}
	}

	return hBitmap, nil
}

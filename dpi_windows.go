// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package pdfview

import (
	"github.com/Gipcomp/pdfview/errs"
	"github.com/Gipcomp/win32/gdi32"
	"github.com/Gipcomp/win32/user32"
)

// ScreenDPISource reads the vertical DPI of the screen device context.
type ScreenDPISource struct{}

func (ScreenDPISource) DPI() (int, error) {
	hdc := user32.GetDC(0)
	if hdc == 0 {
		return 0, errs.LastError("GetDC")
	}
	defer user32.ReleaseDC(0, hdc)

	return dpiForHDC(hdc), nil
}

func dpiForHDC(hdc gdi32.HDC) int {
	return int(gdi32.GetDeviceCaps(hdc, gdi32.LOGPIXELSY))
}

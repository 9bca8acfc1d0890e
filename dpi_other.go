// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows
// +build !windows

package pdfview

// ScreenDPISource reports DefaultDPI. There is no host display query outside
// Windows.
type ScreenDPISource struct{}

func (ScreenDPISource) DPI() (int, error) {
	return DefaultDPI, nil
}

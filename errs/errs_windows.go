// Copyright 2011 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package errs

import (
	"fmt"

	"github.com/Gipcomp/win32/kernel32"
	"golang.org/x/sys/windows"
)

// LastError returns an error describing the calling thread's last Win32
// error, attributed to win32FuncName.
func LastError(win32FuncName string) error {
	if errno := kernel32.GetLastError(); errno != kernel32.ERROR_SUCCESS {
		return NewError(fmt.Sprintf("%s: Error %d (%s)", win32FuncName, errno, windows.Errno(errno).Error()))
	}

	return NewError(win32FuncName)
}

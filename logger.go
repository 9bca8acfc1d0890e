// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

import (
	"sync/atomic"

	"github.com/Gipcomp/pdfview/errs"
	"github.com/sirupsen/logrus"
)

var loggerValue atomic.Value // *logrus.Logger

func init() {
	loggerValue.Store(newDefaultLogger())
}

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger sets the logger used by pdfview and its errs package. Passing nil
// restores the default logger, which only reports warnings and errors.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	loggerValue.Store(l)
	errs.SetLogger(l)
}

func Logger() *logrus.Logger {
	return loggerValue.Load().(*logrus.Logger)
}

// Copyright 2011 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs provides the error type used throughout pdfview. Errors carry
// the stack of the goroutine that created them and can optionally be logged
// or turned into panics.
package errs

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var (
	logErrors    atomic.Value // bool
	panicOnError atomic.Value // bool
	logger       atomic.Value // loggerHolder
)

type loggerHolder struct {
	logrus.FieldLogger
}

func init() {
	logErrors.Store(false)
	panicOnError.Store(false)
	logger.Store(loggerHolder{logrus.StandardLogger()})
}

type Error struct {
	inner   error
	message string
	stack   []byte
}

func LogErrors() bool {
	return logErrors.Load().(bool)
}

func SetLogErrors(v bool) {
	logErrors.Store(v)
}

func PanicOnError() bool {
	return panicOnError.Load().(bool)
}

func SetPanicOnError(v bool) {
	panicOnError.Store(v)
}

// SetLogger sets the logger errors are written to when LogErrors is enabled.
// A nil logger restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger.Store(loggerHolder{l})
}

func Logger() logrus.FieldLogger {
	return logger.Load().(loggerHolder).FieldLogger
}

func (err *Error) Inner() error {
	return err.inner
}

func (err *Error) Unwrap() error {
	return err.inner
}

func (err *Error) Message() string {
	if err.message != "" {
		return err.message
	}

	if err.inner != nil {
		if pdfErr, ok := err.inner.(*Error); ok {
			return pdfErr.Message()
		}
		return err.inner.Error()
	}

	return ""
}

func (err *Error) Stack() []byte {
	return err.stack
}

func (err *Error) Error() string {
	return fmt.Sprintf("%s\n\nStack:\n%s", err.Message(), err.stack)
}

func processErrorNoPanic(err error) error {
	if LogErrors() {
		if pdfErr, ok := err.(*Error); ok {
			Logger().WithField("stack", string(pdfErr.stack)).Error(pdfErr.Message())
		} else {
			Logger().WithField("stack", string(debug.Stack())).Error(err.Error())
		}
	}

	return err
}

func processError(err error) error {
	processErrorNoPanic(err)

	if PanicOnError() {
		panic(err)
	}

	return err
}

func newErr(message string) error {
	return &Error{message: message, stack: debug.Stack()}
}

func NewError(message string) error {
	return processError(newErr(message))
}

func NewErrorNoPanic(message string) error {
	return processErrorNoPanic(newErr(message))
}

func wrapErr(err error) error {
	if _, ok := err.(*Error); ok {
		return err
	}

	return &Error{inner: err, stack: debug.Stack()}
}

func WrapErrorNoPanic(err error) error {
	return processErrorNoPanic(wrapErr(err))
}

func WrapError(err error) error {
	return processError(wrapErr(err))
}

// ToError converts a recovered panic value into an error.
func ToError(x interface{}) error {
	var err error
	switch x := x.(type) {
	case *Error:
		err = x

	case error:
		err = WrapErrorNoPanic(x)

	case string:
		err = NewErrorNoPanic(x)

	default:
		err = NewErrorNoPanic(fmt.Sprintf("Error: %v", x))
	}

	if PanicOnError() {
		panic(err)
	}

	return err
}

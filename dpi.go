// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

import (
	"strconv"
	"strings"
	"sync"

	"github.com/Gipcomp/pdfview/errs"
	"github.com/sirupsen/logrus"
)

const (
	// PointsPerInch is the fixed reference unit for point measurements.
	PointsPerInch = 72

	// DefaultDPI is cached when no DPI source can answer.
	DefaultDPI = 96
)

// DPISource reports the display resolution in dots per inch.
type DPISource interface {
	DPI() (int, error)
}

// FixedDPI is a DPISource that always reports the same value.
type FixedDPI int

func (d FixedDPI) DPI() (int, error) {
	return int(d), nil
}

// Settings is the read side of a key/value settings store.
type Settings interface {
	Get(key string) (string, bool)
}

// DPISettingsKey is the settings key read by SettingsDPISource.
const DPISettingsKey = "Dpi"

// SettingsDPISource reads the DPI from the DPISettingsKey entry of Settings
// and asks Fallback when the entry is missing.
type SettingsDPISource struct {
	Settings Settings
	Fallback DPISource
}

func (s SettingsDPISource) DPI() (int, error) {
	if s.Settings != nil {
		if value, ok := s.Settings.Get(DPISettingsKey); ok {
			dpi, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return 0, errs.WrapErrorNoPanic(err)
			}
			return dpi, nil
		}
	}

	if s.Fallback == nil {
		return 0, errs.NewErrorNoPanic("no DPI setting and no fallback source")
	}

	return s.Fallback.DPI()
}

// The DPI is read once and cached for the lifetime of the process. A DPI
// change requires a restart.
var (
	dpiMu     sync.Mutex
	dpiSource DPISource
	dpiOnce   sync.Once
	dpiCached bool
	dpiValue  int
)

// SetDPISource installs the source Dpi reads from. It must be called before
// the first conversion; afterwards the cached value is final and an error is
// returned.
func SetDPISource(src DPISource) error {
	dpiMu.Lock()
	defer dpiMu.Unlock()

	if dpiCached {
		return errs.NewError("DPI already cached; source can only be set before first use")
	}

	dpiSource = src

	return nil
}

// Dpi returns the process-wide DPI, querying the installed source on first
// use. Without an installed source ScreenDPISource is used.
func Dpi() int {
	dpiOnce.Do(func() {
		dpiMu.Lock()
		defer dpiMu.Unlock()

		src := dpiSource
		if src == nil {
			src = ScreenDPISource{}
		}

		dpi, err := src.DPI()
		switch {
		case err != nil:
			Logger().WithError(err).Warnf("querying DPI failed, using %d", DefaultDPI)
			dpi = DefaultDPI

		case dpi <= 0:
			Logger().WithFields(logrus.Fields{"dpi": dpi}).Warnf("invalid DPI, using %d", DefaultDPI)
			dpi = DefaultDPI
		}

		dpiValue = dpi
		dpiCached = true
	})

	return dpiValue
}

// PointsToPixelsForDPI converts points to pixels at dpi, truncating toward zero.
func PointsToPixelsForDPI(points float64, dpi int) int {
	return int(points * float64(dpi) / PointsPerInch)
}

// PointsToPixels converts points to pixels at the cached DPI.
func PointsToPixels(points float64) int {
	return PointsToPixelsForDPI(points, Dpi())
}

// PixelsToPointsForDPI converts pixels to points at dpi.
func PixelsToPointsForDPI(pixels, dpi int) float64 {
	return float64(pixels) * PointsPerInch / float64(dpi)
}

// PixelsToPoints converts pixels to points at the cached DPI.
func PixelsToPoints(pixels int) float64 {
	return PixelsToPointsForDPI(pixels, Dpi())
}

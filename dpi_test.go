// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfview

import (
	"bytes"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Gipcomp/pdfview/errs"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingDPISource struct{}

func (failingDPISource) DPI() (int, error) {
	return 0, errors.New("no display")
}

func TestConversionsForDPI(t *testing.T) {
	assert.Equal(t, 96, PointsToPixelsForDPI(72, 96))
	assert.Equal(t, 72.0, PixelsToPointsForDPI(96, 96))

	assert.Equal(t, 150, PointsToPixelsForDPI(72, 150))
	assert.Equal(t, 1, PointsToPixelsForDPI(1, 96), "1.333 truncates")
	assert.Equal(t, 0, PointsToPixelsForDPI(0.5, 96))
	assert.Equal(t, -1, PointsToPixelsForDPI(-1, 96), "truncates toward zero")
	assert.InDelta(t, 0.75, PixelsToPointsForDPI(1, 96), 1e-12)
}

func TestConversionsUseCachedDPI(t *testing.T) {
	assert.Equal(t, testDPI, Dpi())
	assert.Equal(t, 96, PointsToPixels(72))
	assert.Equal(t, 72.0, PixelsToPoints(96))

	withDPISource(t, FixedDPI(144))

	assert.Equal(t, 144, Dpi())
	assert.Equal(t, 144, PointsToPixels(72))
	assert.Equal(t, 48.0, PixelsToPoints(96))
}

func TestPointsPixelsRoundTrip(t *testing.T) {
	for _, dpi := range []int{1, 72, 96, 120, 144, 192, 300, 600} {
		for px := 1; px <= 2000; px++ {
			got := PointsToPixelsForDPI(PixelsToPointsForDPI(px, dpi), dpi)
			if px-got < 0 || px-got > 1 {
				t.Fatalf("dpi %d: %d px round-tripped to %d", dpi, px, got)
			}
		}
	}
}

func TestDPICachedOnce(t *testing.T) {
	withDPISource(t, FixedDPI(120))

	assert.Equal(t, 120, Dpi())

	err := SetDPISource(FixedDPI(200))
	require.Error(t, err)

	var pdfErr *errs.Error
	assert.True(t, errors.As(err, &pdfErr))
	assert.Equal(t, 120, Dpi())
}

func TestDPIConcurrentFirstUse(t *testing.T) {
	withDPISource(t, FixedDPI(120))

	const workers = 16

	dpis := make([]int, workers)
	pixels := make([]int, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			dpis[i] = Dpi()
			pixels[i] = PointsToPixels(72)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.Equal(t, 120, dpis[i])
		assert.Equal(t, 120, pixels[i])
	}
}

func TestDPIFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	SetLogger(l)
	defer SetLogger(nil)

	t.Run("failing source", func(t *testing.T) {
		withDPISource(t, failingDPISource{})

		assert.Equal(t, DefaultDPI, Dpi())
		assert.Contains(t, buf.String(), "querying DPI failed")
	})

	t.Run("non-positive", func(t *testing.T) {
		buf.Reset()
		withDPISource(t, FixedDPI(0))

		assert.Equal(t, DefaultDPI, Dpi())
		assert.Contains(t, buf.String(), "invalid DPI")
	})
}

func TestScreenDPISourceIsDefault(t *testing.T) {
	resetDPI()
	t.Cleanup(func() {
		resetDPI()
		require.NoError(t, SetDPISource(FixedDPI(testDPI)))
	})

	screen, err := ScreenDPISource{}.DPI()
	if err != nil || screen <= 0 {
		screen = DefaultDPI
	}

	assert.Equal(t, screen, Dpi())
}

func TestSettingsDPISource(t *testing.T) {
	settings := NewIniFileSettings(filepath.Join(t.TempDir(), "viewer.ini"))
	settings.SetPortable(true)

	src := SettingsDPISource{Settings: settings, Fallback: FixedDPI(120)}

	dpi, err := src.DPI()
	require.NoError(t, err)
	assert.Equal(t, 120, dpi, "missing key uses fallback")

	require.NoError(t, settings.Put(DPISettingsKey, " 144 "))
	dpi, err = src.DPI()
	require.NoError(t, err)
	assert.Equal(t, 144, dpi)

	require.NoError(t, settings.Put(DPISettingsKey, "high"))
	_, err = src.DPI()
	assert.Error(t, err)

	_, err = SettingsDPISource{}.DPI()
	assert.Error(t, err)

	t.Run("feeds cache", func(t *testing.T) {
		require.NoError(t, settings.Put(DPISettingsKey, "192"))
		withDPISource(t, src)

		assert.Equal(t, 192, Dpi())
		assert.Equal(t, 192, PointsToPixels(72))
	})
}

// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declarative

import (
	"github.com/Gipcomp/pdfview"
)

// PageStyle describes how a page frame is painted: a background, a border
// and, for checked pages, a selection overlay over the content area.
type PageStyle struct {
	Background Brush
	Border     Pen
	Selection  Brush
	Margins    Margins
}

// ContentBounds returns the part of page inside the margins.
func (ps PageStyle) ContentBounds(page Rectangle) pdfview.Rect {
	if ps.Margins.isZero() {
		return page.toW()
	}

	return Inset(page, ps.Margins)
}

// Render paints page onto s.
func (ps PageStyle) Render(s pdfview.Surface, page pdfview.RenderRect) error {
	if ps.Background != nil {
		brush, err := ps.Background.Create()
		if err != nil {
			return err
		}

		if err := pdfview.FillRectangle(s, brush, page.Rect); err != nil {
			return err
		}
	}

	if page.IsChecked && ps.Selection != nil {
		brush, err := ps.Selection.Create()
		if err != nil {
			return err
		}

		content := ps.ContentBounds(Rectangle{page.X, page.Y, page.Width, page.Height})
		if err := pdfview.FillRectangle(s, brush, content); err != nil {
			return err
		}
	}

	pen, err := ps.Border.Create()
	if err != nil {
		return err
	}
	if pen == nil {
		return nil
	}

	return pdfview.DrawRectangle(s, pen, page.Rect)
}

// seehuhn.de/go/rastergm - visual tests for a 2D rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/rastergm/testcases"
)

// pathWriter receives PDF path construction operators.
type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// writePDF describes tc as a single page of Width x Height points, which
// Ghostscript renders at 72 dpi into one pixel per point.
func writePDF(tc testcases.TestCase, fname string) error {
	paper := &pdf.Rectangle{URx: float64(tc.Width), URy: float64(tc.Height)}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// flip to a top-left origin, then apply the case's own CTM
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, paper.URy})
	if m := tc.Transform(); m != matrix.Identity {
		page.Transform(m)
	}

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	switch op := tc.Op.(type) {
	case testcases.Fill:
		writePath(page, tc.Path)
		if op.Rule == testcases.EvenOdd {
			page.FillEvenOdd()
		} else {
			page.Fill()
		}
	case testcases.Stroke:
		page.SetLineWidth(op.Width)
		page.SetLineCap(op.Cap)
		page.SetLineJoin(op.Join)
		page.SetMiterLimit(op.MiterLimit)
		writePath(page, tc.Path)
		page.Stroke()
	}

	return page.Close()
}

// writePath emits p. Quadratic segments are raised to cubics, since PDF
// has no quadratic Bézier operator.
func writePath(w pathWriter, p path.Path) {
	var cur vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			w.MoveTo(pts[0].X, pts[0].Y)
			cur = pts[0]
		case path.CmdLineTo:
			w.LineTo(pts[0].X, pts[0].Y)
			cur = pts[0]
		case path.CmdQuadTo:
			c1, c2 := quadToCubic(cur, pts[0], pts[1])
			w.CurveTo(c1.X, c1.Y, c2.X, c2.Y, pts[1].X, pts[1].Y)
			cur = pts[1]
		case path.CmdCubeTo:
			w.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			cur = pts[2]
		case path.CmdClose:
			w.ClosePath()
		}
	}
}

// quadToCubic returns the inner control points of the cubic Bézier which
// traces the quadratic p0, p1, p2.
func quadToCubic(p0, p1, p2 vec.Vec2) (c1, c2 vec.Vec2) {
	c1 = p0.Add(p1.Sub(p0).Mul(2.0 / 3.0))
	c2 = p2.Add(p1.Sub(p2).Mul(2.0 / 3.0))
	return c1, c2
}

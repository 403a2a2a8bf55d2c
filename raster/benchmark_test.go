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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/rastergm/shape"
	"seehuhn.de/go/rastergm/testcases"
)

// ring returns an "O" shape: an outer circle and an inner circle of
// opposite orientation.
func ring(cx, cy, outerR, innerR float64) path.Path {
	outer := shape.Circle(cx, cy, outerR)
	inner := shape.Arc(rect.Rect{LLx: cx - innerR, LLy: cy - innerR, URx: cx + innerR, URy: cy + innerR}, 0, -360)
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for cmd, pts := range outer {
			if !yield(cmd, pts) {
				return
			}
		}
		for cmd, pts := range inner {
			if !yield(cmd, pts) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// BenchmarkRasterizerO measures filling an "O" shape.
func BenchmarkRasterizerO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			o := ring(c, c, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(o, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO draws the same shape with x/image/vector, for
// comparison.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			c := float64(size) / 2
			o := ring(c, c, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				for cmd, pts := range o {
					switch cmd {
					case path.CmdMoveTo:
						r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
					case path.CmdLineTo:
						r.LineTo(float32(pts[0].X), float32(pts[0].Y))
					case path.CmdCubeTo:
						r.CubeTo(float32(pts[0].X), float32(pts[0].Y),
							float32(pts[1].X), float32(pts[1].Y),
							float32(pts[2].X), float32(pts[2].Y))
					case path.CmdClose:
						r.ClosePath()
					}
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeArc measures stroking one stripe glyph: a 320 degree arc
// with round caps.
func BenchmarkStrokeArc(b *testing.B) {
	clip := rect.Rect{URx: 52, URy: 52}
	r := NewRasterizer(clip)
	arc := shape.Arc(rect.Rect{LLx: 8, LLy: 8, URx: 44, URy: 44}, 25, 320)
	emit := func(y, xMin int, coverage []float32) {}

	b.ReportAllocs()
	for b.Loop() {
		r.Reset(clip)
		r.Width = 8
		r.Cap = graphics.LineCapRound
		r.Stroke(arc, emit)
	}
}

// BenchmarkRasterizeAll reuses a single Rasterizer across all test cases,
// with varying clip sizes.
func BenchmarkRasterizeAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, tc := range testcases.Sorted() {
		cases = append(cases, tc)
	}

	r := NewRasterizer(rect.Rect{})
	buf := make([]byte, 0)
	for b.Loop() {
		for _, tc := range cases {
			n := tc.Width * tc.Height
			buf = slices.Grow(buf[:0], n)[:n]
			renderExample(r, tc, buf, tc.Width)
		}
	}
}

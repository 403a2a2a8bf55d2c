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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/rastergm/shape"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Path:   shape.Polygon(pt(32, 8), pt(56, 56), pt(8, 56)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 28),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 28),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "rectangle",
		Path:   shape.Rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "disk",
		Path:   shape.Circle(32, 32, 24.5),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "wedge",
		Path:   shape.Wedge(rect.Rect{LLx: 8, LLy: 8, URx: 56, URy: 56}, 25, 320),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "concentric_evenodd",
		Path:   concentricSquares(32, 32, 26, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) path.Path {
	pts := make([]vec.Vec2, 5)
	for i, k := range []int{0, 2, 4, 1, 3} {
		angle := float64(k)*2*math.Pi/5 - math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return shape.Polygon(pts...)
}

// concentricSquares builds two squares around a common center, both
// oriented clockwise.
func concentricSquares(cx, cy, outer, inner float64) path.Path {
	a := shape.Rectangle(cx-outer, cy-outer, cx+outer, cy+outer)
	b := shape.Rectangle(cx-inner, cy-inner, cx+inner, cy+inner)
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for cmd, pts := range a {
			if !yield(cmd, pts) {
				return
			}
		}
		for cmd, pts := range b {
			if !yield(cmd, pts) {
				return
			}
		}
	}
}

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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/rastergm/shape"
)

// ring stroke used by the stripe images
var ringStroke = Stroke{
	Width:      8,
	Cap:        graphics.LineCapRound,
	Join:       graphics.LineJoinMiter,
	MiterLimit: 10,
}

var arcCases = []TestCase{
	// the glyph of stripe 0, in a 52x52 tile
	{
		Name:   "ring_0",
		Path:   ringArc(0),
		Width:  52,
		Height: 52,
		Op:     ringStroke,
	},
	{
		Name:   "ring_25",
		Path:   ringArc(25),
		Width:  52,
		Height: 52,
		Op:     ringStroke,
	},
	{
		Name:   "ring_200",
		Path:   ringArc(200),
		Width:  52,
		Height: 52,
		Op:     ringStroke,
	},
	// start angle past a full turn
	{
		Name:   "ring_375",
		Path:   ringArc(375),
		Width:  52,
		Height: 52,
		Op:     ringStroke,
	},
	{
		Name:   "ring_butt",
		Path:   ringArc(50),
		Width:  52,
		Height: 52,
		Op: Stroke{
			Width:      8,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	// the glyph as it appears after the 1.3x blit
	{
		Name:   "ring_scaled",
		Path:   ringArc(100),
		Width:  68,
		Height: 68,
		Op:     ringStroke,
		CTM:    matrix.Scale(1.3, 1.3),
	},
	{
		Name:   "arc_counterclockwise",
		Path:   shape.Arc(rect.Rect{LLx: 8, LLy: 8, URx: 56, URy: 56}, 90, -270),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      3,
			Cap:        graphics.LineCapSquare,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:   "arc_elliptic",
		Path:   shape.Arc(rect.Rect{LLx: 4, LLy: 16, URx: 60, URy: 48}, 30, 300),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:   "full_circle",
		Path:   shape.Circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
}

// ringArc builds the arc of a stripe glyph with the given start angle,
// centered in a 52x52 tile.
func ringArc(startDeg float64) path.Path {
	const c, r = 30, 18
	return shape.Arc(rect.Rect{LLx: c - r, LLy: c - r, URx: c + r, URy: c + r}, startDeg, 320)
}

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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/rastergm/shape"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   shape.Rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Path:   shape.Rectangle(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:   "rotate_30",
		Path:   shape.Rectangle(-16, -8, 16, 8),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	// the stroke width is measured in user space
	{
		Name:   "stroke_anisotropic",
		Path:   shape.Circle(0, 0, 10),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      2,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
		CTM: matrix.Scale(2.5, 1).Translate(32, 32),
	},
	{
		Name:   "stroke_rotated",
		Path:   shape.Polyline(pt(-20, 0), pt(20, 0)),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
		CTM: matrix.RotateDeg(60).Translate(32, 32),
	},
}

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

package shape

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

type segment struct {
	cmd path.Command
	pts []vec.Vec2
}

func collect(p path.Path) []segment {
	var res []segment
	for cmd, pts := range p {
		res = append(res, segment{cmd, append([]vec.Vec2(nil), pts...)})
	}
	return res
}

func TestNormalizeDegrees(t *testing.T) {
	cases := []struct{ in, out float64 }{
		{0, 0},
		{25, 25},
		{360, 0},
		{385, 25},
		{-25, 335},
		{-720, 0},
		{1000, 280},
	}
	for _, c := range cases {
		test.Float(t, NormalizeDegrees(c.in), c.out)
	}
}

func TestArcStartWraps(t *testing.T) {
	oval := rect.Rect{LLx: -18, LLy: -18, URx: 18, URy: 18}
	for k := range 20 {
		start := 25 * float64(k)
		a := collect(Arc(oval, start, 320))
		b := collect(Arc(oval, math.Mod(start, 360), 320))
		test.T(t, a, b)
	}
}

func TestArcEndPoints(t *testing.T) {
	oval := rect.Rect{LLx: -18, LLy: -18, URx: 18, URy: 18}
	segs := collect(Arc(oval, 0, 320))

	test.That(t, len(segs) == 5, "320 degrees need four cubic segments")
	test.T(t, segs[0].cmd, path.CmdMoveTo)
	test.Float(t, segs[0].pts[0].X, 18)
	test.That(t, math.Abs(segs[0].pts[0].Y) < 1e-12)

	last := segs[len(segs)-1]
	test.T(t, last.cmd, path.CmdCubeTo)
	end := last.pts[2]
	rad := 320 * math.Pi / 180
	test.Float(t, end.X, 18*math.Cos(rad))
	test.Float(t, end.Y, 18*math.Sin(rad))
}

func TestArcStaysOnCircle(t *testing.T) {
	oval := rect.Rect{LLx: -10, LLy: -10, URx: 10, URy: 10}
	for _, s := range collect(Arc(oval, 30, -200)) {
		if s.cmd != path.CmdCubeTo {
			continue
		}
		test.That(t, math.Abs(s.pts[2].Length()-10) < 1e-9)
	}
}

func TestArcClockwise(t *testing.T) {
	// with y pointing down, a positive sweep from 0 moves to positive y
	oval := rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1}
	segs := collect(Arc(oval, 0, 90))
	end := segs[1].pts[2]
	test.That(t, math.Abs(end.X) < 1e-12 && math.Abs(end.Y-1) < 1e-12, end)
}

func TestDegenerateOval(t *testing.T) {
	test.T(t, len(collect(Arc(rect.Rect{URx: 10}, 0, 90))), 0)
	test.T(t, len(collect(Ellipse(rect.Rect{}))), 0)
}

func TestWedge(t *testing.T) {
	oval := rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 20}
	segs := collect(Wedge(oval, 0, 90))
	test.T(t, segs[0].cmd, path.CmdMoveTo)
	test.T(t, segs[0].pts[0], vec.Vec2{X: 10, Y: 10})
	test.T(t, segs[1].cmd, path.CmdLineTo)
	test.T(t, segs[len(segs)-1].cmd, path.CmdClose)
}

func TestPolygon(t *testing.T) {
	segs := collect(Rectangle(0, 0, 2, 3))
	test.T(t, len(segs), 5)
	test.T(t, segs[2].pts[0], vec.Vec2{X: 2, Y: 3})
	test.T(t, segs[4].cmd, path.CmdClose)

	test.T(t, len(collect(Polygon())), 0)
	open := collect(Polyline(vec.Vec2{}, vec.Vec2{X: 1}))
	test.T(t, len(open), 2)
	test.T(t, open[1].cmd, path.CmdLineTo)
}

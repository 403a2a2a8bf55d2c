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

// Package shape builds common geometric paths.
//
// All paths use a coordinate system with the y-axis pointing down.
// Angles are given in degrees and grow clockwise on screen, starting at
// the positive x-axis.
package shape

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// maxArcSegment is the largest angle, in degrees, approximated by a single
// cubic Bézier segment.
const maxArcSegment = 90

// NormalizeDegrees maps an angle to the range [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Arc returns the open arc of the ellipse inscribed in oval, starting at
// startDeg and turning by sweepDeg. A negative sweep turns
// counter-clockwise. Sweeps beyond a full turn are clamped to one turn.
//
// The start angle is normalized to [0, 360) first, so that start angles
// which differ by multiples of 360 give identical paths.
func Arc(oval rect.Rect, startDeg, sweepDeg float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		e, ok := newEllipse(oval)
		if !ok {
			return
		}
		start, sweep := arcAngles(startDeg, sweepDeg)
		if !yield(path.CmdMoveTo, []vec.Vec2{e.point(start)}) {
			return
		}
		e.curves(start, sweep, yield)
	}
}

// Wedge returns the closed pie slice of the ellipse inscribed in oval,
// bounded by the arc from startDeg over sweepDeg and the two radii to the
// center.
func Wedge(oval rect.Rect, startDeg, sweepDeg float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		e, ok := newEllipse(oval)
		if !ok {
			return
		}
		start, sweep := arcAngles(startDeg, sweepDeg)
		if !yield(path.CmdMoveTo, []vec.Vec2{e.c}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{e.point(start)}) {
			return
		}
		if !e.curves(start, sweep, yield) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// Ellipse returns the closed ellipse inscribed in oval.
func Ellipse(oval rect.Rect) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		e, ok := newEllipse(oval)
		if !ok {
			return
		}
		if !yield(path.CmdMoveTo, []vec.Vec2{e.point(0)}) {
			return
		}
		if !e.curves(0, 2*math.Pi, yield) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// Circle returns the closed circle with the given center and radius.
func Circle(cx, cy, r float64) path.Path {
	return Ellipse(rect.Rect{LLx: cx - r, LLy: cy - r, URx: cx + r, URy: cy + r})
}

// Rectangle returns the closed axis-parallel rectangle with corners
// (x1, y1) and (x2, y2).
func Rectangle(x1, y1, x2, y2 float64) path.Path {
	return Polygon(
		vec.Vec2{X: x1, Y: y1},
		vec.Vec2{X: x2, Y: y1},
		vec.Vec2{X: x2, Y: y2},
		vec.Vec2{X: x1, Y: y2},
	)
}

// Polyline returns the open path through the given points.
func Polyline(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		lines(pts, yield)
	}
}

// Polygon returns the closed path through the given points.
func Polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) > 0 && lines(pts, yield) {
			yield(path.CmdClose, nil)
		}
	}
}

func lines(pts []vec.Vec2, yield func(path.Command, []vec.Vec2) bool) bool {
	for i, p := range pts {
		cmd := path.CmdLineTo
		if i == 0 {
			cmd = path.CmdMoveTo
		}
		if !yield(cmd, []vec.Vec2{p}) {
			return false
		}
	}
	return true
}

// arcAngles converts start and sweep to radians.
func arcAngles(startDeg, sweepDeg float64) (start, sweep float64) {
	sweepDeg = max(-360, min(360, sweepDeg))
	return NormalizeDegrees(startDeg) * math.Pi / 180, sweepDeg * math.Pi / 180
}

// ellipse is an axis-parallel ellipse.
type ellipse struct {
	c      vec.Vec2
	rx, ry float64
}

func newEllipse(oval rect.Rect) (ellipse, bool) {
	rx := (oval.URx - oval.LLx) / 2
	ry := (oval.URy - oval.LLy) / 2
	if rx <= 0 || ry <= 0 {
		return ellipse{}, false
	}
	c := vec.Vec2{X: (oval.LLx + oval.URx) / 2, Y: (oval.LLy + oval.URy) / 2}
	return ellipse{c: c, rx: rx, ry: ry}, true
}

func (e ellipse) point(theta float64) vec.Vec2 {
	sin, cos := math.Sincos(theta)
	return vec.Vec2{X: e.c.X + e.rx*cos, Y: e.c.Y + e.ry*sin}
}

// curves yields cubic Bézier segments for the arc from start over sweep,
// without the initial MoveTo. It returns false if yield asked to stop.
func (e ellipse) curves(start, sweep float64, yield func(path.Command, []vec.Vec2) bool) bool {
	n := int(math.Ceil(math.Abs(sweep) / (maxArcSegment * math.Pi / 180)))
	if n == 0 {
		return true
	}
	step := sweep / float64(n)

	// Control point distance for a circular arc spanning step radians.
	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := range n {
		a0 := start + float64(i)*step
		a1 := a0 + step
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		pts := []vec.Vec2{
			{X: e.c.X + e.rx*(c0-k*s0), Y: e.c.Y + e.ry*(s0+k*c0)},
			{X: e.c.X + e.rx*(c1+k*s1), Y: e.c.Y + e.ry*(s1-k*c1)},
			{X: e.c.X + e.rx*c1, Y: e.c.Y + e.ry*s1},
		}
		if !yield(path.CmdCubeTo, pts) {
			return false
		}
	}
	return true
}

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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened path segment in user space.
type strokeSegment struct {
	A, B vec.Vec2 // end points
	T    vec.Vec2 // unit tangent, A to B
	N    vec.Vec2 // unit normal, T rotated by +90°
}

// reversed returns the same segment, traversed from B to A.
func (s strokeSegment) reversed() strokeSegment {
	return strokeSegment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)}
}

// normal returns t rotated by +90°.
func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
//
// Every open subpath becomes one closed polygon: start cap, the offset
// curve on the +N side, end cap, and the offset curve on the -N side walked
// backwards. A closed subpath becomes two polygons, one per side. All
// polygons are filled together with the nonzero rule, so that overlapping
// parts of the outline are painted only once.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.dots = r.dots[:0]
	r.flatten(p, r.addStrokeSegment, r.endStrokeSubpath)

	r.resetEdges()
	d := r.Width / 2

	// A subpath without direction only shows up with round caps.
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.flushPolygon()
		}
	}

	for i := range r.segsOffsets {
		segs := r.subpathSegments(i)
		rev := r.reverse(segs)
		if r.subpathClosed[i] {
			r.addSide(segs, d, true)
			r.flushPolygon()
			r.addSide(rev, d, true)
			r.flushPolygon()
			continue
		}

		first, last := segs[0], segs[len(segs)-1]
		r.addCap(first.A, first.T.Mul(-1), d)
		r.addSide(segs, d, false)
		r.addCap(last.B, last.T, d)
		r.addSide(rev, d, false)
		r.flushPolygon()
	}

	r.rasterize(NonZero, emit)
}

// addStrokeSegment appends a segment of the current subpath.
// Segments which are too short to have a direction are skipped.
func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := delta.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: normal(t)})
}

// endStrokeSubpath records the segments added since the previous subpath
// as a new subpath. A subpath without segments becomes a dot.
func (r *Rasterizer) endStrokeSubpath(start, _ vec.Vec2, closed, drawn bool) {
	if r.subpathStart(len(r.segsOffsets)) < len(r.segs) {
		r.segsOffsets = append(r.segsOffsets, len(r.segs))
		r.subpathClosed = append(r.subpathClosed, closed)
		return
	}
	if drawn || closed {
		r.dots = append(r.dots, start)
	}
}

// subpathStart returns the index in r.segs of the first segment of
// subpath i.
func (r *Rasterizer) subpathStart(i int) int {
	if i == 0 {
		return 0
	}
	return r.segsOffsets[i-1]
}

// subpathSegments returns the segments of subpath i.
func (r *Rasterizer) subpathSegments(i int) []strokeSegment {
	return r.segs[r.subpathStart(i):r.segsOffsets[i]]
}

// reverse returns segs walked backwards, using the shared rev buffer.
func (r *Rasterizer) reverse(segs []strokeSegment) []strokeSegment {
	r.rev = r.rev[:0]
	for i := len(segs) - 1; i >= 0; i-- {
		r.rev = append(r.rev, segs[i].reversed())
	}
	return r.rev
}

// addSide appends the offset curve at distance d on the +N side of segs
// to the current polygon. For closed subpaths the corner between the last
// and the first segment is included.
func (r *Rasterizer) addSide(segs []strokeSegment, d float64, closed bool) {
	n := len(segs)
	skipStart := false
	if closed {
		skipStart = r.addCorner(&segs[n-1], &segs[0], d)
	}
	for i := range segs {
		seg := &segs[i]
		if !skipStart {
			r.poly = append(r.poly, seg.A.Add(seg.N.Mul(d)))
		}
		if i == n-1 {
			if !closed {
				r.poly = append(r.poly, seg.B.Add(seg.N.Mul(d)))
			}
			break
		}
		skipStart = r.addCorner(seg, &segs[i+1], d)
	}
}

// addCorner appends the outline points on the +N side at the corner
// between seg and next. It reports whether the offset start point of
// next is already covered, in which case the caller must not add it.
func (r *Rasterizer) addCorner(seg, next *strokeSegment, d float64) bool {
	P := seg.B
	sinTheta := seg.T.X*next.T.Y - seg.T.Y*next.T.X
	cosTheta := seg.T.Dot(next.T)

	switch {
	case math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0:
		r.poly = append(r.poly, P.Add(seg.N.Mul(d)))
		return false

	case sinTheta > 0:
		// +N is the inside of the turn: use the intersection of the two
		// offset lines if it exists.
		if q, ok := innerCorner(P, seg.N, next.N, cosTheta, d); ok {
			r.poly = append(r.poly, q)
			return true
		}
		r.poly = append(r.poly, P.Add(seg.N.Mul(d)), P.Add(next.N.Mul(d)))
		return false

	default:
		r.poly = append(r.poly, P.Add(seg.N.Mul(d)))
		r.addJoin(P, seg.T, next.T, d)
		return false
	}
}

// innerCorner returns the intersection of the two offset lines on the
// inside of a corner at P.
func innerCorner(P, N1, N2 vec.Vec2, cosTheta, d float64) (vec.Vec2, bool) {
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}
	cosHalf := math.Sqrt((1 + cosTheta) / 2)
	if cosHalf < 1e-9 {
		return vec.Vec2{}, false
	}
	dir := N1.Add(N2)
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (l * cosHalf))), true
}

// addJoin appends the join geometry on the outside (+N side) of a corner
// at P, where the tangent turns from T1 to T2.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cosTheta := T1.Dot(T2)

	// Where the path doubles back, the join is a cap around P.
	if cosTheta < cuspCosineThreshold {
		r.addCap(P, T1, d)
		return
	}

	N1, N2 := normal(T1), normal(T2)
	switch r.Join {
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		r.addArc(P, d, N1, -angle, false)

	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/cos(θ/2).
		const miterEpsilon = 1e-10
		cosHalf := math.Sqrt((1 + cosTheta) / 2)
		if cosHalf <= 0 || 1/cosHalf > r.MiterLimit+miterEpsilon {
			return // bevel
		}
		bisector := N1.Add(N2)
		if l := bisector.Length(); l > zeroLengthThreshold {
			r.poly = append(r.poly, P.Add(bisector.Mul(d/(l*cosHalf))))
		}
	}
}

// addCap appends a line cap at P. T points away from the line.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := normal(T)
	switch r.Cap {
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	case graphics.LineCapSquare:
		tip := P.Add(T.Mul(d))
		r.poly = append(r.poly, tip.Add(N.Mul(d)), tip.Sub(N.Mul(d)))
	}
	// Butt caps need no points: the offset curves meet across P.
}

// addArc appends points on the circle of the given radius around center,
// starting in direction startDir and turning by sweep radians. The number
// of points is chosen so that the chords stay within Flatness of the arc
// in device space.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := radius * max(r.deviceScale(vec.Vec2{X: 1}), r.deviceScale(vec.Vec2{Y: 1}))

	n := 1
	if devRadius >= r.Flatness {
		// A chord spanning the angle θ deviates r(1-cos(θ/2)) from the arc.
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(1, int(math.Ceil(math.Abs(sweep)/step)))
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.poly = append(r.poly, center.Add(dir.Mul(radius)))
	}
}

// flushPolygon turns the current polygon into edges and starts a new one.
func (r *Rasterizer) flushPolygon() {
	if len(r.poly) >= 3 {
		prev := r.poly[len(r.poly)-1]
		for _, pt := range r.poly {
			r.addEdge(prev, pt)
			prev = pt
		}
	}
	r.poly = r.poly[:0]
}

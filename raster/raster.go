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

// Package raster converts vector paths into per-pixel coverage values.
//
// Coverage is the fraction of a pixel's area covered by a filled or stroked
// path, from 0 (outside) to 1 (inside). Results are delivered row by row
// through an emit callback, so that callers can composite directly into
// their own pixel buffers.
//
// Like many software rasterizers, a Rasterizer only anti-aliases paths whose
// device bounds stay within [Rasterizer.MaxAACoord]. Paths reaching further
// out are rendered with hard edges. Callers which need smooth edges on a
// very large target should draw through small views of that target.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// FillRule selects how winding numbers map to coverage.
type FillRule int

const (
	// NonZero treats every point with a nonzero winding number as inside.
	NonZero FillRule = iota

	// EvenOdd treats points with an odd winding number as inside.
	EvenOdd
)

func (rule FillRule) String() string {
	switch rule {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// EmitFunc receives the coverage of one pixel row. Coverage[i] belongs to
// pixel (xMin+i, y). The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates, stored top to bottom.
type edge struct {
	x0, y0 float64 // upper end point
	x1, y1 float64 // lower end point
	dxdy   float64 // (x1-x0)/(y1-y0)
	dir    float32 // +1 if the original segment pointed down, -1 if up
}

// Rasterizer turns paths into coverage values.
// Internal buffers are reused between calls and never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this device-space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at the open ends of stroked subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used at corners of stroked subpaths.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins. Must be at least 1.
	MiterLimit float64

	// MaxAACoord is the largest absolute device coordinate at which
	// coverage is still anti-aliased. If the clipped bounding box of a path
	// reaches beyond this value, all coverage values of that path are
	// rounded to 0 or 1. Zero removes the limit.
	MaxAACoord int

	// Aliased rounds all coverage values to 0 or 1.
	Aliased bool

	cover   []float32 // per-pixel cover change, reused as output
	area    []float32 // per-pixel area term
	rowUsed []bool    // rows touched by at least one edge
	edges   []edge

	// device-space bounding box of the edge list
	hasBBox        bool
	bbXMin, bbXMax float64
	bbYMin, bbYMax float64

	// stroke state, see stroke.go
	segs          []strokeSegment // flattened segments of all subpaths
	segsOffsets   []int           // end of each subpath in segs
	subpathClosed []bool
	dots          []vec.Vec2      // subpaths without a direction
	rev           []strokeSegment // one subpath, reversed
	poly          []vec.Vec2      // outline polygon under construction
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with
// PDF default values for the stroke parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores all parameters to their defaults and sets a new clip
// rectangle. Internal buffers are kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.MaxAACoord = DefaultMaxAACoord
	r.Aliased = false
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p path.Path, emit EmitFunc) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p path.Path, emit EmitFunc) {
	r.Fill(p, EvenOdd, emit)
}

// Fill fills p using the given rule. Open subpaths are closed implicitly.
func (r *Rasterizer) Fill(p path.Path, rule FillRule, emit EmitFunc) {
	r.resetEdges()
	r.flatten(p, r.addEdge, func(start, current vec.Vec2, closed, drawn bool) {
		if !closed && current != start {
			r.addEdge(current, start)
		}
	})
	r.rasterize(rule, emit)
}

// flatten walks p in user space. Curves are replaced by line segments,
// which are passed to seg. When a subpath ends, end is called with the
// subpath's first and last point. Closed reports whether the subpath was
// closed explicitly, drawn whether it contained any drawing command.
func (r *Rasterizer) flatten(p path.Path, seg func(a, b vec.Vec2), end func(start, current vec.Vec2, closed, drawn bool)) {
	var start, current vec.Vec2
	inSubpath := false
	drawn := false

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath {
				end(start, current, false, drawn)
			}
			start, current = pts[0], pts[0]
			inSubpath, drawn = true, false

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			seg(current, pts[0])
			current = pts[0]
			drawn = true

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			r.flattenQuadratic(current, pts[0], pts[1], seg)
			current = pts[1]
			drawn = true

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			r.flattenCubic(current, pts[0], pts[1], pts[2], seg)
			current = pts[2]
			drawn = true

		case path.CmdClose:
			if !inSubpath {
				continue
			}
			if current != start {
				seg(current, start)
			}
			end(start, start, true, drawn)
			current = start
			inSubpath = false
		}
	}
	if inSubpath {
		end(start, current, false, drawn)
	}
}

// deviceScale returns the length of the user-space vector v in device space.
func (r *Rasterizer) deviceScale(v vec.Vec2) float64 {
	d := vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
	return d.Length()
}

// flattenQuadratic approximates the quadratic Bézier p0, p1, p2 by line
// segments which deviate at most Flatness device pixels from the curve.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, seg func(a, b vec.Vec2)) {
	dev := r.deviceScale(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		seg(prev, q)
		prev = q
	}
}

// flattenCubic approximates the cubic Bézier p0, ..., p3 by line segments.
// The segment count follows Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, seg func(a, b vec.Vec2)) {
	dev := max(
		r.deviceScale(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceScale(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if dev > 0 {
		n = max(n, int(math.Ceil(math.Sqrt(3*dev/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		seg(prev, q)
		prev = q
	}
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.hasBBox = false
}

// addEdge transforms the user-space segment a-b to device space and adds
// it to the edge list. Horizontal edges do not contribute and are dropped.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	if math.Abs(y1-y0) < horizontalEdgeThreshold {
		return
	}

	e := edge{x0: x0, y0: y0, x1: x1, y1: y1, dir: 1}
	if y1 < y0 {
		e = edge{x0: x1, y0: y1, x1: x0, y1: y0, dir: -1}
	}
	e.dxdy = (e.x1 - e.x0) / (e.y1 - e.y0)
	r.edges = append(r.edges, e)

	if !r.hasBBox {
		r.bbXMin, r.bbXMax = min(x0, x1), max(x0, x1)
		r.bbYMin, r.bbYMax = e.y0, e.y1
		r.hasBBox = true
		return
	}
	r.bbXMin = min(r.bbXMin, x0, x1)
	r.bbXMax = max(r.bbXMax, x0, x1)
	r.bbYMin = min(r.bbYMin, e.y0)
	r.bbYMax = max(r.bbYMax, e.y1)
}

// pixelBounds returns the integer bounding box of the edge list, clamped
// to the clip rectangle. The maximum values are exclusive.
func (r *Rasterizer) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bbXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// beyondAALimit reports whether the pixel box reaches past MaxAACoord.
func (r *Rasterizer) beyondAALimit(xMin, xMax, yMin, yMax int) bool {
	if r.MaxAACoord <= 0 {
		return false
	}
	lim := r.MaxAACoord
	return xMin < -lim || yMin < -lim || xMax-1 > lim || yMax-1 > lim
}

// Coverage accumulation:
//
// Every edge adds two values to each pixel it crosses:
//
//	cover = dir * dy               signed vertical extent inside the pixel
//	area  = cover * (1 - xFrac)    the part of that extent left of the edge
//
// where xFrac is the mean horizontal position of the edge inside the pixel.
// Scanning a row from left to right, the coverage of pixel i is
//
//	sum(cover[0:i]) + area[i]
//
// which is the signed area of the path inside the pixel.

// rasterize accumulates all edges and emits the coverage, row by row.
func (r *Rasterizer) rasterize(rule FillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	r.rowUsed = slices.Grow(r.rowUsed[:0], height)[:height]
	clear(r.cover)
	clear(r.area)
	clear(r.rowUsed)

	for i := range r.edges {
		r.accumulate(&r.edges[i], xMin, width, yMin, yMax)
	}

	hard := r.Aliased || r.beyondAALimit(xMin, xMax, yMin, yMax)
	for row := range height {
		if !r.rowUsed[row] {
			continue
		}
		cov := r.cover[row*width : (row+1)*width]
		integrate(cov, r.area[row*width:(row+1)*width], rule)
		if hard {
			for i, c := range cov {
				cov[i] = float32(math.Round(float64(c)))
			}
		}
		if trimmed, offset := trimZeros(cov); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// accumulate adds the contribution of e to every row in [yMin, yMax).
func (r *Rasterizer) accumulate(e *edge, xMin, width, yMin, yMax int) {
	top := max(e.y0, float64(yMin))
	bot := min(e.y1, float64(yMax))
	if bot <= top {
		return
	}

	for y := int(math.Floor(top)); float64(y) < bot; y++ {
		ya := max(top, float64(y))
		yb := min(bot, float64(y+1))
		if yb <= ya {
			continue
		}
		row := y - yMin
		off := row * width
		r.rowUsed[row] = true
		accumulateRow(e, ya, yb, r.cover[off:off+width], r.area[off:off+width], xMin)
	}
}

// accumulateRow adds the part of e between ya and yb, which lie inside a
// single scanline, to the row buffers. The edge is split at pixel column
// boundaries. Contributions left of the buffer go to the first pixel,
// contributions right of it are dropped.
func accumulateRow(e *edge, ya, yb float64, cover, area []float32, xMin int) {
	xa := e.x0 + e.dxdy*(ya-e.y0)
	xb := e.x0 + e.dxdy*(yb-e.y0)
	left, right := min(xa, xb), max(xa, xb)
	dy := yb - ya

	first := int(math.Floor(left))
	last := int(math.Floor(right))
	if first == last {
		addCoverage(cover, area, first-xMin, e.dir*float32(dy), (left+right)/2-float64(first))
		return
	}

	span := right - left
	for pix := first; pix <= last; pix++ {
		lo := max(left, float64(pix))
		hi := min(right, float64(pix+1))
		if hi <= lo {
			continue
		}
		c := e.dir * float32(dy*(hi-lo)/span)
		addCoverage(cover, area, pix-xMin, c, (lo+hi)/2-float64(pix))
	}
}

// addCoverage records a cover value c at buffer index i. The value frac
// is the horizontal position of the edge inside the pixel, in [0, 1].
func addCoverage(cover, area []float32, i int, c float32, frac float64) {
	switch {
	case i < 0:
		cover[0] += c
		area[0] += c
	case i < len(cover):
		cover[i] += c
		area[i] += c * float32(1-frac)
	}
}

// integrate turns the accumulated cover and area values of one row into
// coverage, in place.
func integrate(cover, area []float32, rule FillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == EvenOdd {
			m := raw - 2*float32(int(raw/2))
			raw = 1 - abs32(1-m)
		}
		cover[i] = min(raw, 1)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros strips zero coverage from both ends of a row.
// It returns nil if the whole row is zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo := slices.IndexFunc(coverage, func(c float32) bool { return c != 0 })
	if lo < 0 {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// DefaultMaxAACoord is the default value of Rasterizer.MaxAACoord.
// Anti-aliasing rasterizers which work with 16-bit fixed point
// supersampled coordinates (two bits of subpixel precision) cannot address
// pixels beyond this value.
const DefaultMaxAACoord = 32767 >> 2

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF default. Joins with an interior
	// angle below about 11.5 degrees are beveled.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest stroke segment that is kept.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the largest |sin| of the turning angle for
	// which a corner needs no join.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects corners where the path doubles back on
	// itself: cos(179.43°) ≈ -0.9999.
	cuspCosineThreshold = -0.9999
)

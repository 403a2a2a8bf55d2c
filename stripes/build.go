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

package stripes

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/rastergm/canvas"
	"seehuhn.de/go/rastergm/shape"
)

// Build draws a sealed stripe image with as many whole stripes as fit into
// requestedHeight. The colors are taken from rnd, one value per stripe.
// Build panics if requestedHeight is negative.
func Build(spec Spec, requestedHeight int, rnd *Random) *StripeImage {
	if requestedHeight < 0 {
		panic(fmt.Sprintf("stripes: negative height %d", requestedHeight))
	}
	img := newStripeImage(spec, spec.Count(requestedHeight))

	r := spec.ArcRadius()
	oval := rect.Rect{LLx: -r, LLy: -r, URx: r, URy: r}
	center := float64(spec.Margin + spec.Radius)
	paint := &canvas.Paint{
		AntiAlias:   true,
		Style:       canvas.StrokeStyle,
		StrokeWidth: spec.Thickness,
		Cap:         graphics.LineCapRound,
	}
	for i := range img.Count() {
		paint.Color = canvas.ARGB(rnd.NextU() | 0xFF000000)

		tile := img.Tile(i)
		tile.Translate(center, center)
		start := shape.NormalizeDegrees(spec.StripeAngle(i))
		tile.DrawArc(oval, start, spec.Sweep, false, paint)
	}

	img.Seal()
	return img
}

// GlyphPath returns the arc of stripe i in the pixel coordinates of its
// tile. Build draws the same arc through a translated tile canvas.
func (s Spec) GlyphPath(i int) path.Path {
	c := float64(s.Margin + s.Radius)
	r := s.ArcRadius()
	oval := rect.Rect{LLx: c - r, LLy: c - r, URx: c + r, URy: c + r}
	return shape.Arc(oval, shape.NormalizeDegrees(s.StripeAngle(i)), s.Sweep)
}

// Set is an ordered list of sealed stripe images.
type Set []*StripeImage

// Heights returns n requested heights, starting at base and growing by
// step.
func Heights(n, base, step int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = base + i*step
	}
	return res
}

// BuildSet builds one image per requested height. Every image gets its own
// random stream, started from seed.
func BuildSet(spec Spec, heights []int, seed uint32) Set {
	set := make(Set, len(heights))
	for i, h := range heights {
		set[i] = Build(spec, h, NewRandom(seed))
	}
	return set
}

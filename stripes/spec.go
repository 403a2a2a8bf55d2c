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

// Package stripes builds tall images made of stacked ring glyphs and draws
// scaled crops of their last stripes.
//
// An image holds Count stripes of Pitch x Pitch pixels. Stripe i shows an
// open arc of a ring, stroked with round caps in a pseudo-random opaque
// color. The start angle advances by a fixed step from stripe to stripe.
// Every stripe is drawn through its own small tile view, so that the arcs
// stay anti-aliased even when the whole image is far taller than the
// rasterizer's anti-aliasing limit.
package stripes

import (
	"errors"
	"fmt"
	"math"
)

// Spec holds the geometry of the stripe glyphs.
// Angles are in degrees, measured clockwise from the positive x-axis.
type Spec struct {
	Radius     int     // ring radius, to the outer edge of the stroke
	Margin     int     // space between neighbouring rings
	StartAngle float64 // start angle of the arc in stripe 0
	AngleStep  float64 // increase of the start angle per stripe
	Sweep      float64 // angular length of every arc
	Thickness  float64 // stroke width
}

// DefaultSpec is the stripe geometry used by the tall_stretched_bitmaps
// test.
var DefaultSpec = Spec{
	Radius:     22,
	Margin:     8,
	StartAngle: 0,
	AngleStep:  25,
	Sweep:      320,
	Thickness:  8,
}

// Pitch returns the height of one stripe, which is also the size of the
// square tile each glyph is drawn into.
func (s Spec) Pitch() int {
	return 2*s.Radius + s.Margin
}

// Width returns the width of a stripe image.
func (s Spec) Width() int {
	return 2 * (s.Radius + s.Margin)
}

// ArcRadius returns the radius of the stroked center line of the arcs.
func (s Spec) ArcRadius() float64 {
	return float64(s.Radius) - s.Thickness/2
}

// StripeAngle returns the start angle of the arc in stripe i, before
// normalization.
func (s Spec) StripeAngle(i int) float64 {
	return s.StartAngle + float64(i)*s.AngleStep
}

// Count returns the number of whole stripes which fit into the given
// height.
func (s Spec) Count(requestedHeight int) int {
	return requestedHeight / s.Pitch()
}

// Validate checks that s describes drawable glyphs.
func (s Spec) Validate() error {
	var errs []error
	if s.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius %d is not positive", s.Radius))
	}
	if s.Margin < 0 {
		errs = append(errs, fmt.Errorf("margin %d is negative", s.Margin))
	}
	if !(s.Thickness > 0) || s.Thickness >= 2*float64(s.Radius) {
		errs = append(errs, fmt.Errorf("thickness %g not in (0, %d)", s.Thickness, 2*s.Radius))
	}
	if !(s.Sweep > 0) || s.Sweep > 360 {
		errs = append(errs, fmt.Errorf("sweep %g not in (0, 360]", s.Sweep))
	}
	for _, a := range []struct {
		name string
		val  float64
	}{{"start angle", s.StartAngle}, {"angle step", s.AngleStep}} {
		if math.IsInf(a.val, 0) || math.IsNaN(a.val) {
			errs = append(errs, fmt.Errorf("%s %g is not finite", a.name, a.val))
		}
	}
	return errors.Join(errs...)
}

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

// Package testcases lists named rendering cases for the rasterizer.
//
// Every case describes a path, a canvas size and a paint operation. The
// same cases are rendered by the rasterizer tests and, through the genpdf
// command, by an independent PDF renderer to produce reference images.
package testcases

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase is one path, drawn onto a Width x Height canvas whose origin is
// the top-left corner.
type TestCase struct {
	Name string
	Path path.Path

	Width, Height int

	Op Operation

	// CTM maps the coordinates of Path to pixels. The zero matrix stands
	// for the identity.
	CTM matrix.Matrix
}

// Transform returns the CTM of the case, with the zero value replaced by
// the identity.
func (tc TestCase) Transform() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// Clip returns the canvas in pixel coordinates.
func (tc TestCase) Clip() rect.Rect {
	return rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
}

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

// Validate reports what is wrong with tc, if anything.
func (tc TestCase) Validate() error {
	var errs []error
	if !validName.MatchString(tc.Name) {
		errs = append(errs, fmt.Errorf("invalid name %q", tc.Name))
	}
	if tc.Path == nil {
		errs = append(errs, errors.New("no path"))
	}
	if tc.Width <= 0 || tc.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid size %dx%d", tc.Width, tc.Height))
	}
	if tc.Op == nil {
		errs = append(errs, errors.New("no operation"))
	} else if err := tc.Op.validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Operation says how the path is painted: Fill or Stroke.
type Operation interface {
	fmt.Stringer
	validate() error
}

// FillRule selects the interior of a filled path.
type FillRule int

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Fill paints the interior of the path.
type Fill struct {
	Rule FillRule
}

func (f Fill) String() string {
	return "fill " + f.Rule.String()
}

func (f Fill) validate() error {
	if f.Rule != NonZero && f.Rule != EvenOdd {
		return fmt.Errorf("unknown fill rule %d", int(f.Rule))
	}
	return nil
}

// Stroke paints the outline of the path.
type Stroke struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
}

func (s Stroke) String() string {
	return fmt.Sprintf("stroke width=%g cap=%d join=%d", s.Width, s.Cap, s.Join)
}

func (s Stroke) validate() error {
	if !(s.Width > 0) || math.IsInf(s.Width, 1) {
		return fmt.Errorf("stroke width %g", s.Width)
	}
	if !(s.MiterLimit >= 1) {
		return fmt.Errorf("miter limit %g", s.MiterLimit)
	}
	return nil
}

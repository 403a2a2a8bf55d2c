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

package canvas

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/geom/rect"
)

// FilterQuality selects the interpolation used when images are scaled.
type FilterQuality int

// These are the supported filter levels, from fastest to best.
const (
	FilterNone   FilterQuality = iota // nearest neighbour
	FilterLow                         // approximate bilinear
	FilterMedium                      // bilinear
	FilterHigh                        // Catmull-Rom
)

func (q FilterQuality) String() string {
	switch q {
	case FilterNone:
		return "none"
	case FilterLow:
		return "low"
	case FilterMedium:
		return "medium"
	case FilterHigh:
		return "high"
	default:
		return fmt.Sprintf("FilterQuality(%d)", int(q))
	}
}

// interpolator returns the x/image/draw kernel for q.
// It panics for unknown filter levels.
func (q FilterQuality) interpolator() draw.Transformer {
	switch q {
	case FilterNone:
		return draw.NearestNeighbor
	case FilterLow:
		return draw.ApproxBiLinear
	case FilterMedium:
		return draw.BiLinear
	case FilterHigh:
		return draw.CatmullRom
	default:
		panic("canvas: unknown filter quality " + q.String())
	}
}

// DrawImageRect draws the part srcRect of src, scaled to fill the user
// space rectangle dst, and composites it onto the canvas with source-over.
// The CTM applies to dst.
func (c *Canvas) DrawImageRect(src image.Image, srcRect image.Rectangle, dst rect.Rect, q FilterQuality) {
	interp := q.interpolator()

	srcRect = srcRect.Intersect(src.Bounds())
	if srcRect.Empty() {
		return
	}
	dw, dh := dst.URx-dst.LLx, dst.URy-dst.LLy
	if dw <= 0 || dh <= 0 {
		return
	}

	// user = dst.LL + k*(s - srcRect.Min), device = CTM(user)
	kx := dw / float64(srcRect.Dx())
	ky := dh / float64(srcRect.Dy())
	tx := dst.LLx - kx*float64(srcRect.Min.X)
	ty := dst.LLy - ky*float64(srcRect.Min.Y)
	m := c.ctm
	origin := c.img.Rect.Min
	s2d := f64.Aff3{
		m[0] * kx, m[2] * ky, m[0]*tx + m[2]*ty + m[4] + float64(origin.X),
		m[1] * kx, m[3] * ky, m[1]*tx + m[3]*ty + m[5] + float64(origin.Y),
	}
	interp.Transform(c.img, s2d, src, srcRect, draw.Over, nil)
}

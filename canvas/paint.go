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
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/rastergm/raster"
	"seehuhn.de/go/rastergm/shape"
)

// Style selects whether a shape is filled or stroked.
type Style int

// These are the supported paint styles.
const (
	FillStyle Style = iota
	StrokeStyle
)

func (s Style) String() string {
	switch s {
	case FillStyle:
		return "fill"
	case StrokeStyle:
		return "stroke"
	default:
		return "unknown"
	}
}

// Paint describes how shapes are drawn.
type Paint struct {
	Color     color.Color
	AntiAlias bool
	Style     Style

	// FillRule is used by FillStyle.
	FillRule raster.FillRule

	// The remaining fields are used by StrokeStyle. A zero StrokeWidth
	// means a width of 1 and a zero MiterLimit means the rasterizer's
	// default.
	StrokeWidth float64
	Cap         graphics.LineCapStyle
	Join        graphics.LineJoinStyle
	MiterLimit  float64
}

// ARGB converts a 32-bit color with alpha in the top byte, followed by
// red, green and blue, into a color.NRGBA.
func ARGB(v uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(v >> 24),
	}
}

// DrawPath fills or strokes p, depending on paint.Style.
func (c *Canvas) DrawPath(p path.Path, paint *Paint) {
	switch paint.Style {
	case FillStyle:
		c.FillPath(p, paint)
	case StrokeStyle:
		c.StrokePath(p, paint)
	default:
		panic("canvas: unknown paint style " + paint.Style.String())
	}
}

// FillPath fills p with paint.Color, using paint.FillRule.
func (c *Canvas) FillPath(p path.Path, paint *Paint) {
	r := c.rasterizer(paint)
	r.Fill(p, paint.FillRule, c.blend(paint.Color))
}

// StrokePath strokes p with the stroke parameters of paint.
func (c *Canvas) StrokePath(p path.Path, paint *Paint) {
	r := c.rasterizer(paint)
	r.Width = paint.StrokeWidth
	if r.Width <= 0 {
		r.Width = 1
	}
	r.Cap = paint.Cap
	r.Join = paint.Join
	if paint.MiterLimit >= 1 {
		r.MiterLimit = paint.MiterLimit
	}
	r.Stroke(p, c.blend(paint.Color))
}

// DrawArc draws the arc of the ellipse inscribed in oval, from startDeg
// over sweepDeg degrees, clockwise on screen. If useCenter is set, the
// arc is closed by two lines through the center of the oval.
func (c *Canvas) DrawArc(oval rect.Rect, startDeg, sweepDeg float64, useCenter bool, paint *Paint) {
	var p path.Path
	if useCenter {
		p = shape.Wedge(oval, startDeg, sweepDeg)
	} else {
		p = shape.Arc(oval, startDeg, sweepDeg)
	}
	c.DrawPath(p, paint)
}

func (c *Canvas) rasterizer(paint *Paint) *raster.Rasterizer {
	w, h := c.Size()
	r := c.r
	r.Reset(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = c.ctm
	r.Aliased = !paint.AntiAlias
	return r
}

// blend returns an emit function which composites col onto the canvas
// using source-over, weighted by the pixel coverage.
func (c *Canvas) blend(col color.Color) raster.EmitFunc {
	if col == nil {
		col = color.Black
	}
	r16, g16, b16, a16 := col.RGBA()
	sr := float32(r16) / 0xffff
	sg := float32(g16) / 0xffff
	sb := float32(b16) / 0xffff
	sa := float32(a16) / 0xffff

	pix := c.img.Pix
	return func(y, xMin int, coverage []float32) {
		off := c.img.PixOffset(c.img.Rect.Min.X+xMin, c.img.Rect.Min.Y+y)
		for i, cov := range coverage {
			if cov <= 0 {
				continue
			}
			p := pix[off+4*i : off+4*i+4 : off+4*i+4]
			k := 1 - sa*cov
			p[0] = toByte(sr*cov*255 + float32(p[0])*k)
			p[1] = toByte(sg*cov*255 + float32(p[1])*k)
			p[2] = toByte(sb*cov*255 + float32(p[2])*k)
			p[3] = toByte(sa*cov*255 + float32(p[3])*k)
		}
	}
}

func toByte(x float32) uint8 {
	if x >= 255 {
		return 255
	}
	if x <= 0 {
		return 0
	}
	return uint8(x + 0.5)
}

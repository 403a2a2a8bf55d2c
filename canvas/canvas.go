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

// Package canvas draws paths and images into an RGBA pixel buffer.
//
// A Canvas keeps a current transformation matrix (CTM) which maps user
// coordinates to the pixels of its buffer, with the origin at the top-left
// corner and the y-axis pointing down. Save and Restore manage a stack of
// matrices.
package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/rastergm/raster"
)

// Canvas draws into an *image.RGBA.
//
// Pixel (0, 0) of the canvas is the top-left pixel of the image bounds,
// so that a canvas over a sub-image works in the sub-image's own
// coordinates.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img   *image.RGBA
	ctm   matrix.Matrix
	stack []matrix.Matrix
	r     *raster.Rasterizer
}

// New returns a canvas which draws into img, with the identity CTM.
func New(img *image.RGBA) *Canvas {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	return &Canvas{
		img: img,
		ctm: matrix.Identity,
		r:   raster.NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)}),
	}
}

// TileView returns a canvas over the part r of img. The new canvas shares
// its pixels with img, so that drawing is visible in img immediately.
//
// Coordinates on the returned canvas start at the top-left corner of r.
// Because the tile is small, paths drawn on it stay within the
// anti-aliasing limit of the rasterizer even if img is very large.
func TileView(img *image.RGBA, r image.Rectangle) *Canvas {
	r = r.Add(img.Rect.Min)
	if !r.In(img.Rect) {
		panic("canvas: tile " + r.String() + " outside of " + img.Rect.String())
	}
	return New(img.SubImage(r).(*image.RGBA))
}

// Image returns the pixel buffer of the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the width and height of the canvas in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.img.Rect.Dx(), c.img.Rect.Dy()
}

// CTM returns the current transformation matrix.
func (c *Canvas) CTM() matrix.Matrix {
	return c.ctm
}

// Save pushes a copy of the CTM onto the stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.ctm)
}

// Restore pops the CTM saved by the matching call to Save.
// Calls without a matching Save are ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.ctm = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// SaveCount returns the number of saved matrices.
func (c *Canvas) SaveCount() int {
	return len(c.stack)
}

// Translate moves the origin of user space to (tx, ty).
func (c *Canvas) Translate(tx, ty float64) {
	m := &c.ctm
	m[4] += m[0]*tx + m[2]*ty
	m[5] += m[1]*tx + m[3]*ty
}

// Scale scales user space by sx horizontally and sy vertically.
func (c *Canvas) Scale(sx, sy float64) {
	m := &c.ctm
	m[0] *= sx
	m[1] *= sx
	m[2] *= sy
	m[3] *= sy
}

// Clear sets every pixel of the canvas to col, ignoring the CTM.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

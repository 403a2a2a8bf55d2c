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
	"image"
	"image/color"
	"slices"

	"seehuhn.de/go/rastergm/canvas"
)

// StripeImage is an RGBA image made of equal-sized horizontal stripes.
//
// While an image is being built, its stripes can be drawn into through
// tile views. After Seal, every attempt to modify the image panics, so
// that a sealed image can be shared between readers without locking.
type StripeImage struct {
	spec   Spec
	count  int
	pix    *image.RGBA
	sealed bool
}

// newStripeImage allocates a transparent, unsealed image with count
// stripes.
func newStripeImage(spec Spec, count int) *StripeImage {
	if count < 0 {
		panic(fmt.Sprintf("stripes: negative stripe count %d", count))
	}
	return &StripeImage{
		spec:  spec,
		count: count,
		pix:   image.NewRGBA(image.Rect(0, 0, spec.Width(), count*spec.Pitch())),
	}
}

// Count returns the number of stripes.
func (s *StripeImage) Count() int {
	return s.count
}

// Spec returns the geometry the image was built with.
func (s *StripeImage) Spec() Spec {
	return s.spec
}

// ColorModel implements the image.Image interface.
func (s *StripeImage) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
// The top-left corner is always (0, 0).
func (s *StripeImage) Bounds() image.Rectangle {
	return s.pix.Rect
}

// At implements the image.Image interface.
func (s *StripeImage) At(x, y int) color.Color {
	return s.pix.RGBAAt(x, y)
}

// RGBAAt returns the premultiplied color of pixel (x, y).
func (s *StripeImage) RGBAAt(x, y int) color.RGBA {
	return s.pix.RGBAAt(x, y)
}

// Pix returns a copy of the pixel data, in the layout of image.RGBA.
func (s *StripeImage) Pix() []byte {
	return slices.Clone(s.pix.Pix)
}

// StripeRect returns the pixel rectangle of stripe i.
func (s *StripeImage) StripeRect(i int) image.Rectangle {
	p := s.spec.Pitch()
	return image.Rect(0, i*p, p, (i+1)*p)
}

// Set changes the color of pixel (x, y). It panics if the image is sealed.
func (s *StripeImage) Set(x, y int, c color.Color) {
	s.mustBeOpen("Set")
	s.pix.Set(x, y, c)
}

// Tile returns a canvas over the square tile of stripe i.
// Drawing on the canvas writes directly into the image.
// Tile panics if the image is sealed or i is out of range.
func (s *StripeImage) Tile(i int) *canvas.Canvas {
	s.mustBeOpen("Tile")
	if i < 0 || i >= s.count {
		panic(fmt.Sprintf("stripes: stripe %d out of range [0, %d)", i, s.count))
	}
	return canvas.TileView(s.pix, s.StripeRect(i))
}

// View returns a read-only image over the pixels of s.
func (s *StripeImage) View() image.Image {
	return view{pix: s.pix}
}

// view exposes the pixels of a StripeImage for reading only.
type view struct {
	pix *image.RGBA
}

func (v view) ColorModel() color.Model        { return color.RGBAModel }
func (v view) Bounds() image.Rectangle        { return v.pix.Rect }
func (v view) At(x, y int) color.Color        { return v.pix.RGBAAt(x, y) }
func (v view) RGBA64At(x, y int) color.RGBA64 { return v.pix.RGBA64At(x, y) }
func (v view) RGBAAt(x, y int) color.RGBA     { return v.pix.RGBAAt(x, y) }

// Seal makes the image immutable.
func (s *StripeImage) Seal() {
	s.sealed = true
}

// Sealed reports whether the image is immutable.
func (s *StripeImage) Sealed() bool {
	return s.sealed
}

func (s *StripeImage) mustBeOpen(op string) {
	if s.sealed {
		panic("stripes: " + op + " on sealed image")
	}
}

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
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/rastergm/canvas"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	f()
}

// call records one DrawImageRect call.
type call struct {
	src     image.Image
	srcRect image.Rectangle
	dst     rect.Rect
	q       canvas.FilterQuality
}

type recorder struct {
	calls []call
}

func (r *recorder) DrawImageRect(src image.Image, srcRect image.Rectangle, dst rect.Rect, q canvas.FilterQuality) {
	r.calls = append(r.calls, call{src, srcRect, dst, q})
}

func TestDefaultSpec(t *testing.T) {
	s := DefaultSpec
	test.T(t, s.Pitch(), 52)
	test.T(t, s.Width(), 60)
	test.Float(t, s.ArcRadius(), 18)
	test.Float(t, s.StripeAngle(15), 375)
	test.Error(t, s.Validate())

	bad := s
	bad.Thickness = 50
	bad.Radius = 0
	test.That(t, bad.Validate() != nil)

	bad = s
	bad.AngleStep = math.Inf(1)
	test.That(t, bad.Validate() != nil)
}

func TestRandom(t *testing.T) {
	r := NewRandom(0)
	for _, want := range []uint32{0x4f9643a0, 0x018cb5ec, 0x79ea6f5c, 0xbdc9934e} {
		test.T(t, r.NextU(), want)
	}

	r.Seed(42)
	test.T(t, r.NextU(), uint32(0xce27fa7f))
	test.T(t, r.NextU(), uint32(0xd71c9fd8))
}

func TestStripeCount(t *testing.T) {
	for h := 0; h < 3*52+5; h++ {
		img := Build(DefaultSpec, h, NewRandom(0))
		count := h / 52
		test.T(t, img.Count(), count)
		test.T(t, img.Bounds(), image.Rect(0, 0, 60, count*52))
		test.That(t, img.Bounds().Dy() <= h)
	}
}

func TestVariantHeights(t *testing.T) {
	heights := Heights(8, 4096, 1024)
	test.T(t, heights, []int{4096, 5120, 6144, 7168, 8192, 9216, 10240, 11264})
	for _, h := range heights {
		count := DefaultSpec.Count(h)
		test.That(t, count > VisibleStripes, h)
		test.T(t, count*52 <= h, true)
		test.That(t, h-count*52 < 52)
	}
}

func TestEndToEnd(t *testing.T) {
	img := Build(DefaultSpec, 5120, NewRandom(0))
	test.T(t, img.Count(), 98)
	test.T(t, img.Bounds().Dy(), 5096)

	src, dst := Crop(img, img.Count(), 0)
	test.T(t, src, image.Rect(0, 88*52, 60, 5096))
	test.Float(t, dst.URy-dst.LLy, 520)
}

func TestCropTwelveStripes(t *testing.T) {
	img := newStripeImage(DefaultSpec, 12)
	const H = 52

	src, dst := Crop(img, 12, 0)
	test.T(t, src.Min.Y, 2*H)
	test.T(t, src.Dy(), 10*H)
	test.T(t, src.Dx(), 60)
	test.T(t, dst, rect.Rect{LLx: 0, LLy: 0, URx: 60, URy: 10 * H})
}

func TestBlitPrecondition(t *testing.T) {
	img := Build(DefaultSpec, 10*52, NewRandom(0))
	test.T(t, img.Count(), 10)
	rec := &recorder{}
	mustPanic(t, func() { Blit(img, img.Count(), rec, 0) })
	mustPanic(t, func() { Blit(img, 0, rec, 0) })
	test.T(t, len(rec.calls), 0)
}

func TestBlitCursor(t *testing.T) {
	set := BuildSet(DefaultSpec, []int{11 * 52, 12 * 52, 20*52 + 51}, 0)
	rec := &recorder{}

	cursor := 0.0
	for _, img := range set {
		next := Blit(img, img.Count(), rec, cursor)
		test.Float(t, next-cursor, 60+Gap)
		cursor = next
	}

	test.T(t, len(rec.calls), 3)
	for i, c := range rec.calls {
		test.Float(t, c.dst.LLx, float64(i*70))
		test.Float(t, c.dst.URx-c.dst.LLx, 60)
		test.Float(t, c.dst.LLy, 0)
		test.Float(t, c.dst.URy, 520)
		test.T(t, c.q, canvas.FilterLow)
		test.T(t, c.srcRect.Max.Y, set[i].Bounds().Max.Y)
		test.T(t, c.src.Bounds(), set[i].Bounds())
		_, writable := c.src.(draw.Image)
		test.That(t, !writable, "blit source is writable")
	}
}

// scribbler tries to write into every source image it is given.
type scribbler struct{}

func (scribbler) DrawImageRect(src image.Image, srcRect image.Rectangle, dst rect.Rect, q canvas.FilterQuality) {
	if d, ok := src.(draw.Image); ok {
		d.Set(srcRect.Min.X, srcRect.Min.Y, color.White)
	}
	if rgba, ok := src.(*image.RGBA); ok {
		clear(rgba.Pix)
	}
}

func TestBlitKeepsSeal(t *testing.T) {
	img := Build(DefaultSpec, 12*52, NewRandom(0))
	before := img.Pix()

	Blit(img, img.Count(), scribbler{}, 0)
	test.That(t, bytes.Equal(before, img.Pix()))

	v := img.View()
	test.T(t, v.Bounds(), img.Bounds())
	test.T(t, v.At(13, 36), img.At(13, 36))
}

func TestBuildIdempotent(t *testing.T) {
	a := Build(DefaultSpec, 13*52, NewRandom(0))
	b := Build(DefaultSpec, 13*52, NewRandom(0))
	test.That(t, bytes.Equal(a.Pix(), b.Pix()))

	c := Build(DefaultSpec, 13*52, NewRandom(1))
	test.That(t, !bytes.Equal(a.Pix(), c.Pix()))
}

func TestSealed(t *testing.T) {
	img := Build(DefaultSpec, 2*52, NewRandom(0))
	test.That(t, img.Sealed())
	before := img.Pix()

	mustPanic(t, func() { img.Set(0, 0, color.White) })
	mustPanic(t, func() { img.Tile(0) })
	test.That(t, bytes.Equal(before, img.Pix()))

	// Pix returns a copy
	p := img.Pix()
	p[0] = 17
	test.That(t, bytes.Equal(before, img.Pix()))
}

func TestUnsealedImage(t *testing.T) {
	img := newStripeImage(DefaultSpec, 3)
	test.That(t, !img.Sealed())
	img.Set(1, 60, color.White)
	test.T(t, img.RGBAAt(1, 60), color.RGBA{R: 255, G: 255, B: 255, A: 255})

	mustPanic(t, func() { img.Tile(3) })
	mustPanic(t, func() { img.Tile(-1) })
	mustPanic(t, func() { Build(DefaultSpec, -1, NewRandom(0)) })
}

func TestGlyph(t *testing.T) {
	img := Build(DefaultSpec, 2*52, NewRandom(0))
	first := color.RGBA{R: 0x96, G: 0x43, B: 0xa0, A: 0xff}

	// on the arc, at 160 degrees
	test.T(t, img.RGBAAt(13, 36), first)
	// ring center and the gap between 320 and 360 degrees
	test.T(t, img.RGBAAt(30, 30), color.RGBA{})
	test.T(t, img.RGBAAt(46, 23), color.RGBA{})
	// tile corners
	test.T(t, img.RGBAAt(0, 0), color.RGBA{})
	test.T(t, img.RGBAAt(59, 51), color.RGBA{})

	// the second stripe uses the next color
	second := canvas.ARGB(0x018cb5ec | 0xFF000000)
	test.T(t, img.RGBAAt(13, 52+36), color.RGBA{R: second.R, G: second.G, B: second.B, A: 255})
}

// Stripes far below the rasterizer's anti-aliasing limit still have
// smooth edges.
func TestDeepStripesAntiAliased(t *testing.T) {
	img := Build(DefaultSpec, 11264, NewRandom(0))
	last := img.StripeRect(img.Count() - 1)
	test.That(t, last.Min.Y > 8191)

	partial := 0
	for y := last.Min.Y; y < last.Max.Y; y++ {
		for x := last.Min.X; x < last.Max.X; x++ {
			if a := img.RGBAAt(x, y).A; a > 0 && a < 255 {
				partial++
			}
		}
	}
	test.That(t, partial > 0)
}

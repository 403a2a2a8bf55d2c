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

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/rastergm/canvas"
)

const (
	// VisibleStripes is the number of stripes copied by Blit.
	VisibleStripes = 10

	// Gap is the horizontal space left between neighbouring blits.
	Gap = 10
)

// Surface is the destination of Blit. *canvas.Canvas implements it.
type Surface interface {
	DrawImageRect(src image.Image, srcRect image.Rectangle, dst rect.Rect, q canvas.FilterQuality)
}

// Crop returns the pixel rectangle covering the last VisibleStripes of an
// image with count stripes, and the unscaled destination rectangle for a
// copy of it placed at the horizontal position cursor.
// Crop panics unless count > VisibleStripes.
func Crop(img *StripeImage, count int, cursor float64) (src image.Rectangle, dst rect.Rect) {
	if count <= VisibleStripes {
		panic(fmt.Sprintf("stripes: need more than %d stripes, got %d", VisibleStripes, count))
	}
	b := img.Bounds()
	itemHeight := b.Dy() / count
	start := count - VisibleStripes

	src = image.Rect(0, start*itemHeight, b.Dx(), b.Dy())
	dst = rect.Rect{
		LLx: cursor,
		LLy: 0,
		URx: cursor + float64(b.Dx()),
		URy: float64(VisibleStripes * itemHeight),
	}
	return src, dst
}

// Blit copies the last VisibleStripes stripes of img to dst, scaled to the
// destination rectangle from Crop, with low quality filtering. The surface
// only sees a read-only view of img.
// It returns the cursor position for the next call.
// Blit panics unless count > VisibleStripes.
func Blit(img *StripeImage, count int, dst Surface, cursor float64) float64 {
	srcRect, dstRect := Crop(img, count, cursor)
	dst.DrawImageRect(img.View(), srcRect, dstRect, canvas.FilterLow)
	return cursor + float64(img.Bounds().Dx()) + Gap
}

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
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/rastergm/canvas"
)

// TestGlyphReference compares stripe glyphs with the images written by
// cmd/genpdf. The glyphs are taken from one tall image, so that stripes
// far beyond the rasterizer's anti-aliasing limit are checked as well.
func TestGlyphReference(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "reference", "stripe_*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Skip("no reference images, run cmd/genpdf")
	}

	refs := map[int]string{}
	last := 0
	for _, fname := range files {
		base := strings.TrimSuffix(filepath.Base(fname), ".png")
		i, err := strconv.Atoi(strings.TrimPrefix(base, "stripe_"))
		if err != nil || i < 0 {
			t.Fatalf("unexpected reference file %s", fname)
		}
		refs[i] = fname
		last = max(last, i)
	}

	img := Build(DefaultSpec, (last+1)*DefaultSpec.Pitch(), NewRandom(0))
	for _, i := range slices.Sorted(maps.Keys(refs)) {
		t.Run(fmt.Sprintf("stripe_%d", i), func(t *testing.T) {
			ref, err := loadGray(refs[i])
			if err != nil {
				t.Fatal(err)
			}
			r := img.StripeRect(i)
			if ref.Bounds().Size() != r.Size() {
				t.Fatalf("reference is %v, want %v", ref.Bounds().Size(), r.Size())
			}
			var diffs []int
			for y := range r.Dy() {
				for x := range r.Dx() {
					a := int(img.RGBAAt(r.Min.X+x, r.Min.Y+y).A)
					e := int(ref.GrayAt(x, y).Y)
					diffs = append(diffs, max(a-e, e-a))
				}
			}
			if err := checkDiffs(diffs); err != nil {
				t.Error(err)
			}
		})
	}
}

// TestGlyphPath checks that drawing GlyphPath on a plain tile gives the
// same pixels as Build.
func TestGlyphPath(t *testing.T) {
	img := Build(DefaultSpec, 3*52, NewRandom(0))
	rnd := NewRandom(0)
	for i := range 3 {
		tile := image.NewRGBA(image.Rect(0, 0, 52, 52))
		c := canvas.New(tile)
		c.StrokePath(DefaultSpec.GlyphPath(i), &canvas.Paint{
			Color:       canvas.ARGB(rnd.NextU() | 0xFF000000),
			AntiAlias:   true,
			Style:       canvas.StrokeStyle,
			StrokeWidth: DefaultSpec.Thickness,
			Cap:         graphics.LineCapRound,
		})

		r := img.StripeRect(i)
		worst := 0
		for y := range 52 {
			for x := range 52 {
				a := int(img.RGBAAt(r.Min.X+x, r.Min.Y+y).A)
				b := int(tile.RGBAAt(x, y).A)
				worst = max(worst, a-b, b-a)
			}
		}
		if worst > 2 {
			t.Errorf("stripe %d: alpha differs by up to %d", i, worst)
		}
	}
}

func loadGray(fname string) (*image.Gray, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := range b.Dy() {
		for x := range b.Dx() {
			gray.SetGray(x, y, color.GrayModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray))
		}
	}
	return gray, nil
}

// checkDiffs applies the thresholds of the rasterizer reference tests:
// 80% of the pixels identical, 95% within 64 and 99% within 128.
func checkDiffs(diffs []int) error {
	slices.Sort(diffs)
	at := func(q float64) int {
		return diffs[int(math.Round(q*float64(len(diffs)-1)))]
	}
	var failures []string
	if p := at(0.80); p > 0 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want 0)", p))
	}
	if p := at(0.95); p >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p))
	}
	if p := at(0.99); p >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p))
	}
	if len(failures) > 0 {
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

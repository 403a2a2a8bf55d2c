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

// Package gms contains the visual tests of this module.
package gms

import (
	"seehuhn.de/go/rastergm/canvas"
	"seehuhn.de/go/rastergm/gm"
	"seehuhn.de/go/rastergm/stripes"
)

// TallStretchedBitmapsName is the registry name of TallStretchedBitmaps.
const TallStretchedBitmapsName = "tall_stretched_bitmaps"

// Options configures TallStretchedBitmaps.
type Options struct {
	Spec    stripes.Spec
	Seed    uint32  // seed of the color stream of every image
	Scale   float64 // uniform scale applied before the blits
	Heights []int   // requested image heights, in drawing order
}

// DefaultOptions returns the reference configuration: eight images with
// heights 4096, 5120, ..., 11264, drawn at scale 1.3.
func DefaultOptions() Options {
	return Options{
		Spec:    stripes.DefaultSpec,
		Seed:    0,
		Scale:   1.3,
		Heights: stripes.Heights(8, 4*1024, 1024),
	}
}

// TallStretchedBitmaps draws scaled crops of the last stripes of several
// very tall stripe images next to each other.
//
// The images are much taller than the anti-aliasing limit of the
// rasterizer. Their glyphs must nevertheless appear anti-aliased, which
// is why every stripe is drawn through its own tile view.
type TallStretchedBitmaps struct {
	opts   Options
	images stripes.Set
}

// NewTallStretchedBitmaps returns an unprepared test.
func NewTallStretchedBitmaps(opts Options) *TallStretchedBitmaps {
	return &TallStretchedBitmaps{opts: opts}
}

// Name implements gm.GM.
func (g *TallStretchedBitmaps) Name() string {
	return TallStretchedBitmapsName
}

// Size implements gm.GM.
func (g *TallStretchedBitmaps) Size() (width, height int) {
	return 750, 750
}

// Flags implements gm.GM.
// The per-stripe tile views do not survive tiled or recorded playback.
func (g *TallStretchedBitmaps) Flags() gm.Flags {
	return gm.SkipTiled | gm.NoBBH | gm.SkipPicture
}

// OnceBeforeDraw builds the stripe images.
func (g *TallStretchedBitmaps) OnceBeforeDraw() {
	g.images = stripes.BuildSet(g.opts.Spec, g.opts.Heights, g.opts.Seed)
	for i, img := range g.images {
		gm.Logger().Debug("stripe image",
			"gm", TallStretchedBitmapsName,
			"requested", g.opts.Heights[i],
			"height", img.Bounds().Dy(),
			"stripes", img.Count())
	}
}

// Images returns the images built by OnceBeforeDraw.
func (g *TallStretchedBitmaps) Images() stripes.Set {
	return g.images
}

// Draw implements gm.GM.
// It panics if OnceBeforeDraw has not been called.
func (g *TallStretchedBitmaps) Draw(c *canvas.Canvas) {
	if g.images == nil {
		panic("gms: " + TallStretchedBitmapsName + " drawn before OnceBeforeDraw")
	}
	c.Save()
	defer c.Restore()

	c.Scale(g.opts.Scale, g.opts.Scale)
	cursor := 0.0
	for _, img := range g.images {
		cursor = stripes.Blit(img, img.Count(), c, cursor)
	}
}

// Register adds all tests of this package to reg.
func Register(reg *gm.Registry, opts Options) error {
	return reg.Register(TallStretchedBitmapsName, func() gm.GM {
		return NewTallStretchedBitmaps(opts)
	})
}

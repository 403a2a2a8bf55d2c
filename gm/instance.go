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

package gm

import (
	"image"
	"image/color"
	"sync"
	"time"

	"seehuhn.de/go/rastergm/canvas"
)

// Instance drives a GM through its life cycle: OnceBeforeDraw runs exactly
// once, before the first draw, no matter how many draws follow.
type Instance struct {
	gm   GM
	once sync.Once
}

// NewInstance wraps g.
func NewInstance(g GM) *Instance {
	return &Instance{gm: g}
}

// GM returns the wrapped test.
func (in *Instance) GM() GM {
	return in.gm
}

// Prepare runs OnceBeforeDraw, unless this has happened already.
// It is safe to call Prepare from several goroutines.
func (in *Instance) Prepare() {
	in.once.Do(func() {
		start := time.Now()
		in.gm.OnceBeforeDraw()
		Logger().Debug("prepared",
			"gm", in.gm.Name(),
			"duration", time.Since(start))
	})
}

// Draw prepares the test if needed and draws it onto c.
func (in *Instance) Draw(c *canvas.Canvas) {
	in.Prepare()

	depth := c.SaveCount()
	start := time.Now()
	in.gm.Draw(c)
	if c.SaveCount() != depth {
		Logger().Warn("unbalanced save stack",
			"gm", in.gm.Name(),
			"before", depth,
			"after", c.SaveCount())
	}
	Logger().Debug("drawn",
		"gm", in.gm.Name(),
		"duration", time.Since(start))
}

// Render draws the test onto a new image of the size the test requests,
// cleared to background first.
func (in *Instance) Render(background color.Color) *image.RGBA {
	w, h := in.gm.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	c := canvas.New(img)
	c.Clear(background)
	in.Draw(c)
	return img
}

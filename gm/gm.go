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

// Package gm defines visual tests ("graphics methods") and the machinery
// to register and render them.
//
// A GM draws a fixed picture onto a canvas of a fixed size. Expensive
// preparation, such as building source images, happens once in
// OnceBeforeDraw, after which Draw may be called any number of times.
package gm

import (
	"fmt"
	"strings"

	"seehuhn.de/go/rastergm/canvas"
)

// GM is a single visual test.
type GM interface {
	// Name returns the unique name of the test, lowercase with underscores.
	Name() string

	// Size returns the size of the canvas the test draws on.
	Size() (width, height int)

	// OnceBeforeDraw prepares the test. It is called exactly once, before
	// the first call to Draw.
	OnceBeforeDraw()

	// Draw renders the test onto c. Draw must leave the save stack of c
	// the way it found it.
	Draw(c *canvas.Canvas)

	// Flags reports the rendering modes in which the test must be skipped.
	Flags() Flags
}

// Flags mark rendering modes which a GM does not support.
type Flags uint32

// These are the supported flags.
const (
	// SkipTiled excludes the test from tiled rendering.
	SkipTiled Flags = 1 << iota

	// NoBBH excludes the test from playback through a bounding box
	// hierarchy.
	NoBBH

	// SkipPicture excludes the test from picture record and playback.
	SkipPicture
)

var flagNames = []struct {
	f    Flags
	name string
}{
	{SkipTiled, "SkipTiled"},
	{NoBBH, "NoBBH"},
	{SkipPicture, "SkipPicture"},
}

// Has reports whether all flags in g are set in f.
func (f Flags) Has(g Flags) bool {
	return f&g == g
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.f != 0 {
			parts = append(parts, fn.name)
			f &^= fn.f
		}
	}
	if f != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(f)))
	}
	return strings.Join(parts, "|")
}

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
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/tdewolff/test"

	"seehuhn.de/go/rastergm/canvas"
	"seehuhn.de/go/rastergm/shape"
)

// square fills a black square in the top-left corner.
type square struct {
	name     string
	prepared int
	drawn    int
	leakSave bool
}

func (s *square) Name() string              { return s.name }
func (s *square) Size() (width, height int) { return 20, 10 }
func (s *square) OnceBeforeDraw()           { s.prepared++ }
func (s *square) Flags() Flags              { return NoBBH }

func (s *square) Draw(c *canvas.Canvas) {
	s.drawn++
	c.Save()
	c.Scale(2, 2)
	c.FillPath(shape.Rectangle(0, 0, 2, 2), &canvas.Paint{Color: color.Black, AntiAlias: true})
	if !s.leakSave {
		c.Restore()
	}
}

func TestFlags(t *testing.T) {
	f := SkipTiled | NoBBH | SkipPicture
	test.T(t, f.String(), "SkipTiled|NoBBH|SkipPicture")
	test.That(t, f.Has(NoBBH))
	test.That(t, f.Has(SkipTiled|SkipPicture))
	test.That(t, !NoBBH.Has(SkipTiled))
	test.T(t, Flags(0).String(), "none")
	test.T(t, (NoBBH | 1<<8).String(), "NoBBH|0x100")
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	test.Error(t, reg.Register("b", func() GM { return &square{name: "b"} }))
	test.Error(t, reg.Register("a", func() GM { return &square{name: "a"} }))

	err := reg.Register("a", func() GM { return &square{name: "a"} })
	test.That(t, errors.Is(err, ErrDuplicate), err)
	test.That(t, reg.Register("", func() GM { return nil }) != nil)
	test.That(t, reg.Register("c", nil) != nil)

	test.T(t, reg.Names(), []string{"a", "b"})

	in, err := reg.New("b")
	test.Error(t, err)
	test.T(t, in.GM().Name(), "b")

	_, err = reg.New("missing")
	test.That(t, errors.Is(err, ErrUnknown), err)
}

func TestRegistryFreshInstances(t *testing.T) {
	reg := NewRegistry()
	test.Error(t, reg.Register("sq", func() GM { return &square{name: "sq"} }))
	a, _ := reg.New("sq")
	b, _ := reg.New("sq")
	test.That(t, a.GM() != b.GM())
}

func TestPrepareOnce(t *testing.T) {
	sq := &square{name: "sq"}
	in := NewInstance(sq)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in.Prepare()
		}()
	}
	wg.Wait()
	test.T(t, sq.prepared, 1)

	in.Render(color.White)
	in.Render(color.White)
	test.T(t, sq.prepared, 1)
	test.T(t, sq.drawn, 2)
}

func TestRender(t *testing.T) {
	in := NewInstance(&square{name: "sq"})
	img := in.Render(color.White)

	test.T(t, img.Bounds().Dx(), 20)
	test.T(t, img.Bounds().Dy(), 10)
	test.T(t, img.RGBAAt(1, 1), color.RGBA{A: 255})
	test.T(t, img.RGBAAt(3, 3), color.RGBA{A: 255})
	test.T(t, img.RGBAAt(5, 5), color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func TestLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	in := NewInstance(&square{name: "leaky", leakSave: true})
	in.Render(color.White)

	out := buf.String()
	test.That(t, strings.Contains(out, "msg=prepared"), out)
	test.That(t, strings.Contains(out, "unbalanced save stack"), out)
	test.That(t, strings.Contains(out, "gm=leaky"), out)

	SetLogger(nil)
	buf.Reset()
	in.Render(color.White)
	test.T(t, buf.Len(), 0)
}

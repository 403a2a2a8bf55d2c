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

package cli

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/rastergm/gm"
	"seehuhn.de/go/rastergm/gms"
)

type renderOpts struct {
	output string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [name]",
		Short: "Render a visual test to a PNG file",
		Long: `Render draws one visual test onto a white canvas of the size the test
requests and writes the result as a PNG file. Without a name,
tall_stretched_bitmaps is rendered.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := gms.TallStretchedBitmapsName
			if len(args) > 0 {
				name = args[0]
			}
			return runRender(cmd, name, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <name>.png)")
	return cmd
}

func runRender(cmd *cobra.Command, name string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	reg, err := newRegistry(cfg)
	if err != nil {
		return err
	}
	in, err := reg.New(name)
	if err != nil {
		return err
	}

	gm.SetLogger(slog.New(logger))
	defer gm.SetLogger(nil)

	output := opts.output
	if output == "" {
		output = cfg.Output
	}
	if output == "" {
		output = name + ".png"
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	prog := newProgress(logger)
	img := in.Render(color.White)
	prog.done("rendered", "gm", name, "flags", in.GM().Flags())

	if err := writePNG(output, img); err != nil {
		return err
	}
	logger.Info("written", "file", output)
	return nil
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

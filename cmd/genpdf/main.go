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

// Command genpdf generates reference images for the rasterizer and
// stripe tests.
//
// Every image is first described as a one-page PDF file, using the PDF
// library's own path and stroke operators, and then rendered by Ghostscript
// into an 8-bit grayscale PNG. White on black, so that the gray value of a
// pixel is its coverage.
//
// Two sets of images are written, relative to --root:
//
//	raster/testdata/reference/<category>_<name>.png   one per test case
//	stripes/testdata/reference/stripe_<i>.png         one stripe glyph tile
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/rastergm/stripes"
)

type options struct {
	root    string
	gs      string
	only    string
	stripes []int
	keepPDF bool
	verbose bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "genpdf",
		Short:         "Generate reference images with Ghostscript",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				Level:           level,
			})
			return run(cmd.Context(), logger, opts)
		},
	}

	// stripe 15 is the first one past a full turn, 215 is the last stripe
	// of the tallest image
	defaultStripes := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 215}

	f := cmd.Flags()
	f.StringVar(&opts.root, "root", ".", "module root directory")
	f.StringVar(&opts.gs, "gs", "gs", "Ghostscript executable")
	f.StringVar(&opts.only, "only", "", "only write images whose name starts with this prefix")
	f.IntSliceVar(&opts.stripes, "stripe", defaultStripes, "stripe indices to render")
	f.BoolVar(&opts.keepPDF, "keep-pdf", false, "keep the intermediate PDF files")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every written file")
	return cmd
}

func run(ctx context.Context, logger *log.Logger, opts *options) error {
	gs, err := newGhostscript(opts.gs)
	if err != nil {
		return err
	}

	jobs := caseJobs(opts.root)
	jobs = append(jobs, stripeJobs(opts.root, stripes.DefaultSpec, opts.stripes)...)

	tmp, err := os.MkdirTemp("", "genpdf")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	written := 0
	for _, j := range selectJobs(jobs, opts.only) {
		if err := ctx.Err(); err != nil {
			return err
		}
		pdfDir := tmp
		if opts.keepPDF {
			pdfDir = j.dir
		}
		if err := j.generate(ctx, gs, pdfDir); err != nil {
			return fmt.Errorf("%s: %w", j.name, err)
		}
		logger.Debug("written", "file", j.pngPath())
		written++
	}
	logger.Info("done", "images", written)
	return nil
}

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

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/rastergm/stripes"
	"seehuhn.de/go/rastergm/testcases"
)

// job is one reference image.
type job struct {
	name string // file name without extension
	dir  string // output directory of the PNG file
	tc   testcases.TestCase
}

func (j job) pngPath() string {
	return filepath.Join(j.dir, j.name+".png")
}

// generate writes the PDF for j into pdfDir and renders it to j.pngPath().
func (j job) generate(ctx context.Context, gs *ghostscript, pdfDir string) error {
	if err := j.tc.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(j.dir, 0755); err != nil {
		return err
	}
	pdfPath := filepath.Join(pdfDir, j.name+".pdf")
	if err := writePDF(j.tc, pdfPath); err != nil {
		return err
	}
	return gs.render(ctx, pdfPath, j.pngPath())
}

// caseJobs returns one job per rasterizer test case.
func caseJobs(root string) []job {
	dir := filepath.Join(root, "raster", "testdata", "reference")
	var res []job
	for key, tc := range testcases.Sorted() {
		res = append(res, job{name: key, dir: dir, tc: tc})
	}
	return res
}

// stripeJobs returns one job per stripe index. Each image shows the glyph
// of that stripe in a tile of Pitch x Pitch pixels.
func stripeJobs(root string, spec stripes.Spec, indices []int) []job {
	dir := filepath.Join(root, "stripes", "testdata", "reference")
	pitch := spec.Pitch()
	res := make([]job, 0, len(indices))
	for _, i := range indices {
		name := fmt.Sprintf("stripe_%d", i)
		res = append(res, job{
			name: name,
			dir:  dir,
			tc: testcases.TestCase{
				Name:   name,
				Path:   spec.GlyphPath(i),
				Width:  pitch,
				Height: pitch,
				Op: testcases.Stroke{
					Width:      spec.Thickness,
					Cap:        graphics.LineCapRound,
					Join:       graphics.LineJoinMiter,
					MiterLimit: 10,
				},
			},
		})
	}
	return res
}

// selectJobs keeps the jobs whose name starts with prefix.
func selectJobs(jobs []job, prefix string) []job {
	if prefix == "" {
		return jobs
	}
	var res []job
	for _, j := range jobs {
		if strings.HasPrefix(j.name, prefix) {
			res = append(res, j)
		}
	}
	return res
}

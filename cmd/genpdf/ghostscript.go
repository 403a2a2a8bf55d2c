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
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ghostscript renders PDF files to grayscale PNG images.
type ghostscript struct {
	bin string
}

// newGhostscript locates the Ghostscript executable.
func newGhostscript(name string) (*ghostscript, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("ghostscript not found: %w", err)
	}
	return &ghostscript{bin: bin}, nil
}

// args returns the command line for one conversion: 8-bit gray, one pixel
// per point, with 4 bits of anti-aliasing for vector graphics.
func (gs *ghostscript) args(pdfPath, pngPath string) []string {
	return []string{
		"-q", "-dNOPAUSE", "-dBATCH", "-dSAFER",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-sOutputFile=" + pngPath,
		pdfPath,
	}
}

func (gs *ghostscript) render(ctx context.Context, pdfPath, pngPath string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, gs.bin, gs.args(pdfPath, pngPath)...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

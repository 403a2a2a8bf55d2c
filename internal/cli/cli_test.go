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
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tdewolff/test"

	"seehuhn.de/go/rastergm/gm"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			test.T(t, buf.Len() > 0, tt.wantLog)
		})
	}
}

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()
	test.That(t, loggerFromContext(ctx) == log.Default())
	test.T(t, configFromContext(ctx).Spec(), DefaultConfig().Spec())
}

func TestList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), []string{"list"}, &stdout, &stderr)
	test.Error(t, err)

	out := stdout.String()
	test.That(t, strings.Contains(out, "tall_stretched_bitmaps"), out)
	test.That(t, strings.Contains(out, "750x750"), out)
	test.That(t, strings.Contains(out, "SkipTiled|NoBBH|SkipPicture"), out)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, "small.toml", `
[draw]
variants = 2
base_height = 572
height_step = 520
`)
	output := filepath.Join(dir, "out.png")

	var stdout, stderr bytes.Buffer
	args := []string{"render", "-v", "-c", cfgFile, "-o", output}
	err := Execute(context.Background(), args, &stdout, &stderr)
	test.Error(t, err)

	f, err := os.Open(output)
	test.Error(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 750)
	test.T(t, img.Bounds().Dy(), 750)

	logs := stderr.String()
	test.That(t, strings.Contains(logs, "rendered"), logs)
	test.That(t, strings.Contains(logs, "stripe image"), logs)

	// the library logger is reset afterwards
	test.That(t, !gm.Logger().Enabled(context.Background(), -8))
}

func TestRenderErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), []string{"render", "no_such_gm"}, &stdout, &stderr)
	test.That(t, errors.Is(err, gm.ErrUnknown), err)

	err = Execute(context.Background(), []string{"list", "-c", "/nonexistent/cfg.toml"}, &stdout, &stderr)
	test.That(t, err != nil)

	err = Execute(context.Background(), []string{"render", "a", "b"}, &stdout, &stderr)
	test.That(t, err != nil)
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	output := filepath.Join(t.TempDir(), "out.png")
	var stdout, stderr bytes.Buffer
	err := Execute(ctx, []string{"render", "-o", output}, &stdout, &stderr)
	test.That(t, errors.Is(err, context.Canceled), err)
	_, statErr := os.Stat(output)
	test.That(t, os.IsNotExist(statErr))
}

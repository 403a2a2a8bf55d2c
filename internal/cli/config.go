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
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/rastergm/gms"
	"seehuhn.de/go/rastergm/stripes"
)

// Config holds the settings which can be changed in a config file.
//
// Example:
//
//	output = "out.png"
//
//	[stripes]
//	radius = 22
//	sweep = 300
//
//	[draw]
//	seed = 7
//	variants = 4
type Config struct {
	Stripes StripesConfig `toml:"stripes"`
	Draw    DrawConfig    `toml:"draw"`

	// Output is the PNG file written by the render command. If empty,
	// the name of the test is used.
	Output string `toml:"output"`
}

// StripesConfig sets the geometry of the stripe glyphs.
type StripesConfig struct {
	Radius     int     `toml:"radius"`
	Margin     int     `toml:"margin"`
	StartAngle float64 `toml:"start_angle"`
	AngleStep  float64 `toml:"angle_step"`
	Sweep      float64 `toml:"sweep"`
	Thickness  float64 `toml:"thickness"`
}

// DrawConfig sets the images drawn by tall_stretched_bitmaps.
type DrawConfig struct {
	Seed       uint32  `toml:"seed"`
	Scale      float64 `toml:"scale"`
	Variants   int     `toml:"variants"`
	BaseHeight int     `toml:"base_height"`
	HeightStep int     `toml:"height_step"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	s := stripes.DefaultSpec
	opts := gms.DefaultOptions()
	return Config{
		Stripes: StripesConfig{
			Radius:     s.Radius,
			Margin:     s.Margin,
			StartAngle: s.StartAngle,
			AngleStep:  s.AngleStep,
			Sweep:      s.Sweep,
			Thickness:  s.Thickness,
		},
		Draw: DrawConfig{
			Seed:       opts.Seed,
			Scale:      opts.Scale,
			Variants:   len(opts.Heights),
			BaseHeight: opts.Heights[0],
			HeightStep: opts.Heights[1] - opts.Heights[0],
		},
	}
}

// LoadConfig reads a TOML file. Settings missing from the file keep
// their default values. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Spec returns the stripe geometry.
func (c Config) Spec() stripes.Spec {
	return stripes.Spec{
		Radius:     c.Stripes.Radius,
		Margin:     c.Stripes.Margin,
		StartAngle: c.Stripes.StartAngle,
		AngleStep:  c.Stripes.AngleStep,
		Sweep:      c.Stripes.Sweep,
		Thickness:  c.Stripes.Thickness,
	}
}

// Options returns the options for the tall_stretched_bitmaps test.
func (c Config) Options() gms.Options {
	return gms.Options{
		Spec:    c.Spec(),
		Seed:    c.Draw.Seed,
		Scale:   c.Draw.Scale,
		Heights: stripes.Heights(c.Draw.Variants, c.Draw.BaseHeight, c.Draw.HeightStep),
	}
}

// Validate checks that every configured image has enough stripes to be
// drawn.
func (c Config) Validate() error {
	spec := c.Spec()
	if err := spec.Validate(); err != nil {
		return err
	}
	var errs []error
	if !(c.Draw.Scale > 0) || math.IsInf(c.Draw.Scale, 1) {
		errs = append(errs, fmt.Errorf("scale %g is not a positive finite number", c.Draw.Scale))
	}
	if c.Draw.Variants <= 0 {
		errs = append(errs, fmt.Errorf("variants %d is not positive", c.Draw.Variants))
	}
	for _, h := range stripes.Heights(c.Draw.Variants, c.Draw.BaseHeight, c.Draw.HeightStep) {
		if n := spec.Count(max(h, 0)); n <= stripes.VisibleStripes {
			errs = append(errs, fmt.Errorf("height %d gives %d stripes, need more than %d",
				h, n, stripes.VisibleStripes))
		}
	}
	return errors.Join(errs...)
}

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

// Package cli implements the rastergm command-line interface.
//
// The commands are:
//   - list: show the registered visual tests
//   - render: draw one test and write it as a PNG file
//
// All commands support --verbose (-v) for debug-level logging and
// --config (-c) to read settings from a TOML file. Loggers are passed
// through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/rastergm/gm"
	"seehuhn.de/go/rastergm/gms"
)

// globalFlags holds the values of the persistent flags.
type globalFlags struct {
	verbose    bool
	configPath string
}

// Execute runs the command line given in args. Log messages go to stderr,
// command output to stdout.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "rastergm",
		Short:         "rastergm renders visual tests for a 2D rasterizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if flags.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)
			ctx := withLogger(cmd.Context(), logger)

			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "read settings from a TOML file")

	root.AddCommand(newListCmd())
	root.AddCommand(newRenderCmd())
	return root
}

// newRegistry returns a registry with all visual tests, configured by cfg.
func newRegistry(cfg Config) (*gm.Registry, error) {
	reg := gm.NewRegistry()
	if err := gms.Register(reg, cfg.Options()); err != nil {
		return nil, err
	}
	return reg, nil
}

// loadConfig reads the config file at path, or returns the defaults if
// path is empty.
func loadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bpowers/stego"
	"github.com/bpowers/stego/internal/config"
)

// app is the state shared by subcommands once flags and config are resolved.
type app struct {
	cfgFile    string
	cfg        *config.Config
	configPath string
	logger     *slog.Logger
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix: "stego",
		Level:  lvl,
	})
	return slog.New(handler), nil
}

// options translates settings into library options.
func (a *app) options() []stego.Option {
	return []stego.Option{
		stego.WithLogger(a.logger),
		stego.WithOverwrite(a.cfg.Overwrite),
		stego.WithOutputDir(a.cfg.OutputDir),
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "stego",
		Short: "Append a file to a host file and recover it later",
		Long: TitleStyle.Render("stego") + SubtitleStyle.Render(" - carry a file at the end of another") + `

The payload and a small header are appended after the host's bytes, so
the output still opens as the host did.  Nothing is encrypted.

` + SubtitleStyle.Render("Examples:") + `
  stego embed cover.png secret.txt out.png
  stego extract out.png recovered
  stego inspect out.png`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			a.cfg, a.configPath, a.logger = cfg, path, logger
			if path != "" {
				logger.Debug("loaded config", "path", path)
			}
			return nil
		},
	}

	defaults := config.Default()
	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/stego/config.toml)")
	flags.String(config.FlagLogLevel, defaults.LogLevel, "log level: debug, info, warn, error")
	flags.Bool(config.FlagOverwrite, defaults.Overwrite, "replace existing output files")

	root.AddCommand(newEmbedCmd(a))
	root.AddCommand(newExtractCmd(a))
	root.AddCommand(newInspectCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root
}

// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bpowers/stego"
	"github.com/bpowers/stego/internal/config"
)

func newEmbedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "embed <host> <payload> <output>",
		Aliases: []string{"encode"},
		Short:   "Append payload to a copy of host",
		Long: `Append payload to a copy of host, writing the result to output.

If output has no extension, the host's extension is appended.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			hostPath, payloadPath, outputPath := args[0], args[1], args[2]
			r, err := stego.Embed(payloadPath, hostPath, outputPath, a.options()...)
			if err != nil {
				return err
			}
			renderEmbed(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func newExtractCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "extract <container> [output]",
		Aliases: []string{"decode"},
		Short:   "Recover the payload appended to container",
		Long: `Recover the payload appended to container.

If output has no extension, the original payload's extension is appended.
Without output the payload is written to extracted_<original name> in the
output directory.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var outputPath string
			if len(args) > 1 {
				outputPath = args[1]
			}
			r, err := stego.Extract(args[0], outputPath, a.options()...)
			if err != nil {
				return err
			}
			renderExtract(cmd.OutOrStdout(), r)
			return nil
		},
	}
	cmd.Flags().String(config.FlagOutputDir, config.Default().OutputDir, "directory for extracted files when no output is given")
	return cmd
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <container>",
		Short: "Show what is appended to container without extracting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := stego.Inspect(args[0], a.options()...)
			if err != nil {
				return err
			}
			renderInspect(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if a.configPath != "" {
				fmt.Fprintf(w, "# %s\n", a.configPath)
			}
			_, err = w.Write(b)
			return err
		},
	})
	return configCmd
}

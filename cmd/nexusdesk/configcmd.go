package main

import (
	"fmt"
	"io"

	"github.com/justinpbarnett/nexusdesk/internal/config"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var color bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return printConfig(cmd.OutOrStdout(), cfg, color)
		},
	}
	cmd.Flags().BoolVar(&color, "color", false, "colorize the output")
	return cmd
}

func printConfig(w io.Writer, cfg *config.Config, color bool) error {
	source := cfg.Source
	if source == "" {
		source = "built-in defaults"
	}
	if _, err := fmt.Fprintf(w, "# source: %s\n", source); err != nil {
		return err
	}

	pp.ColoringEnabled = color
	_, err := pp.Fprintln(w, cfg)
	return err
}

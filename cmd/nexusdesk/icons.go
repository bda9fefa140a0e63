package main

import (
	"fmt"
	"io"

	"github.com/justinpbarnett/nexusdesk/internal/config"
	"github.com/justinpbarnett/nexusdesk/internal/geom"
	"github.com/justinpbarnett/nexusdesk/internal/icons"
	"github.com/justinpbarnett/nexusdesk/internal/input"
	"github.com/spf13/cobra"
)

func newIconsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Manage desktop icons",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget stored icon positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			store, err := openIconStore(cfg)
			if err != nil {
				return err
			}
			return resetIcons(cmd.OutOrStdout(), cfg, store)
		},
	})
	return cmd
}

func resetIcons(w io.Writer, cfg *config.Config, store icons.Store) error {
	desktop := make([]icons.Icon, 0, len(cfg.Launchers))
	for _, l := range cfg.Launchers {
		desktop = append(desktop, icons.Icon{ID: l.ID, Label: l.Title, Glyph: l.Icon})
	}
	size := geom.Size{Width: cfg.Icons.Width, Height: cfg.Icons.Height}
	placement := icons.NewPlacement(desktop, size, input.NewDispatcher(), icons.WithStore(store))
	if err := placement.Reset(); err != nil {
		return fmt.Errorf("reset icons: %w", err)
	}
	fmt.Fprintf(w, "Reset %d icon positions.\n", len(desktop))
	return nil
}

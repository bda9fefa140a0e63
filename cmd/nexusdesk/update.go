package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/justinpbarnett/nexusdesk/internal/ui/panels"
	"github.com/justinpbarnett/nexusdesk/internal/update"
	"github.com/spf13/cobra"
)

type applyFunc func(ctx context.Context, current, repo string) (*update.Release, error)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Replace this binary with the latest release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd.Context(), cmd.OutOrStdout(), panels.Version, update.Apply)
		},
	}
}

func runUpdate(ctx context.Context, w io.Writer, version string, apply applyFunc) error {
	fmt.Fprintf(w, "Current version: %s\n", version)

	rel, err := apply(ctx, version, update.Repo)
	if err != nil {
		return err
	}
	if rel.Version == strings.TrimPrefix(version, "v") {
		fmt.Fprintf(w, "Already up to date (v%s).\n", rel.Version)
		return nil
	}
	fmt.Fprintf(w, "Updated to v%s. Restart nexusdesk to use the new version.\n", rel.Version)
	return nil
}

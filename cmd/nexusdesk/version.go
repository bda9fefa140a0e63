package main

import (
	"context"
	"fmt"
	"io"

	"github.com/justinpbarnett/nexusdesk/internal/ui/panels"
	"github.com/justinpbarnett/nexusdesk/internal/update"
	"github.com/spf13/cobra"
)

type checkFunc func(ctx context.Context, current, repo string) (*update.Release, error)

func newVersionCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information and check for updates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fn checkFunc
			if check {
				fn = update.CheckForUpdate
			}
			return runVersion(cmd.Context(), cmd.OutOrStdout(), panels.Version, fn)
		},
	}
	cmd.Flags().BoolVar(&check, "check", true, "check GitHub releases for a newer version")
	return cmd
}

func runVersion(ctx context.Context, w io.Writer, version string, check checkFunc) error {
	fmt.Fprintf(w, "nexusdesk version %s\n", version)

	if check == nil {
		return nil
	}
	if update.IsDevBuild(version) {
		fmt.Fprintln(w, "Development build, update check skipped.")
		return nil
	}

	rel, err := check(ctx, version, update.Repo)
	if err != nil {
		fmt.Fprintf(w, "Update check failed: %v\n", err)
		return nil
	}
	if rel != nil {
		fmt.Fprintln(w, update.Notice(rel))
	} else {
		fmt.Fprintln(w, "You are up to date.")
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/justinpbarnett/nexusdesk/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(submain(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func submain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

type rootOptions struct {
	configDir string
	debug     bool
}

// load resolves the configuration from --config-dir, or the working
// directory when the flag is unset.
func (o *rootOptions) load() (*config.Config, error) {
	if o.configDir == "" {
		return config.Load()
	}
	return config.LoadFrom(o.configDir)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "nexusdesk",
		Short:         "A mouse-driven windowing desktop for the terminal",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesktop(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configDir, "config-dir", "", "directory searched for nexusdesk.yaml, nexusdesk.toml and .env (default: working directory)")
	flags.BoolVar(&opts.debug, "debug", false, "write debug records to the log file")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newUpdateCmd())
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newIconsCmd(opts))

	return root
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/nexusdesk/internal/config"
	"github.com/justinpbarnett/nexusdesk/internal/icons"
	"github.com/justinpbarnett/nexusdesk/internal/logging"
	"github.com/justinpbarnett/nexusdesk/internal/ui"
	"github.com/justinpbarnett/nexusdesk/internal/ui/panels"
	"github.com/justinpbarnett/nexusdesk/internal/update"
)

func runDesktop(ctx context.Context, opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	logs, err := setupLogging(cfg, opts.debug)
	if err != nil {
		return err
	}
	defer logs.Close()

	store, err := openIconStore(cfg)
	if err != nil {
		slog.Warn("icon positions will not persist", "error", err)
		store = icons.NewMemoryStore()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app := ui.NewApp(cfg, ui.WithIconStore(store))
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	go notifyUpdate(ctx, p)

	slog.Info("desktop started", "version", panels.Version, "config", cfg.Source)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run desktop: %w", err)
	}
	return nil
}

// setupLogging points the default logger at the log file; the terminal
// belongs to the desktop while it runs.
func setupLogging(cfg *config.Config, debug bool) (io.Closer, error) {
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if debug {
		level = slog.LevelDebug
	}
	path, err := cfg.LogFile()
	if err != nil {
		return nil, err
	}
	return logging.Init(path, level)
}

// openIconStore returns the on-disk store under the state dir, or an
// in-memory one when icon persistence is off.
func openIconStore(cfg *config.Config) (icons.Store, error) {
	if cfg.Icons.Persist != nil && !*cfg.Icons.Persist {
		return icons.NewMemoryStore(), nil
	}
	dir, err := cfg.StateDir()
	if err != nil {
		return nil, err
	}
	return icons.NewFileStore(dir)
}

func notifyUpdate(ctx context.Context, p *tea.Program) {
	rel, err := update.CheckForUpdate(ctx, panels.Version, update.Repo)
	if err != nil {
		slog.Debug("update check failed", "error", err)
		return
	}
	if rel != nil {
		p.Send(ui.NoticeMsg{Text: update.Notice(rel)})
	}
}

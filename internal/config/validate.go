package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/justinpbarnett/nexusdesk/internal/wm"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate checks the config for internal consistency and returns a
// ValidationError if any checks fail. All checks run; errors are collected,
// not short-circuited.
func validate(cfg *Config) error {
	var errs []string

	if cfg.Desktop.CellWidth <= 0 {
		errs = append(errs, "desktop.cell_width must be positive")
	}
	if cfg.Desktop.CellHeight <= 0 {
		errs = append(errs, "desktop.cell_height must be positive")
	}
	if cfg.Desktop.MinWindowWidth < wm.MinWidth {
		errs = append(errs, fmt.Sprintf("desktop.min_window_width must be at least %d", wm.MinWidth))
	}
	if cfg.Desktop.MinWindowHeight < wm.MinHeight {
		errs = append(errs, fmt.Sprintf("desktop.min_window_height must be at least %d", wm.MinHeight))
	}
	if cfg.Icons.Width <= 0 || cfg.Icons.Height <= 0 {
		errs = append(errs, "icons.width and icons.height must be positive")
	}
	if cfg.Icons.DoubleClickMS <= 0 {
		errs = append(errs, "icons.double_click_ms must be positive")
	}

	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level %q must be \"debug\", \"info\", \"warn\", or \"error\"", cfg.Log.Level))
	}

	seen := make(map[string]bool, len(cfg.Launchers))
	for i, l := range cfg.Launchers {
		if l.ID == "" {
			errs = append(errs, fmt.Sprintf("launchers[%d].id must be set", i))
		} else if seen[l.ID] {
			errs = append(errs, fmt.Sprintf("launchers[%d].id %q is not unique", i, l.ID))
		}
		seen[l.ID] = true
		if l.Title == "" {
			errs = append(errs, fmt.Sprintf("launchers[%d].title must be set", i))
		}
		if l.Width < 0 || l.Height < 0 {
			errs = append(errs, fmt.Sprintf("launchers[%d] size must not be negative", i))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// ParseLevel maps a log.level value onto a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Package logging sets up the process-wide slog logger. The desktop owns the
// terminal, so records go to a file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/phsym/console-slog"
)

// NewHandler returns the console handler used for every record. Colors are
// off since the output is usually a file.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return console.NewHandler(w, &console.HandlerOptions{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    true,
	})
}

// Init opens (appending) the log file at path and installs it as the default
// slog logger. The returned file must be closed on exit.
func Init(path string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(NewHandler(f, level)))
	return f, nil
}

// Discard installs a logger that drops everything.
func Discard() {
	slog.SetDefault(slog.New(NewHandler(io.Discard, slog.LevelError)))
}

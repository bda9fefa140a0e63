package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/justinpbarnett/nexusdesk/internal/config"
	"github.com/justinpbarnett/nexusdesk/internal/icons"
	"github.com/justinpbarnett/nexusdesk/internal/update"
)

// isolate points HOME at an empty directory so the user's own config is
// never discovered.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "nexusdesk.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := submain(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	want := map[string]bool{"version": false, "update": false, "config": false, "icons": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected root command to include %s", name)
		}
	}
	for _, flag := range []string{"config-dir", "debug"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent flag --%s", flag)
		}
	}
}

func TestRunVersion(t *testing.T) {
	newer := func(context.Context, string, string) (*update.Release, error) {
		return &update.Release{Version: "1.1.0"}, nil
	}
	current := func(context.Context, string, string) (*update.Release, error) {
		return nil, nil
	}
	failing := func(context.Context, string, string) (*update.Release, error) {
		return nil, errors.New("offline")
	}

	tests := []struct {
		name    string
		version string
		check   checkFunc
		want    string
	}{
		{"dev build", "dev", newer, "Development build"},
		{"no check", "v1.0.0", nil, "nexusdesk version v1.0.0\n"},
		{"update available", "v1.0.0", newer, `Update available: v1.1.0. Run "nexusdesk update" to install.`},
		{"up to date", "v1.1.0", current, "You are up to date."},
		{"check failed", "v1.0.0", failing, "Update check failed: offline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := runVersion(context.Background(), &out, tt.version, tt.check); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output %q does not contain %q", out.String(), tt.want)
			}
		})
	}
}

func TestRunUpdate(t *testing.T) {
	to := func(v string) applyFunc {
		return func(context.Context, string, string) (*update.Release, error) {
			return &update.Release{Version: v}, nil
		}
	}

	var out bytes.Buffer
	if err := runUpdate(context.Background(), &out, "v1.0.0", to("1.0.0")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Already up to date (v1.0.0)") {
		t.Errorf("unexpected output %q", out.String())
	}

	out.Reset()
	if err := runUpdate(context.Background(), &out, "v1.0.0", to("1.2.0")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Updated to v1.2.0") {
		t.Errorf("unexpected output %q", out.String())
	}

	fail := func(context.Context, string, string) (*update.Release, error) {
		return nil, update.ErrDevBuild
	}
	if err := runUpdate(context.Background(), &out, "dev", fail); !errors.Is(err, update.ErrDevBuild) {
		t.Errorf("expected ErrDevBuild, got %v", err)
	}
}

func TestConfigCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeConfig(t, dir, "desktop:\n  cell_width: 12\n")

	code, stdout, stderr := run(t, "config", "--config-dir", dir)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "# source: "+filepath.Join(dir, "nexusdesk.yaml")) {
		t.Errorf("expected source line, got %q", stdout)
	}
	if !strings.Contains(stdout, "CellWidth") || !strings.Contains(stdout, "12") {
		t.Errorf("expected pretty-printed config, got %q", stdout)
	}
}

func TestConfigCommandDefaults(t *testing.T) {
	isolate(t)
	code, stdout, _ := run(t, "config", "--config-dir", t.TempDir())
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "# source: built-in defaults") {
		t.Errorf("expected defaults source, got %q", stdout)
	}
}

func TestConfigErrorsExitNonZero(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeConfig(t, dir, "desktop: [not, a, map\n")

	code, _, stderr := run(t, "config", "--config-dir", dir)
	if code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.HasPrefix(stderr, "error: ") {
		t.Errorf("expected error on stderr, got %q", stderr)
	}
}

func TestUnknownCommand(t *testing.T) {
	if code, _, _ := run(t, "bogus"); code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
}

func TestIconsReset(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	state := filepath.Join(dir, "state")
	writeConfig(t, dir, "desktop:\n  state_dir: "+state+"\n")

	store, err := icons.NewFileStore(state)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(icons.Key("about"), []byte(`{"x":400,"y":200}`)); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := run(t, "icons", "reset", "--config-dir", dir)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Reset 4 icon positions.") {
		t.Errorf("unexpected output %q", stdout)
	}

	reopened, err := icons.NewFileStore(state)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := reopened.Get(icons.Key("about")); ok {
		t.Error("expected stored position removed")
	}
}

func TestOpenIconStore(t *testing.T) {
	isolate(t)
	cfg := config.DefaultConfig()
	cfg.Desktop.StateDir = t.TempDir()

	store, err := openIconStore(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.(*icons.FileStore); !ok {
		t.Errorf("expected file store, got %T", store)
	}

	off := false
	cfg.Icons.Persist = &off
	store, err = openIconStore(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.(*icons.MemoryStore); !ok {
		t.Errorf("expected memory store when persistence is off, got %T", store)
	}
}

func TestSetupLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := config.DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "desk.log")

	closer, err := setupLogging(&cfg, true)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	if _, err := os.Stat(cfg.Log.File); err != nil {
		t.Errorf("expected log file created: %v", err)
	}

	cfg.Log.Level = "loud"
	if _, err := setupLogging(&cfg, false); err == nil {
		t.Error("expected invalid level error")
	}
}

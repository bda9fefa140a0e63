package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "NEXUSDESK_"

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using dir for file discovery. A .env file in dir is
// read first; variables already set in the environment win over it.
func LoadFrom(dir string) (*Config, error) {
	cfg := DefaultConfig()

	if err := loadDotEnv(dir); err != nil {
		return nil, err
	}

	path, err := discoverConfigPath(dir)
	if err != nil {
		return nil, fmt.Errorf("config discovery: %w", err)
	}

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
		cfg.Source = path
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

func loadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// discoverConfigPath searches the discovery chain and returns the first config
// file that exists. Returns empty string if none found (defaults-only mode).
func discoverConfigPath(dir string) (string, error) {
	for _, name := range []string{"nexusdesk.yaml", "nexusdesk.toml"} {
		local := filepath.Join(dir, name)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil // can't resolve home, skip
	}
	user := filepath.Join(home, ".config", "nexusdesk", "config.yaml")
	if _, err := os.Stat(user); err == nil {
		return user, nil
	}

	return "", nil
}

// loadFromFile reads a YAML or TOML config file, picked by extension.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if filepath.Ext(path) == ".toml" {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
		return &cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

// merge deep-merges override onto base. Scalar fields override when non-zero.
// Slices replace entirely when non-nil. Pointer-to-bool fields override when
// non-nil.
func merge(base *Config, override *Config) {
	// Desktop
	if override.Desktop.CellWidth != 0 {
		base.Desktop.CellWidth = override.Desktop.CellWidth
	}
	if override.Desktop.CellHeight != 0 {
		base.Desktop.CellHeight = override.Desktop.CellHeight
	}
	if override.Desktop.MinWindowWidth != 0 {
		base.Desktop.MinWindowWidth = override.Desktop.MinWindowWidth
	}
	if override.Desktop.MinWindowHeight != 0 {
		base.Desktop.MinWindowHeight = override.Desktop.MinWindowHeight
	}
	if override.Desktop.StateDir != "" {
		base.Desktop.StateDir = override.Desktop.StateDir
	}

	// Icons
	if override.Icons.Width != 0 {
		base.Icons.Width = override.Icons.Width
	}
	if override.Icons.Height != 0 {
		base.Icons.Height = override.Icons.Height
	}
	if override.Icons.DoubleClickMS != 0 {
		base.Icons.DoubleClickMS = override.Icons.DoubleClickMS
	}
	if override.Icons.Persist != nil {
		base.Icons.Persist = override.Icons.Persist
	}

	if override.Launchers != nil {
		base.Launchers = override.Launchers
	}

	// UI
	if override.UI.ShowClock != nil {
		base.UI.ShowClock = override.UI.ShowClock
	}
	if override.UI.ShowHelpHint != nil {
		base.UI.ShowHelpHint = override.UI.ShowHelpHint
	}

	// Log
	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		base.Log.File = override.Log.File
	}
}

// applyEnvOverrides applies NEXUSDESK_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envPrefix + "STATE_DIR"); v != "" {
		cfg.Desktop.StateDir = v
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(envPrefix + "LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	envInt(envPrefix+"CELL_WIDTH", &cfg.Desktop.CellWidth)
	envInt(envPrefix+"CELL_HEIGHT", &cfg.Desktop.CellHeight)
	envInt(envPrefix+"DOUBLE_CLICK_MS", &cfg.Icons.DoubleClickMS)
	if v := os.Getenv(envPrefix + "PERSIST_ICONS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Icons.Persist = boolPtr(b)
		} else {
			fmt.Fprintf(os.Stderr, "warning: %sPERSIST_ICONS=%q is not a valid boolean, ignoring\n", envPrefix, v)
		}
	}
}

func envInt(name string, dst *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s=%q is not a valid integer, ignoring\n", name, v)
		return
	}
	*dst = n
}

// StateDir returns the directory icon positions and the log file live in.
// Defaults to ~/.nexusdesk; a leading ~/ is expanded.
func (c *Config) StateDir() (string, error) {
	dir := c.Desktop.StateDir
	if dir != "" && !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	if dir == "" {
		return filepath.Join(home, ".nexusdesk"), nil
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~/")), nil
}

// LogFile returns the path log records are written to.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := c.StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "nexusdesk.log"), nil
}

package config

type Config struct {
	Desktop   DesktopConfig    `yaml:"desktop" toml:"desktop"`
	Icons     IconsConfig      `yaml:"icons" toml:"icons"`
	Launchers []LauncherConfig `yaml:"launchers" toml:"launchers"`
	UI        UIConfig         `yaml:"ui" toml:"ui"`
	Log       LogConfig        `yaml:"log" toml:"log"`

	// Source is the file the config was read from, empty for defaults only.
	Source string `yaml:"-" toml:"-"`
}

// DesktopConfig sizes the desktop. Window geometry is in desktop units; a
// terminal cell covers CellWidth x CellHeight of them.
type DesktopConfig struct {
	CellWidth       int    `yaml:"cell_width" toml:"cell_width"`
	CellHeight      int    `yaml:"cell_height" toml:"cell_height"`
	MinWindowWidth  int    `yaml:"min_window_width" toml:"min_window_width"`
	MinWindowHeight int    `yaml:"min_window_height" toml:"min_window_height"`
	StateDir        string `yaml:"state_dir" toml:"state_dir"`
}

type IconsConfig struct {
	Width         int   `yaml:"width" toml:"width"`
	Height        int   `yaml:"height" toml:"height"`
	DoubleClickMS int   `yaml:"double_click_ms" toml:"double_click_ms"`
	Persist       *bool `yaml:"persist" toml:"persist"`
}

// LauncherConfig is one desktop shortcut and the window it opens.
type LauncherConfig struct {
	ID     string `yaml:"id" toml:"id"`
	Title  string `yaml:"title" toml:"title"`
	Icon   string `yaml:"icon" toml:"icon"`
	X      int    `yaml:"x" toml:"x"`
	Y      int    `yaml:"y" toml:"y"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Body   string `yaml:"body" toml:"body"`
}

type UIConfig struct {
	ShowClock    *bool `yaml:"show_clock" toml:"show_clock"`
	ShowHelpHint *bool `yaml:"show_help_hint" toml:"show_help_hint"`
}

type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"`
}

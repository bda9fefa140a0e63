package config

func boolPtr(b bool) *bool { return &b }

func DefaultConfig() Config {
	return Config{
		Desktop: DesktopConfig{
			CellWidth:       10,
			CellHeight:      20,
			MinWindowWidth:  300,
			MinWindowHeight: 200,
		},
		Icons: IconsConfig{
			Width:         100,
			Height:        80,
			DoubleClickMS: 500,
			Persist:       boolPtr(true),
		},
		Launchers: DefaultLaunchers(),
		UI: UIConfig{
			ShowClock:    boolPtr(true),
			ShowHelpHint: boolPtr(true),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func DefaultLaunchers() []LauncherConfig {
	return []LauncherConfig{
		{
			ID: "challenges", Title: "CTF Challenges", Icon: "⚑",
			X: 100, Y: 80, Width: 800, Height: 600,
			Body: "Capture the flag.\n\n" +
				"Web       Cookie Jar          100 pts\n" +
				"Web       Admin Panel         250 pts\n" +
				"Crypto    Caesar's Salad      100 pts\n" +
				"Crypto    Broken RSA          400 pts\n" +
				"Forensics Hidden in Plain PNG 200 pts\n" +
				"Pwn       Stack Smasher       500 pts\n\n" +
				"Flags look like flag{...}.",
		},
		{
			ID: "profile", Title: "My Profile", Icon: "☺",
			X: 150, Y: 100, Width: 600, Height: 500,
			Body: "Player profile\n\n" +
				"Handle:  guest\n" +
				"Score:   0\n" +
				"Solved:  0 challenges\n" +
				"Rank:    unranked",
		},
		{
			ID: "leaderboard", Title: "Leaderboard", Icon: "★",
			X: 200, Y: 120, Width: 700, Height: 600,
			Body: "Top teams\n\n" +
				" 1. null_pointers   2450\n" +
				" 2. segfault_sq     2100\n" +
				" 3. rop_chainz      1875\n" +
				" 4. bit_flippers    1320\n" +
				" 5. guest              0",
		},
		{
			ID: "about", Title: "About", Icon: "ℹ",
			X: 250, Y: 150, Width: 500, Height: 400,
			Body: "nexusdesk\n\n" +
				"A desktop for the terminal. Drag windows by their title bar,\n" +
				"resize them from the bottom-right corner and switch between\n" +
				"them from the taskbar.\n\n" +
				"Press ? for keys.",
		},
	}
}

package panels

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg struct{}

// ClearFlashMsg signals the taskbar flash should be cleared.
type ClearFlashMsg struct{}

// LaunchMsg asks the desktop to open the launcher with the given id.
type LaunchMsg struct {
	LauncherID string
}

// QuitMsg is sent by the start menu's quit entry.
type QuitMsg struct{}

package ui

import (
	"time"

	"github.com/justinpbarnett/nexusdesk/internal/ui/panels"
)

// Type aliases to panels message types — single source of truth.

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg = panels.CloseModalMsg

// ClearFlashMsg signals the taskbar flash should be cleared.
type ClearFlashMsg = panels.ClearFlashMsg

// LaunchMsg asks the desktop to open a launcher.
type LaunchMsg = panels.LaunchMsg

// ClockTickMsg refreshes the taskbar clock.
type ClockTickMsg time.Time

// NoticeMsg shows an informational message in the taskbar, e.g. an
// available update found by a background check.
type NoticeMsg struct {
	Text string
}

// Package clipboard copies window text out of the desktop.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Clipboard writes to the native clipboard (wl-copy, xclip, pbcopy, etc.)
// and falls back to an OSC 52 escape for SSH and tmux sessions.
type Clipboard struct {
	native func(string) error
	osc    io.Writer
}

func New() *Clipboard {
	return &Clipboard{native: clipboard.WriteAll, osc: os.Stderr}
}

// Write copies text, trying the native clipboard first.
func (c *Clipboard) Write(text string) error {
	if c.native != nil {
		if err := c.native(text); err == nil {
			return nil
		}
	}
	if c.osc == nil {
		return fmt.Errorf("no clipboard available")
	}
	if _, err := io.WriteString(c.osc, OSC52(text)); err != nil {
		return fmt.Errorf("write osc52: %w", err)
	}
	return nil
}

// Write copies text using the default clipboard.
func Write(text string) error {
	return New().Write(text)
}

// OSC52 returns the escape sequence that sets the terminal clipboard.
func OSC52(text string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x07"
}

package border

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/justinpbarnett/nexusdesk/internal/ui/styles"
)

const keybindGap = "  "

// Keybind is one hint in a bottom border: [⏎] open, [Esc] close.
type Keybind struct {
	Key   string
	Label string
}

// RenderKeybind draws [key] in the key color followed by the label.
func RenderKeybind(kb Keybind) string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(styles.KeybindLabel)
	return keyStyle.Render("["+kb.Key+"]") + labelStyle.Render(kb.Label)
}

// KeybindWidth returns the cell width of a rendered keybind.
func KeybindWidth(kb Keybind) int {
	return 2 + ansi.StringWidth(kb.Key) + ansi.StringWidth(kb.Label)
}

// fitKeybinds renders the leading keybinds that fit in max cells, separated
// by two spaces, and reports the width used.
func fitKeybinds(kbs []Keybind, max int) (string, int) {
	var out string
	used := 0
	for i, kb := range kbs {
		w := KeybindWidth(kb)
		if i > 0 {
			w += len(keybindGap)
		}
		if used+w > max {
			break
		}
		if i > 0 {
			out += keybindGap
		}
		out += RenderKeybind(kb)
		used += w
	}
	return out, used
}

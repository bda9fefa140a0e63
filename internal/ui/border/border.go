package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/nexusdesk/internal/ui/styles"
)

// Border characters
const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	horizBar = "─"
	vertBar  = "│"

	// Grip is drawn in the bottom-right corner of a resizable window.
	Grip = "◢"
)

func borderStyle(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(styles.BorderFocused)
	}
	return lipgloss.NewStyle().Foreground(styles.BorderUnfocused)
}

func titleStyle(focused bool) lipgloss.Style {
	if focused {
		return styles.TitleStyle
	}
	return styles.TextSecondaryStyle.Bold(true)
}

// RenderBorderTop renders: ╭─ Title ───────────<right>╮
// right is placed flush against the top-right corner; the title is truncated
// so both always fit.
func RenderBorderTop(title, right string, width int, focused bool) string {
	if width < 2 {
		return ""
	}
	bs := borderStyle(focused)
	inner := width - 2
	rightW := lipgloss.Width(right)
	if rightW > inner {
		right, rightW = "", 0
	}

	// "─ " + title + " " around a non-empty title.
	avail := inner - rightW - 3
	var head string
	headW := 0
	if title != "" && avail > 0 {
		t := titleStyle(focused).Render(truncate(title, avail))
		head = bs.Render(horizBar+" ") + t + bs.Render(" ")
		headW = 3 + lipgloss.Width(t)
	}

	fill := inner - headW - rightW
	return bs.Render(cornerTL) + head +
		bs.Render(strings.Repeat(horizBar, fill)) +
		right + bs.Render(cornerTR)
}

// RenderBorderBottom renders the bottom border.
// If focused and keybinds provided: ╰─ [e]dit  [k]ill ──╯
// With grip set the corner becomes the resize handle.
func RenderBorderBottom(keybinds []Keybind, width int, focused, grip bool) string {
	if width < 2 {
		return ""
	}
	bs := borderStyle(focused)
	inner := width - 2

	corner := bs.Render(cornerBR)
	if grip {
		corner = lipgloss.NewStyle().Foreground(styles.KeybindKey).Render(Grip)
	}

	if !focused || len(keybinds) == 0 {
		return bs.Render(cornerBL+strings.Repeat(horizBar, inner)) + corner
	}

	// Keybinds that overflow the panel are dropped.
	maxKb := inner - 3
	hints, used := fitKeybinds(keybinds, maxKb)
	if used == 0 {
		return bs.Render(cornerBL+strings.Repeat(horizBar, inner)) + corner
	}

	return bs.Render(cornerBL+horizBar+" ") + hints +
		bs.Render(" "+strings.Repeat(horizBar, maxKb-used)) + corner
}

// RenderBorderSides wraps content lines with │ on each side. Each line is
// truncated or padded to width-2 cells.
func RenderBorderSides(content string, width int, focused bool) string {
	if width < 2 {
		return content
	}
	side := borderStyle(focused).Render(vertBar)
	inner := width - 2
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = side + fit(line, inner) + side
	}
	return strings.Join(lines, "\n")
}

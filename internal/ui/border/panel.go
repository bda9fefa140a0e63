package border

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// RenderPanel assembles a complete bordered panel:
//
//	top border (with title)
//	content lines (with side borders)
//	bottom border (with keybinds if focused)
//
// Content is padded/cropped to exactly fill height-2 rows x width-2 cols.
func RenderPanel(title string, content string, keybinds []Keybind,
	width, height int, focused bool) string {

	if height < 2 || width < 2 {
		return ""
	}
	return frame(
		RenderBorderTop(title, "", width, focused),
		content, width, height, focused,
		RenderBorderBottom(keybinds, width, focused, false),
	)
}

func frame(top, content string, width, height int, focused bool, bottom string) string {
	if height == 2 {
		return top + "\n" + bottom
	}
	return top + "\n" + RenderBorderSides(body(content, height-2), width, focused) + "\n" + bottom
}

// body crops or pads content to exactly rows lines.
func body(content string, rows int) string {
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

func fit(s string, width int) string {
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

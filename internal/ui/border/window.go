package border

import (
	"github.com/justinpbarnett/nexusdesk/internal/ui/styles"
)

// Control glyphs in the title bar, left to right.
const (
	MinimizeGlyph = "[_]"
	MaximizeGlyph = "[□]"
	RestoreGlyph  = "[❐]"
	CloseGlyph    = "[×]"
)

// RenderControls renders the minimize, maximize/restore and close buttons.
func RenderControls(maximized bool) string {
	mid := MaximizeGlyph
	if maximized {
		mid = RestoreGlyph
	}
	return styles.ControlStyle.Render(MinimizeGlyph) +
		styles.ControlStyle.Render(mid) +
		styles.CloseControlStyle.Render(CloseGlyph)
}

// RenderWindow draws window chrome around content. Maximized windows have no
// resize grip.
//
//	╭─ ⚑ Title ────────[_][□][×]╮
//	│content                    │
//	╰───────────────────────────◢
func RenderWindow(title, content string, width, height int, focused, maximized bool) string {
	if height < 2 || width < 2 {
		return ""
	}
	return frame(
		RenderBorderTop(title, RenderControls(maximized), width, focused),
		content, width, height, focused,
		RenderBorderBottom(nil, width, focused, !maximized),
	)
}

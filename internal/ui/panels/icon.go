package panels

import (
	"strings"

	"github.com/justinpbarnett/nexusdesk/internal/geom"
	"github.com/justinpbarnett/nexusdesk/internal/icons"
	"github.com/justinpbarnett/nexusdesk/internal/ui/styles"
	"github.com/justinpbarnett/nexusdesk/internal/ui/text"
)

// RenderIcon draws a desktop icon: the glyph on the first row, the label
// wrapped and centered below it, padded to exactly size cells.
func RenderIcon(ic icons.Placed, size geom.Size, selected bool) string {
	if size.Width <= 0 || size.Height <= 0 {
		return ""
	}
	rows := []string{styles.IconGlyphStyle.Render(text.Center(ic.Glyph, size.Width))}

	labelStyle := styles.IconLabelStyle
	if selected {
		labelStyle = styles.IconSelectedStyle
	}
	for _, l := range text.Wrap(ic.Label, size.Width) {
		if len(rows) == size.Height {
			break
		}
		rows = append(rows, labelStyle.Render(text.Center(l, size.Width)))
	}
	for len(rows) < size.Height {
		rows = append(rows, strings.Repeat(" ", size.Width))
	}
	return strings.Join(rows, "\n")
}

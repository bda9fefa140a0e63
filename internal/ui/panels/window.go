package panels

import (
	"github.com/justinpbarnett/nexusdesk/internal/geom"
	"github.com/justinpbarnett/nexusdesk/internal/ui/apps"
	"github.com/justinpbarnett/nexusdesk/internal/ui/border"
	"github.com/justinpbarnett/nexusdesk/internal/wm"
)

// RenderWindow draws a window record into a block of size cells. Content that
// is not apps.Content renders as an empty body.
func RenderWindow(w wm.Window, size geom.Size, focused bool) string {
	title := w.Title
	if w.Icon != "" {
		title = w.Icon + " " + title
	}
	var body string
	if c, ok := w.Content.(apps.Content); ok {
		body = c.View(size.Width-2, size.Height-2)
	}
	return border.RenderWindow(title, body, size.Width, size.Height, focused, w.Maximized)
}

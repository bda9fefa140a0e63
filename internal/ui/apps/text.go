// Package apps holds the content hosted inside desktop windows.
package apps

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/justinpbarnett/nexusdesk/internal/ui/text"
)

// Content is what the desktop draws inside a window body.
type Content interface {
	// View renders the content into exactly width x height cells.
	View(width, height int) string
	// Scroll moves the content by delta lines; negative scrolls up.
	Scroll(delta int)
	// Plain returns the unstyled text, used for copying.
	Plain() string
}

// Text is static, wrapped text in a scrollable viewport.
type Text struct {
	body  string
	vp    viewport.Model
	wrapW int
}

func NewText(body string) *Text {
	return &Text{body: body, vp: viewport.New(0, 0)}
}

func (t *Text) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	t.layout(width, height)
	return t.vp.View()
}

func (t *Text) Scroll(delta int) {
	t.vp.SetYOffset(t.vp.YOffset + delta)
}

// Offset returns the index of the first visible line.
func (t *Text) Offset() int {
	return t.vp.YOffset
}

func (t *Text) Plain() string {
	return t.body
}

// layout resizes the viewport and rewraps the body when the width changed.
// The scroll offset is kept where the new size allows it.
func (t *Text) layout(width, height int) {
	t.vp.Width = width
	t.vp.Height = height
	if width != t.wrapW {
		lines := text.Wrap(t.body, width)
		t.wrapW = width
		t.vp.SetContent(strings.Join(lines, "\n"))
	}
	t.vp.SetYOffset(t.vp.YOffset)
}

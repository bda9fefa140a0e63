package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/nexusdesk/internal/ui/border"
	"github.com/justinpbarnett/nexusdesk/internal/ui/styles"
)

type HelpOverlay struct {
	width  int
	height int
}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		width:  48,
		height: 22,
	}
}

func (h HelpOverlay) Update(msg tea.Msg) (HelpOverlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg { return CloseModalMsg{} }
		}
	}
	return h, nil
}

func (h HelpOverlay) View() string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	descStyle := styles.TextPrimaryStyle
	sectionStyle := styles.TitleStyle

	kv := func(key, desc string) string {
		return "  " + keyStyle.Render(key) + "  " + descStyle.Render(desc)
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Mouse") + "\n")
	b.WriteString(kv("drag title", "Move window") + "\n")
	b.WriteString(kv("drag ◢   ", "Resize window") + "\n")
	b.WriteString(kv("[_][□][×]", "Minimize, maximize, close") + "\n")
	b.WriteString(kv("2× icon  ", "Open app") + "\n")
	b.WriteString(kv("wheel    ", "Scroll window") + "\n")
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Windows") + "\n")
	b.WriteString(kv("Tab", "Focus next window") + "\n")
	b.WriteString(kv("m  ", "Minimize") + "\n")
	b.WriteString(kv("z  ", "Maximize / restore") + "\n")
	b.WriteString(kv("x  ", "Close") + "\n")
	b.WriteString(kv("y  ", "Copy window text") + "\n")
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Global") + "\n")
	b.WriteString(kv("s", "Start menu") + "\n")
	b.WriteString(kv("?", "Toggle this help") + "\n")
	b.WriteString(kv("q", "Quit") + "\n")
	b.WriteString(kv("Esc", "Close modal"))

	bottomKb := []border.Keybind{{Key: "?", Label: " close"}, {Key: "Esc", Label: " close"}}
	return border.RenderPanel("Keybinds", b.String(), bottomKb, h.width, h.height, true)
}

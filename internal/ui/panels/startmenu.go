package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/nexusdesk/internal/ui/border"
	"github.com/justinpbarnett/nexusdesk/internal/ui/styles"
	"github.com/justinpbarnett/nexusdesk/internal/ui/text"
)

// QuitItemID is the id of the menu entry that exits the desktop.
const QuitItemID = "quit"

const startMenuWidth = 28

// MenuItem is one start menu entry.
type MenuItem struct {
	ID    string
	Title string
	Icon  string
}

// StartMenu lists the launchers above the Start button.
type StartMenu struct {
	items  []MenuItem
	cursor int
}

// NewStartMenu builds the menu from the launchers and adds a Quit entry.
func NewStartMenu(items []MenuItem) *StartMenu {
	all := make([]MenuItem, 0, len(items)+1)
	all = append(all, items...)
	all = append(all, MenuItem{ID: QuitItemID, Title: "Quit", Icon: "⏻"})
	return &StartMenu{items: all}
}

// Size returns the menu's footprint in cells.
func (m StartMenu) Size() (width, height int) {
	return startMenuWidth, len(m.items) + 2
}

// Cursor returns the highlighted item index.
func (m StartMenu) Cursor() int {
	return m.cursor
}

// ItemAt returns the item drawn on row (relative to the top of the menu).
func (m StartMenu) ItemAt(row int) (MenuItem, bool) {
	i := row - 1
	if i < 0 || i >= len(m.items) {
		return MenuItem{}, false
	}
	return m.items[i], true
}

// Choose returns the command that activates item.
func Choose(item MenuItem) tea.Cmd {
	if item.ID == QuitItemID {
		return func() tea.Msg { return QuitMsg{} }
	}
	return func() tea.Msg { return LaunchMsg{LauncherID: item.ID} }
}

func (m StartMenu) Update(msg tea.Msg) (StartMenu, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "s":
			return m, func() tea.Msg { return CloseModalMsg{} }
		case "j", "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			return m, Choose(m.items[m.cursor])
		}
	}
	return m, nil
}

func (m StartMenu) View() string {
	w, h := m.Size()
	var b strings.Builder
	for i, it := range m.items {
		line := text.Fit(" "+it.Icon+" "+it.Title, w-2)
		if i == m.cursor {
			line = styles.SelectedRowStyle.Render(styles.TitleStyle.Render(line))
		} else {
			line = styles.TextPrimaryStyle.Render(line)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}
	kbs := []border.Keybind{{Key: "⏎", Label: " open"}, {Key: "Esc", Label: " close"}}
	return border.RenderPanel("Start", b.String(), kbs, w, h, true)
}

package panels

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

const waitDuration = 3 * time.Second

// panelAdapter wraps panel types that use typed Update signatures into
// a proper tea.Model so they can be used with teatest.
type panelAdapter struct {
	view     func() string
	updateFn func(tea.Msg) tea.Cmd
}

func (a panelAdapter) Init() tea.Cmd                           { return nil }
func (a panelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return a, a.updateFn(msg) }
func (a panelAdapter) View() string                            { return a.view() }

func wrapHelpOverlay(h *HelpOverlay) tea.Model {
	return panelAdapter{
		view: func() string { return h.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			newH, cmd := h.Update(msg)
			*h = newH
			return cmd
		},
	}
}

func wrapStartMenu(m *StartMenu) tea.Model {
	return panelAdapter{
		view: func() string { return m.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			newM, cmd := m.Update(msg)
			*m = newM
			return cmd
		},
	}
}

func wrapTaskbar(tb *Taskbar) tea.Model {
	return panelAdapter{
		view:     func() string { return tb.View() },
		updateFn: func(tea.Msg) tea.Cmd { return nil },
	}
}

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	waitForAll(tb, tm, substr)
}

// waitForAll waits until the output contains every substring. WaitFor
// consumes what it reads, so text that shares a frame must be checked in
// one call.
func waitForAll(tb testing.TB, tm *teatest.TestModel, substrs ...string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool {
			for _, s := range substrs {
				if !bytes.Contains(bts, []byte(s)) {
					return false
				}
			}
			return true
		},
		teatest.WithDuration(waitDuration),
	)
}

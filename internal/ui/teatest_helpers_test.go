package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/justinpbarnett/nexusdesk/internal/config"
	"github.com/justinpbarnett/nexusdesk/internal/icons"
)

const waitDuration = 3 * time.Second

// appAdapter wraps the App (value receiver model) into a model that
// suppresses Init() so the clock tick does not keep the program busy.
type appAdapter struct {
	app App
}

func newTestAppAdapter(tb testing.TB) *appAdapter {
	tb.Helper()
	cfg := config.DefaultConfig()
	a := NewApp(&cfg,
		WithIconStore(icons.NewMemoryStore()),
		WithClock(func() time.Time { return fixedNow }),
		WithClipboard(func(string) error { return nil }),
		WithWindowOptions(sequentialIDs()),
	)
	return &appAdapter{app: a}
}

func (a *appAdapter) Init() tea.Cmd {
	return nil
}

func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.app.Update(msg)
	a.app = m.(App)
	return a, cmd
}

func (a *appAdapter) View() string {
	return a.app.View()
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

// startDesktop sizes the program and waits for the first desktop frame. Any
// extra substrings expected in that frame must be passed here, since the wait
// consumes it.
func startDesktop(t *testing.T, firstFrame ...string) (*appAdapter, *teatest.TestModel) {
	t.Helper()
	adapter := newTestAppAdapter(t)
	tm := teatest.NewTestModel(t, adapter, teatest.WithInitialTermSize(120, 40))
	tm.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	waitForAll(t, tm, append([]string{"Start"}, firstFrame...)...)
	return adapter, tm
}

func finalApp(t *testing.T, tm *teatest.TestModel) App {
	t.Helper()
	tm.Send(tea.QuitMsg{})
	fm := tm.FinalModel(t, teatest.WithFinalTimeout(waitDuration))
	return fm.(*appAdapter).app
}

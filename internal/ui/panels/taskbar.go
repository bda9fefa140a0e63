package panels

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/nexusdesk/internal/taskbar"
	"github.com/justinpbarnett/nexusdesk/internal/ui/styles"
	"github.com/justinpbarnett/nexusdesk/internal/ui/text"
)

const (
	flashDurationVal = 5 * time.Second

	startLabel    = " ⊞ Start "
	entryMaxWidth = 22
	entryMinWidth = 8
	flashMaxWidth = 32
)

// FlashDuration returns how long the taskbar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

// FlashLevel controls the icon and color of a taskbar flash message.
type FlashLevel int

const (
	FlashInfo    FlashLevel = iota // blue ●
	FlashSuccess                   // green ✓
	FlashWarning                   // yellow ⚠
	FlashError                     // red ✗
)

// TaskbarHit is what a click on the taskbar row landed on.
type TaskbarHit int

const (
	TaskbarHitNone TaskbarHit = iota
	TaskbarHitStart
	TaskbarHitEntry
)

// Span is the column range [X0, X1) a taskbar button occupies.
type Span struct {
	ID     string
	X0, X1 int
}

type Taskbar struct {
	width      int
	entries    []taskbar.Entry
	startOpen  bool
	showClock  bool
	showHint   bool
	now        func() time.Time
	flash      string
	flashLevel FlashLevel
	flashUntil time.Time
}

func NewTaskbar() Taskbar {
	return Taskbar{showClock: true, showHint: true, now: time.Now}
}

func (t *Taskbar) SetSize(w int)                      { t.width = w }
func (t *Taskbar) SetEntries(entries []taskbar.Entry) { t.entries = entries }
func (t *Taskbar) SetStartOpen(open bool)             { t.startOpen = open }
func (t *Taskbar) SetShowClock(show bool)             { t.showClock = show }
func (t *Taskbar) SetShowHint(show bool)              { t.showHint = show }
func (t *Taskbar) SetClock(now func() time.Time)      { t.now = now }

func (t *Taskbar) SetFlash(msg string) {
	t.SetFlashWithLevel(msg, FlashInfo)
}

func (t *Taskbar) SetFlashWithLevel(msg string, level FlashLevel) {
	t.flash = msg
	t.flashLevel = level
	t.flashUntil = t.now().Add(flashDurationVal)
}

func (t *Taskbar) ClearFlash() {
	t.flash = ""
	t.flashLevel = FlashInfo
	t.flashUntil = time.Time{}
}

// Flash returns the message currently shown, if any.
func (t Taskbar) Flash() string {
	if t.flash == "" || !t.now().Before(t.flashUntil) {
		return ""
	}
	return t.flash
}

// StartSpan returns the columns of the Start button.
func (t Taskbar) StartSpan() Span {
	return Span{ID: "start", X0: 0, X1: lipgloss.Width(startLabel)}
}

// Spans returns the column range of every entry button that fits, in entry
// order. Entries that do not fit are left off the bar.
func (t Taskbar) Spans() []Span {
	if len(t.entries) == 0 {
		return nil
	}
	x := t.StartSpan().X1 + 1
	avail := t.width - x - t.rightWidth()
	if avail <= 0 {
		return nil
	}

	per := entryMaxWidth
	if n := len(t.entries); n*(per+1) > avail {
		per = avail/n - 1
		if per < entryMinWidth {
			per = entryMinWidth
		}
	}

	var spans []Span
	for _, e := range t.entries {
		if x+per > t.width-t.rightWidth() {
			break
		}
		spans = append(spans, Span{ID: e.ID, X0: x, X1: x + per})
		x += per + 1
	}
	return spans
}

// Hit resolves a click at column x.
func (t Taskbar) Hit(x int) (TaskbarHit, taskbar.Entry) {
	if s := t.StartSpan(); x >= s.X0 && x < s.X1 {
		return TaskbarHitStart, taskbar.Entry{}
	}
	spans := t.Spans()
	for i, s := range spans {
		if x >= s.X0 && x < s.X1 {
			return TaskbarHitEntry, t.entries[i]
		}
	}
	return TaskbarHitNone, taskbar.Entry{}
}

func (t Taskbar) View() string {
	if t.width <= 0 {
		return ""
	}
	bar := styles.TaskbarStyle

	start := styles.StartButtonStyle
	if t.startOpen {
		start = start.Reverse(true)
	}
	var b strings.Builder
	b.WriteString(start.Render(startLabel))
	col := t.StartSpan().X1

	for i, s := range t.Spans() {
		b.WriteString(bar.Render(strings.Repeat(" ", s.X0-col)))
		b.WriteString(entryStyle(t.entries[i]).Render(entryLabel(t.entries[i], s.X1-s.X0)))
		col = s.X1
	}

	right := t.renderRight()
	gap := t.width - col - lipgloss.Width(right)
	if gap > 0 {
		b.WriteString(bar.Render(strings.Repeat(" ", gap)))
	}
	b.WriteString(right)

	return text.Truncate(b.String(), t.width)
}

func (t Taskbar) rightWidth() int {
	return lipgloss.Width(t.renderRight())
}

// renderRight draws the flash, the help hint and the clock.
func (t Taskbar) renderRight() string {
	bar := styles.TaskbarStyle
	var parts []string

	if msg := t.Flash(); msg != "" {
		var icon string
		var color lipgloss.TerminalColor
		switch t.flashLevel {
		case FlashSuccess:
			icon, color = "✓", styles.StatusSuccess
		case FlashError:
			icon, color = "✗", styles.StatusError
		case FlashWarning:
			icon, color = "⚠", styles.StatusWarning
		default: // FlashInfo
			icon, color = "●", styles.StatusRunning
		}
		parts = append(parts, bar.Foreground(color).Bold(true).Render(text.Truncate(icon+" "+msg, flashMaxWidth)))
	}
	if t.showHint {
		parts = append(parts, bar.Render("?:help"))
	}
	if t.showClock {
		parts = append(parts, styles.ClockStyle.Render(" "+text.Clock(t.now())+" "))
	}
	if len(parts) == 0 {
		return ""
	}
	return bar.Render(" ") + strings.Join(parts, bar.Render(" ")) + bar.Render(" ")
}

func entryLabel(e taskbar.Entry, width int) string {
	label := e.Title
	if e.Icon != "" {
		label = e.Icon + " " + label
	}
	return text.Fit(" "+label, width)
}

func entryStyle(e taskbar.Entry) lipgloss.Style {
	switch {
	case e.Topmost:
		return styles.TaskbarActiveStyle
	case e.Minimized:
		return styles.TaskbarMinStyle.Italic(true)
	default:
		return styles.TaskbarStyle
	}
}

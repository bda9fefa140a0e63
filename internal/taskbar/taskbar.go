// Package taskbar derives the taskbar's contents from the window table.
// Nothing here is stored: every render recomputes the entries, including which
// one is topmost, from the live table.
package taskbar

import "github.com/justinpbarnett/nexusdesk/internal/wm"

// Entry is one taskbar button.
type Entry struct {
	ID        string
	Title     string
	Icon      string
	Minimized bool
	Topmost   bool
}

// Activator is what a taskbar click needs from the window manager.
type Activator interface {
	RestoreWindow(id string)
	FocusWindow(id string)
}

// Entries returns one entry per window, minimized windows included, in table
// order. The visible window with the highest zIndex is flagged Topmost.
func Entries(windows []wm.Window) []Entry {
	topID, hasTop := Topmost(windows)
	entries := make([]Entry, 0, len(windows))
	for _, w := range windows {
		entries = append(entries, Entry{
			ID:        w.ID,
			Title:     w.Title,
			Icon:      w.Icon,
			Minimized: w.Minimized,
			Topmost:   hasTop && w.ID == topID,
		})
	}
	return entries
}

// Topmost scans the non-minimized windows for the highest zIndex.
func Topmost(windows []wm.Window) (string, bool) {
	var (
		id    string
		best  int
		found bool
	)
	for _, w := range windows {
		if w.Minimized {
			continue
		}
		if !found || w.ZIndex > best {
			id, best, found = w.ID, w.ZIndex, true
		}
	}
	return id, found
}

// Activate handles a click on an entry: minimized windows are restored,
// anything else is only raised.
func Activate(a Activator, e Entry) {
	if e.Minimized {
		a.RestoreWindow(e.ID)
		return
	}
	a.FocusWindow(e.ID)
}

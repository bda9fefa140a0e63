package gesture

import (
	"log/slog"

	"github.com/justinpbarnett/nexusdesk/internal/input"
)

// Drag moves a window while its title region is held.
//
// The pointer-to-origin offset is captured once on Begin and carried through
// the gesture; the window position is always pointer minus offset, so the end
// position depends only on the last pointer move.
type Drag struct {
	id      string
	windows Windows
	session session
	offsetX int
	offsetY int
}

func NewDrag(id string, windows Windows, pointer *input.Dispatcher) *Drag {
	return &Drag{
		id:      id,
		windows: windows,
		session: session{pointer: pointer},
	}
}

// Begin starts a drag for a pointer-down at (x, y) on the title region.
// Maximized or unknown windows do not start a drag. The window is focused as
// part of the same gesture.
func (d *Drag) Begin(x, y int) bool {
	if d.session.active() {
		return false
	}
	w, ok := d.windows.Window(d.id)
	if !ok || w.Maximized {
		return false
	}
	d.offsetX = x - w.X
	d.offsetY = y - w.Y
	d.windows.FocusWindow(d.id)
	d.session.enter(d)
	slog.Debug("drag started", "component", "gesture", "id", d.id, "offset_x", d.offsetX, "offset_y", d.offsetY)
	return true
}

// PointerMove implements input.Listener. Moves are ignored while the window
// is maximized so restore returns the frame it had before maximizing.
func (d *Drag) PointerMove(x, y int) {
	w, ok := d.windows.Window(d.id)
	if !ok || w.Maximized {
		return
	}
	d.windows.UpdateWindowPosition(d.id, x-d.offsetX, y-d.offsetY)
}

// PointerUp implements input.Listener and ends the gesture.
func (d *Drag) PointerUp(x, y int) {
	if d.session.leave() {
		slog.Debug("drag ended", "component", "gesture", "id", d.id)
	}
}

// Release tears the controller down, detaching its listener if a drag is
// still in progress.
func (d *Drag) Release() {
	d.session.leave()
}

func (d *Drag) State() State {
	if d.session.active() {
		return Dragging
	}
	return Idle
}

// Offset returns the pointer offset captured by the current or last drag.
func (d *Drag) Offset() (x, y int) {
	return d.offsetX, d.offsetY
}

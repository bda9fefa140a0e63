package gesture

import (
	"log/slog"

	"github.com/justinpbarnett/nexusdesk/internal/input"
)

// Resize grows or shrinks a window from its bottom-right handle. The new size
// is the pointer position minus the window origin as currently stored; the
// manager applies the minimum size.
type Resize struct {
	id      string
	windows Windows
	session session
}

func NewResize(id string, windows Windows, pointer *input.Dispatcher) *Resize {
	return &Resize{
		id:      id,
		windows: windows,
		session: session{pointer: pointer},
	}
}

// Begin starts a resize. The handle does not exist on maximized windows, so
// those never start one.
func (r *Resize) Begin(x, y int) bool {
	if r.session.active() {
		return false
	}
	w, ok := r.windows.Window(r.id)
	if !ok || w.Maximized {
		return false
	}
	r.session.enter(r)
	slog.Debug("resize started", "component", "gesture", "id", r.id)
	return true
}

// PointerMove implements input.Listener. Maximized windows keep their
// stored size.
func (r *Resize) PointerMove(x, y int) {
	w, ok := r.windows.Window(r.id)
	if !ok || w.Maximized {
		return
	}
	r.windows.UpdateWindowSize(r.id, x-w.X, y-w.Y)
}

// PointerUp implements input.Listener and ends the gesture.
func (r *Resize) PointerUp(x, y int) {
	if r.session.leave() {
		slog.Debug("resize ended", "component", "gesture", "id", r.id)
	}
}

// Release tears the controller down, detaching its listener if a resize is
// still in progress.
func (r *Resize) Release() {
	r.session.leave()
}

func (r *Resize) State() State {
	if r.session.active() {
		return Resizing
	}
	return Idle
}

// Package gesture holds the per-window pointer state machines that turn raw
// pointer movement into window manager calls.
//
// A controller attaches a global listener to an input.Dispatcher when its
// gesture starts and detaches it exactly once when the gesture ends, whether
// by pointer-up or by the owner releasing the controller because the window
// went away mid-gesture. Controllers never touch window records directly;
// every change goes through the window manager.
package gesture

import (
	"github.com/justinpbarnett/nexusdesk/internal/input"
	"github.com/justinpbarnett/nexusdesk/internal/wm"
)

// Windows is the slice of the window manager the controllers use.
type Windows interface {
	Window(id string) (wm.Window, bool)
	FocusWindow(id string)
	UpdateWindowPosition(id string, x, y int)
	UpdateWindowSize(id string, width, height int)
}

// State is a controller's position in its Idle -> Active -> Idle cycle.
type State int

const (
	Idle State = iota
	Dragging
	Resizing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// session is the listener scope shared by both controllers: entered on Begin,
// left on pointer-up or Release.
type session struct {
	pointer *input.Dispatcher
	sub     *input.Subscription
}

func (s *session) enter(l input.Listener) {
	s.sub = s.pointer.Attach(l)
}

func (s *session) active() bool {
	return s.sub.Attached()
}

func (s *session) leave() bool {
	ok := s.sub.Detach()
	s.sub = nil
	return ok
}

// Package wm is the window table: it owns every open window's geometry,
// visibility flags and stacking order.
//
// A Manager is not safe for concurrent use. It is owned by the UI event loop,
// which applies every mutation synchronously while handling an input event.
// Mutations on an unknown id are silent no-ops so that racing UI events (a
// pointer-up arriving after the window was closed) never fail.
package wm

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/justinpbarnett/nexusdesk/internal/geom"
)

type Manager struct {
	windows    map[string]*Window
	order      []string
	nextZIndex int
	minWidth   int
	minHeight  int
	newID      func() string
	log        *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithMinimumSize raises the minimum width and height UpdateWindowSize
// clamps to. Values below MinWidth x MinHeight leave that floor in place.
func WithMinimumSize(width, height int) Option {
	return func(m *Manager) {
		m.minWidth = geom.AtLeast(width, MinWidth)
		m.minHeight = geom.AtLeast(height, MinHeight)
	}
}

// WithIDGenerator replaces the uuid-based id source. The generator must never
// repeat a value.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		m.newID = fn
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		windows:    make(map[string]*Window),
		nextZIndex: 1,
		minWidth:   MinWidth,
		minHeight:  MinHeight,
		newID:      uuid.NewString,
		log:        slog.With("component", "wm"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// OpenWindow stores a new window on top of the stack and returns its id.
// Geometry is stored exactly as given.
func (m *Manager) OpenWindow(p Params) string {
	id := m.newID()
	m.windows[id] = &Window{
		ID:      id,
		Title:   p.Title,
		Icon:    p.Icon,
		Content: p.Content,
		X:       p.X,
		Y:       p.Y,
		Width:   p.Width,
		Height:  p.Height,
		ZIndex:  m.takeZIndex(),
	}
	m.order = append(m.order, id)
	m.log.Debug("window opened", "id", id, "title", p.Title, "z", m.windows[id].ZIndex)
	return id
}

// CloseWindow removes the window. Unknown ids are ignored.
func (m *Manager) CloseWindow(id string) {
	if _, ok := m.windows[id]; !ok {
		m.log.Debug("close ignored: unknown window", "id", id)
		return
	}
	delete(m.windows, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.log.Debug("window closed", "id", id)
}

// MinimizeWindow hides the window without touching its stacking order.
func (m *Manager) MinimizeWindow(id string) {
	m.update(id, "minimize", func(w *Window) {
		w.Minimized = true
	})
}

// MaximizeWindow marks the window maximized, unhides it and raises it.
func (m *Manager) MaximizeWindow(id string) {
	m.update(id, "maximize", func(w *Window) {
		w.Maximized = true
		w.Minimized = false
	})
	m.FocusWindow(id)
}

// RestoreWindow clears both flags and raises the window. The stored frame was
// never changed by maximize, so the window reappears where it was.
func (m *Manager) RestoreWindow(id string) {
	m.update(id, "restore", func(w *Window) {
		w.Maximized = false
		w.Minimized = false
	})
	m.FocusWindow(id)
}

// FocusWindow moves the window to the top of the stack. A fresh counter value
// is consumed even if the window is already topmost.
func (m *Manager) FocusWindow(id string) {
	m.update(id, "focus", func(w *Window) {
		w.ZIndex = m.takeZIndex()
	})
}

// UpdateWindowPosition overwrites the window origin. No viewport clamping is
// applied; a window may be moved partly or fully off screen.
func (m *Manager) UpdateWindowPosition(id string, x, y int) {
	m.update(id, "move", func(w *Window) {
		w.X = x
		w.Y = y
	})
}

// UpdateWindowSize overwrites the window size, raised to the minimum size.
func (m *Manager) UpdateWindowSize(id string, width, height int) {
	m.update(id, "resize", func(w *Window) {
		w.Width = geom.AtLeast(width, m.minWidth)
		w.Height = geom.AtLeast(height, m.minHeight)
	})
}

// Window returns a copy of the window record.
func (m *Manager) Window(id string) (Window, bool) {
	w, ok := m.windows[id]
	if !ok {
		return Window{}, false
	}
	return *w, true
}

// Windows returns copies of every window, minimized included, in the order
// they were opened.
func (m *Manager) Windows() []Window {
	result := make([]Window, 0, len(m.order))
	for _, id := range m.order {
		if w, ok := m.windows[id]; ok {
			result = append(result, *w)
		}
	}
	return result
}

// Visible returns the windows drawn on the desktop: everything not minimized,
// in paint order (lowest zIndex first).
func (m *Manager) Visible() []Window {
	result := make([]Window, 0, len(m.order))
	for _, id := range m.order {
		if w := m.windows[id]; w != nil && !w.Minimized {
			result = append(result, *w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ZIndex < result[j].ZIndex
	})
	return result
}

// Topmost returns the focused window: the visible window with the highest
// zIndex.
func (m *Manager) Topmost() (Window, bool) {
	var top *Window
	for _, w := range m.windows {
		if w.Minimized {
			continue
		}
		if top == nil || w.ZIndex > top.ZIndex {
			top = w
		}
	}
	if top == nil {
		return Window{}, false
	}
	return *top, true
}

func (m *Manager) Len() int {
	return len(m.windows)
}

// NextZIndex returns the value the next focus or open will receive.
func (m *Manager) NextZIndex() int {
	return m.nextZIndex
}

// MinimumSize returns the size UpdateWindowSize clamps to.
func (m *Manager) MinimumSize() geom.Size {
	return geom.Size{Width: m.minWidth, Height: m.minHeight}
}

func (m *Manager) takeZIndex() int {
	z := m.nextZIndex
	m.nextZIndex++
	return z
}

func (m *Manager) update(id, op string, fn func(*Window)) {
	w, ok := m.windows[id]
	if !ok {
		m.log.Debug(op+" ignored: unknown window", "id", id)
		return
	}
	fn(w)
}

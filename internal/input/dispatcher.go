// Package input fans pointer events out to "global" listeners: handlers that
// want every move and release regardless of what is under the pointer, such
// as an in-progress window drag.
package input

import "log/slog"

// Listener receives pointer events while attached. Coordinates are in
// desktop units.
type Listener interface {
	PointerMove(x, y int)
	PointerUp(x, y int)
}

// Dispatcher holds the attached listeners. It is driven from the UI event loop
// and is not safe for concurrent use.
type Dispatcher struct {
	lastID    int
	listeners map[int]Listener
	order     []int
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[int]Listener)}
}

// Attach registers l and returns the handle that removes it again.
func (d *Dispatcher) Attach(l Listener) *Subscription {
	d.lastID++
	id := d.lastID
	d.listeners[id] = l
	d.order = append(d.order, id)
	return &Subscription{d: d, id: id}
}

// Move delivers a pointer move to every attached listener in attach order.
func (d *Dispatcher) Move(x, y int) {
	for _, l := range d.snapshot() {
		l.PointerMove(x, y)
	}
}

// Up delivers a pointer release. Listeners normally detach themselves here.
func (d *Dispatcher) Up(x, y int) {
	for _, l := range d.snapshot() {
		l.PointerUp(x, y)
	}
}

// Active returns the number of attached listeners.
func (d *Dispatcher) Active() int {
	return len(d.listeners)
}

// snapshot copies the listener list so handlers can detach during delivery.
func (d *Dispatcher) snapshot() []Listener {
	out := make([]Listener, 0, len(d.order))
	for _, id := range d.order {
		if l, ok := d.listeners[id]; ok {
			out = append(out, l)
		}
	}
	return out
}

func (d *Dispatcher) remove(id int) bool {
	if _, ok := d.listeners[id]; !ok {
		return false
	}
	delete(d.listeners, id)
	for i, oid := range d.order {
		if oid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// Subscription is the scoped handle for one attached listener.
type Subscription struct {
	d        *Dispatcher
	id       int
	detached bool
}

// Detach removes the listener. Only the first call has any effect; it reports
// whether this call was the one that detached.
func (s *Subscription) Detach() bool {
	if s == nil || s.detached {
		return false
	}
	s.detached = true
	if !s.d.remove(s.id) {
		slog.Warn("listener already gone from dispatcher", "component", "input", "id", s.id)
	}
	return true
}

// Attached reports whether Detach has not yet run.
func (s *Subscription) Attached() bool {
	return s != nil && !s.detached
}

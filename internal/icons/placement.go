// Package icons places the desktop launcher icons. Icons can be dragged but
// not resized; unlike windows they are kept inside the desktop area, and their
// positions are written through to a key-value Store so they survive a
// restart.
package icons

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/justinpbarnett/nexusdesk/internal/geom"
	"github.com/justinpbarnett/nexusdesk/internal/input"
)

const (
	keyPrefix = "icon-position:"

	defaultDoubleClick = 500 * time.Millisecond
	defaultMargin      = 16
)

// Icon is a fixed desktop shortcut.
type Icon struct {
	ID    string
	Label string
	Glyph string
}

// Placed is an icon together with its current position.
type Placed struct {
	Icon
	Position geom.Point
}

type storedPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Key returns the store key an icon's position lives under.
func Key(id string) string {
	return keyPrefix + id
}

type Placement struct {
	icons       []Icon
	positions   map[string]geom.Point
	defaults    map[string]geom.Point
	size        geom.Size
	bounds      geom.Size
	store       Store
	pointer     *input.Dispatcher
	doubleClick time.Duration
	now         func() time.Time
	onLaunch    func(Icon)
	log         *slog.Logger

	sub       *input.Subscription
	dragID    string
	offset    geom.Point
	pressedAt geom.Point
	moved     bool

	lastClickID string
	lastClickAt time.Time
}

// Option configures a Placement.
type Option func(*Placement)

// WithStore sets the store positions are loaded from and written to. Without
// one, positions live only in memory.
func WithStore(s Store) Option {
	return func(p *Placement) { p.store = s }
}

// WithDoubleClick sets the maximum gap between the two clicks of a launch.
func WithDoubleClick(d time.Duration) Option {
	return func(p *Placement) { p.doubleClick = d }
}

// WithClock replaces time.Now for click timing.
func WithClock(now func() time.Time) Option {
	return func(p *Placement) { p.now = now }
}

// WithLaunch sets the callback run when an icon is double-clicked.
func WithLaunch(fn func(Icon)) Option {
	return func(p *Placement) { p.onLaunch = fn }
}

// NewPlacement lays the icons out in a single column from the top-left corner.
// Call Load to apply stored positions.
func NewPlacement(icons []Icon, size geom.Size, pointer *input.Dispatcher, opts ...Option) *Placement {
	p := &Placement{
		icons:       icons,
		positions:   make(map[string]geom.Point, len(icons)),
		defaults:    make(map[string]geom.Point, len(icons)),
		size:        size,
		store:       NewMemoryStore(),
		pointer:     pointer,
		doubleClick: defaultDoubleClick,
		now:         time.Now,
		log:         slog.With("component", "icons"),
	}
	for _, opt := range opts {
		opt(p)
	}
	for i, ic := range icons {
		pt := geom.Point{X: defaultMargin, Y: defaultMargin + i*(size.Height+defaultMargin)}
		p.defaults[ic.ID] = pt
		p.positions[ic.ID] = pt
	}
	return p
}

// Load applies positions from the store. Missing or unreadable entries keep
// their default position; failures are logged and otherwise ignored.
func (p *Placement) Load() {
	for _, ic := range p.icons {
		data, ok, err := p.store.Get(Key(ic.ID))
		if err != nil {
			p.log.Warn("load icon position", "icon", ic.ID, "error", err)
			continue
		}
		if !ok {
			continue
		}
		var sp storedPosition
		if err := json.Unmarshal(data, &sp); err != nil {
			p.log.Warn("parse icon position", "icon", ic.ID, "error", err)
			continue
		}
		p.positions[ic.ID] = p.clamp(geom.Point{X: sp.X, Y: sp.Y})
	}
}

// SetBounds records the desktop area icons must stay inside and pulls any icon
// that no longer fits back in. The stored positions are left alone.
func (p *Placement) SetBounds(b geom.Size) {
	p.bounds = b
	for id, pt := range p.positions {
		p.positions[id] = p.clamp(pt)
	}
}

// Icons returns every icon with its position, in configuration order.
func (p *Placement) Icons() []Placed {
	out := make([]Placed, 0, len(p.icons))
	for _, ic := range p.icons {
		out = append(out, Placed{Icon: ic, Position: p.positions[ic.ID]})
	}
	return out
}

// Position returns an icon's current position.
func (p *Placement) Position(id string) (geom.Point, bool) {
	pt, ok := p.positions[id]
	return pt, ok
}

// Size returns the icon footprint in desktop units.
func (p *Placement) Size() geom.Size {
	return p.size
}

// Dragging reports whether an icon gesture is in progress.
func (p *Placement) Dragging() bool {
	return p.sub.Attached()
}

// Begin starts a gesture on icon id for a pointer-down at (x, y).
func (p *Placement) Begin(id string, x, y int) bool {
	if p.Dragging() {
		return false
	}
	pt, ok := p.positions[id]
	if !ok {
		return false
	}
	p.dragID = id
	p.offset = geom.Point{X: x - pt.X, Y: y - pt.Y}
	p.pressedAt = geom.Point{X: x, Y: y}
	p.moved = false
	p.sub = p.pointer.Attach(p)
	return true
}

// PointerMove implements input.Listener.
func (p *Placement) PointerMove(x, y int) {
	if x != p.pressedAt.X || y != p.pressedAt.Y {
		p.moved = true
	}
	if !p.moved {
		return
	}
	p.positions[p.dragID] = p.clamp(geom.Point{X: x - p.offset.X, Y: y - p.offset.Y})
}

// PointerUp implements input.Listener. A drop persists the new position; a
// release without movement counts as a click, and a second click on the same
// icon within the double-click window launches it.
func (p *Placement) PointerUp(x, y int) {
	if !p.sub.Detach() {
		return
	}
	p.sub = nil
	id := p.dragID
	p.dragID = ""

	if p.moved {
		p.lastClickID = ""
		p.save(id)
		return
	}
	p.click(id)
}

// Release ends any gesture in progress without persisting.
func (p *Placement) Release() {
	p.sub.Detach()
	p.sub = nil
	p.dragID = ""
}

// Reset puts every icon back at its default position and removes the stored
// positions.
func (p *Placement) Reset() error {
	var firstErr error
	for _, ic := range p.icons {
		p.positions[ic.ID] = p.clamp(p.defaults[ic.ID])
		if err := p.store.Delete(Key(ic.ID)); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("delete %s: %w", Key(ic.ID), err)
		}
	}
	return firstErr
}

func (p *Placement) click(id string) {
	now := p.now()
	if p.lastClickID == id && now.Sub(p.lastClickAt) <= p.doubleClick {
		p.lastClickID = ""
		p.launch(id)
		return
	}
	p.lastClickID = id
	p.lastClickAt = now
}

func (p *Placement) launch(id string) {
	if p.onLaunch == nil {
		return
	}
	for _, ic := range p.icons {
		if ic.ID == id {
			p.log.Debug("launch", "icon", id)
			p.onLaunch(ic)
			return
		}
	}
}

// save writes the icon position through to the store. Failures are logged
// and swallowed: placement is a convenience.
func (p *Placement) save(id string) {
	pt := p.positions[id]
	data, err := json.Marshal(storedPosition{X: pt.X, Y: pt.Y})
	if err != nil {
		p.log.Warn("encode icon position", "icon", id, "error", err)
		return
	}
	if err := p.store.Set(Key(id), data); err != nil {
		p.log.Warn("save icon position", "icon", id, "error", err)
	}
}

func (p *Placement) clamp(pt geom.Point) geom.Point {
	if p.bounds.Width <= 0 || p.bounds.Height <= 0 {
		return pt
	}
	return geom.ClampPoint(pt, p.size, p.bounds)
}

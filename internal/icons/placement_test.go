package icons

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/justinpbarnett/nexusdesk/internal/geom"
	"github.com/justinpbarnett/nexusdesk/internal/input"
)

var testIcons = []Icon{
	{ID: "challenges", Label: "CTF Challenges", Glyph: "▣"},
	{ID: "profile", Label: "My Profile", Glyph: "☺"},
}

var iconSize = geom.Size{Width: 100, Height: 80}

type failingStore struct {
	sets int
}

func (f *failingStore) Get(string) ([]byte, bool, error) {
	return nil, false, errors.New("disk on fire")
}
func (f *failingStore) Set(string, []byte) error {
	f.sets++
	return errors.New("disk on fire")
}
func (f *failingStore) Delete(string) error { return errors.New("disk on fire") }

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newPlacement(t *testing.T, opts ...Option) (*Placement, *input.Dispatcher) {
	t.Helper()
	d := input.NewDispatcher()
	p := NewPlacement(testIcons, iconSize, d, opts...)
	p.SetBounds(geom.Size{Width: 1200, Height: 780})
	return p, d
}

func TestDefaultLayout(t *testing.T) {
	p, _ := newPlacement(t)
	placed := p.Icons()
	if len(placed) != 2 {
		t.Fatalf("expected 2 icons, got %d", len(placed))
	}
	if placed[0].Position != (geom.Point{X: 16, Y: 16}) {
		t.Errorf("unexpected first position %+v", placed[0].Position)
	}
	if placed[1].Position != (geom.Point{X: 16, Y: 112}) {
		t.Errorf("unexpected second position %+v", placed[1].Position)
	}
}

func TestDragClampsToDesktop(t *testing.T) {
	store := NewMemoryStore()
	p, d := newPlacement(t, WithStore(store))

	if !p.Begin("challenges", 20, 20) {
		t.Fatal("expected gesture to start")
	}
	d.Move(5000, 5000)
	pos, _ := p.Position("challenges")
	if pos != (geom.Point{X: 1100, Y: 700}) {
		t.Errorf("expected clamp to (1100,700), got %+v", pos)
	}

	d.Move(-300, -300)
	pos, _ = p.Position("challenges")
	if pos != (geom.Point{X: 0, Y: 0}) {
		t.Errorf("expected clamp to origin, got %+v", pos)
	}

	d.Move(504, 304)
	d.Up(504, 304)
	pos, _ = p.Position("challenges")
	if pos != (geom.Point{X: 500, Y: 300}) {
		t.Errorf("expected (500,300), got %+v", pos)
	}
	if d.Active() != 0 || p.Dragging() {
		t.Error("expected gesture to end on release")
	}

	data, ok, _ := store.Get(Key("challenges"))
	if !ok {
		t.Fatal("expected position written through to the store")
	}
	var sp storedPosition
	if err := json.Unmarshal(data, &sp); err != nil {
		t.Fatalf("stored value is not JSON: %v", err)
	}
	if sp.X != 500 || sp.Y != 300 {
		t.Errorf("unexpected stored position %+v", sp)
	}
}

func TestLoadAppliesStoredPositions(t *testing.T) {
	store := NewMemoryStore()
	store.Set(Key("profile"), []byte(`{"x":640,"y":320}`))
	store.Set(Key("challenges"), []byte(`{"x":99999,"y":-4}`))

	p, _ := newPlacement(t, WithStore(store))
	p.Load()

	if pos, _ := p.Position("profile"); pos != (geom.Point{X: 640, Y: 320}) {
		t.Errorf("expected stored profile position, got %+v", pos)
	}
	if pos, _ := p.Position("challenges"); pos != (geom.Point{X: 1100, Y: 0}) {
		t.Errorf("expected out-of-range stored position clamped, got %+v", pos)
	}
}

func TestLoadIgnoresGarbage(t *testing.T) {
	store := NewMemoryStore()
	store.Set(Key("profile"), []byte(`"nope"`))

	p, _ := newPlacement(t, WithStore(store))
	p.Load()

	if pos, _ := p.Position("profile"); pos != (geom.Point{X: 16, Y: 112}) {
		t.Errorf("expected default position kept, got %+v", pos)
	}
}

func TestPersistenceFailureIsSwallowed(t *testing.T) {
	store := &failingStore{}
	p, d := newPlacement(t, WithStore(store))
	p.Load()

	p.Begin("profile", 20, 120)
	d.Move(220, 320)
	d.Up(220, 320)

	if store.sets != 1 {
		t.Errorf("expected one save attempt, got %d", store.sets)
	}
	if pos, _ := p.Position("profile"); pos != (geom.Point{X: 216, Y: 312}) {
		t.Errorf("expected in-memory position to stand, got %+v", pos)
	}
	if err := p.Reset(); err == nil {
		t.Error("expected Reset to report the store failure")
	}
}

func TestDoubleClickLaunches(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	var launched []string
	p, d := newPlacement(t,
		WithClock(clock.now),
		WithLaunch(func(ic Icon) { launched = append(launched, ic.ID) }),
	)

	p.Begin("challenges", 30, 30)
	d.Up(30, 30)
	if len(launched) != 0 {
		t.Fatal("expected single click not to launch")
	}

	clock.t = clock.t.Add(200 * time.Millisecond)
	p.Begin("challenges", 30, 30)
	d.Up(30, 30)

	if len(launched) != 1 || launched[0] != "challenges" {
		t.Errorf("expected challenges launched once, got %v", launched)
	}
}

func TestSlowClicksDoNotLaunch(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	launches := 0
	p, d := newPlacement(t,
		WithClock(clock.now),
		WithLaunch(func(Icon) { launches++ }),
	)

	p.Begin("profile", 20, 120)
	d.Up(20, 120)
	clock.t = clock.t.Add(time.Second)
	p.Begin("profile", 20, 120)
	d.Up(20, 120)

	if launches != 0 {
		t.Errorf("expected no launch, got %d", launches)
	}
}

func TestClicksOnDifferentIconsDoNotLaunch(t *testing.T) {
	launches := 0
	p, d := newPlacement(t, WithLaunch(func(Icon) { launches++ }))

	p.Begin("challenges", 20, 20)
	d.Up(20, 20)
	p.Begin("profile", 20, 120)
	d.Up(20, 120)

	if launches != 0 {
		t.Errorf("expected no launch, got %d", launches)
	}
}

func TestDragBetweenClicksCancelsDoubleClick(t *testing.T) {
	launches := 0
	p, d := newPlacement(t, WithLaunch(func(Icon) { launches++ }))

	p.Begin("challenges", 20, 20)
	d.Up(20, 20)
	p.Begin("challenges", 20, 20)
	d.Move(60, 20)
	d.Up(60, 20)
	p.Begin("challenges", 60, 20)
	d.Up(60, 20)

	if launches != 0 {
		t.Errorf("expected drag to reset click tracking, got %d launches", launches)
	}
}

func TestBeginUnknownOrBusy(t *testing.T) {
	p, d := newPlacement(t)
	if p.Begin("nope", 0, 0) {
		t.Error("expected unknown icon to be refused")
	}
	p.Begin("challenges", 20, 20)
	if p.Begin("profile", 20, 120) {
		t.Error("expected second gesture to be refused")
	}
	p.Release()
	if d.Active() != 0 {
		t.Errorf("expected Release to detach, got %d", d.Active())
	}
}

func TestSetBoundsPullsIconsBackIn(t *testing.T) {
	p, d := newPlacement(t)
	p.Begin("challenges", 20, 20)
	d.Move(1150, 720)
	d.Up(1150, 720)

	p.SetBounds(geom.Size{Width: 600, Height: 400})
	if pos, _ := p.Position("challenges"); pos != (geom.Point{X: 500, Y: 320}) {
		t.Errorf("expected (500,320) after shrink, got %+v", pos)
	}
}

func TestReset(t *testing.T) {
	store := NewMemoryStore()
	p, d := newPlacement(t, WithStore(store))
	p.Begin("challenges", 20, 20)
	d.Move(400, 400)
	d.Up(400, 400)

	if err := p.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if pos, _ := p.Position("challenges"); pos != (geom.Point{X: 16, Y: 16}) {
		t.Errorf("expected default position, got %+v", pos)
	}
	if len(store.Keys()) != 0 {
		t.Errorf("expected store cleared, got %v", store.Keys())
	}
}

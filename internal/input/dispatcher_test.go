package input

import "testing"

type recorder struct {
	moves []([2]int)
	ups   int
	sub   *Subscription
}

func (r *recorder) PointerMove(x, y int) { r.moves = append(r.moves, [2]int{x, y}) }

func (r *recorder) PointerUp(x, y int) {
	r.ups++
	r.sub.Detach()
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	r.sub = d.Attach(r)

	d.Move(1, 2)
	d.Move(3, 4)
	d.Move(5, 6)

	if len(r.moves) != 3 {
		t.Fatalf("expected 3 moves, got %d", len(r.moves))
	}
	if r.moves[0] != [2]int{1, 2} || r.moves[2] != [2]int{5, 6} {
		t.Errorf("moves delivered out of order: %v", r.moves)
	}
}

func TestDetachDuringUp(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	b := &recorder{}
	a.sub = d.Attach(a)
	b.sub = d.Attach(b)

	d.Up(0, 0)

	if a.ups != 1 || b.ups != 1 {
		t.Errorf("expected both listeners to see the release, got %d and %d", a.ups, b.ups)
	}
	if d.Active() != 0 {
		t.Errorf("expected no listeners left, got %d", d.Active())
	}

	d.Move(9, 9)
	if len(a.moves) != 0 {
		t.Error("expected no moves after detach")
	}
}

func TestDetachIsExactlyOnce(t *testing.T) {
	d := NewDispatcher()
	sub := d.Attach(&recorder{})

	if !sub.Attached() {
		t.Fatal("expected subscription attached")
	}
	if !sub.Detach() {
		t.Error("expected first Detach to report true")
	}
	if sub.Detach() {
		t.Error("expected second Detach to report false")
	}
	if sub.Attached() {
		t.Error("expected subscription detached")
	}
	if d.Active() != 0 {
		t.Errorf("expected 0 active, got %d", d.Active())
	}
}

func TestNilSubscriptionDetach(t *testing.T) {
	var sub *Subscription
	if sub.Detach() {
		t.Error("expected nil Detach to be a no-op")
	}
	if sub.Attached() {
		t.Error("expected nil subscription to be detached")
	}
}

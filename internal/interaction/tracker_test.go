package interaction

import (
	"testing"

	"github.com/dshills/focustrack/internal/event"
	"github.com/dshills/focustrack/internal/host"
)

func newFixture() (*host.Sim, *Registry) {
	sim := host.NewSim()
	return sim, NewRegistry(event.NewBus(), sim)
}

func TestTracker_KeyDownRaisesKeyPressed(t *testing.T) {
	sim, reg := newFixture()
	tr := reg.Acquire()
	defer reg.Release()

	if tr.KeyPressed() {
		t.Error("KeyPressed true before any input")
	}

	sim.PressKey(host.KeyTab)
	if !tr.KeyPressed() {
		t.Error("KeyPressed false after key-down")
	}

	sim.ReleaseKey(host.KeyTab)
	if tr.KeyPressed() {
		t.Error("KeyPressed true after key-up")
	}
}

func TestTracker_PointerRaisesMouseMoved(t *testing.T) {
	sim, reg := newFixture()
	tr := reg.Acquire()
	defer reg.Release()

	for _, deliver := range []func(){
		func() { sim.MovePointer(1, 1) },
		func() { sim.EnterPointer(2, 2) },
		func() { sim.LeavePointer(3, 3) },
	} {
		sim.PressKey(host.KeyTab) // reset MouseMoved
		sim.ReleaseKey(host.KeyTab)
		if tr.MouseMoved() {
			t.Fatal("MouseMoved true right after key activity")
		}
		deliver()
		if !tr.MouseMoved() {
			t.Error("MouseMoved false after pointer event")
		}
	}
}

func TestTracker_KeyDownClearsMouseMoved(t *testing.T) {
	sim, reg := newFixture()
	tr := reg.Acquire()
	defer reg.Release()

	sim.MovePointer(5, 5)
	if !tr.MouseMoved() {
		t.Fatal("MouseMoved false after pointer move")
	}

	sim.PressKey(host.KeyTab)
	if tr.MouseMoved() {
		t.Error("MouseMoved survived a key-down")
	}
	if !tr.KeyPressed() {
		t.Error("KeyPressed false after key-down")
	}
}

func TestTracker_ChangeNotifications(t *testing.T) {
	sim, reg := newFixture()
	tr := reg.Acquire()
	defer reg.Release()

	var keyChanges, mouseChanges []event.Change[bool]
	if _, err := tr.OnKeyPressedChange(func(c event.Change[bool]) {
		keyChanges = append(keyChanges, c)
	}); err != nil {
		t.Fatalf("OnKeyPressedChange() failed: %v", err)
	}
	if _, err := tr.OnMouseMovedChange(func(c event.Change[bool]) {
		mouseChanges = append(mouseChanges, c)
	}); err != nil {
		t.Fatalf("OnMouseMovedChange() failed: %v", err)
	}

	sim.PressKey(host.KeyTab)
	sim.PressKey(host.KeyTab) // repeat: no state change, no event
	sim.ReleaseKey(host.KeyTab)
	sim.MovePointer(1, 0)
	sim.MovePointer(2, 0) // already moved, no event

	if len(keyChanges) != 2 {
		t.Errorf("key changes = %d, want 2 (down, up)", len(keyChanges))
	}
	if len(mouseChanges) != 1 {
		t.Errorf("mouse changes = %d, want 1", len(mouseChanges))
	}
}

func TestRegistry_SharedSingleInstance(t *testing.T) {
	sim, reg := newFixture()

	a := reg.Acquire()
	b := reg.Acquire()
	c := reg.Acquire()

	if a != b || b != c {
		t.Error("Acquire returned distinct tracker instances")
	}
	if got := sim.ObserverCount(); got != 1 {
		t.Errorf("host observers = %d, want exactly 1 for 3 consumers", got)
	}
	if reg.Refs() != 3 {
		t.Errorf("Refs() = %d, want 3", reg.Refs())
	}
}

func TestRegistry_LastReleaseUnmounts(t *testing.T) {
	sim, reg := newFixture()

	for i := 0; i < 3; i++ {
		reg.Acquire()
	}
	reg.Release()
	reg.Release()
	if got := sim.ObserverCount(); got != 1 {
		t.Errorf("host observers = %d after partial release, want 1", got)
	}
	if !reg.Live() {
		t.Error("tracker destroyed before last release")
	}

	reg.Release()
	if got := sim.ObserverCount(); got != 0 {
		t.Errorf("host observers = %d after last release, want 0", got)
	}
	if reg.Live() {
		t.Error("tracker still live after last release")
	}
}

func TestRegistry_ReacquireCreatesFreshTracker(t *testing.T) {
	sim, reg := newFixture()

	first := reg.Acquire()
	sim.PressKey(host.KeyTab)
	if !first.KeyPressed() {
		t.Fatal("KeyPressed false after key-down")
	}
	reg.Release()

	second := reg.Acquire()
	defer reg.Release()

	if second == first {
		t.Error("Acquire after full release returned the old tracker")
	}
	if second.KeyPressed() || second.MouseMoved() {
		t.Error("fresh tracker does not start from a clean slate")
	}
}

func TestRegistry_ReleaseWithoutAcquireIsNoOp(t *testing.T) {
	_, reg := newFixture()
	reg.Release()
	if reg.Refs() != 0 {
		t.Errorf("Refs() = %d, want 0", reg.Refs())
	}
}

func TestTracker_DetachedTrackerIgnoresInput(t *testing.T) {
	sim, reg := newFixture()
	tr := reg.Acquire()
	reg.Release()

	sim.PressKey(host.KeyTab)
	if tr.KeyPressed() {
		t.Error("released tracker still reacts to input")
	}
}

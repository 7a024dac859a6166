package focus

import (
	"testing"

	"github.com/dshills/focustrack/internal/event"
)

func TestTrackerFocusElement(t *testing.T) {
	bus := event.NewBus()
	tr := NewTracker(bus)
	a := NewNode("a")
	b := NewNode("b")
	tr.Add(a)
	tr.Add(b)

	tr.FocusElement(a)
	if !a.IsFocused() {
		t.Error("a should be focused")
	}
	if tr.Focused() != a {
		t.Error("tracker should report a as focused")
	}

	tr.FocusElement(b)
	if a.IsFocused() {
		t.Error("a should be blurred after focus moved")
	}
	if !b.IsFocused() {
		t.Error("b should be focused")
	}
}

func TestTrackerBlur(t *testing.T) {
	bus := event.NewBus()
	tr := NewTracker(bus)
	a := NewNode("a")
	tr.Add(a)
	tr.FocusElement(a)

	tr.Blur()
	if a.IsFocused() {
		t.Error("a should be blurred")
	}
	if tr.IsFocused() {
		t.Error("tracker should report no focus")
	}

	// Blur with nothing focused should stay quiet.
	var changes int
	if _, err := tr.OnChange(func(Changed) { changes++ }); err != nil {
		t.Fatalf("OnChange: %v", err)
	}
	tr.Blur()
	if changes != 0 {
		t.Errorf("expected no change events, got %d", changes)
	}
}

func TestTrackerRefocusIsNoOp(t *testing.T) {
	bus := event.NewBus()
	tr := NewTracker(bus)
	a := NewNode("a")
	tr.Add(a)

	var changes int
	if _, err := tr.OnChange(func(Changed) { changes++ }); err != nil {
		t.Fatalf("OnChange: %v", err)
	}

	tr.FocusElement(a)
	tr.FocusElement(a)
	if changes != 1 {
		t.Errorf("expected 1 change event, got %d", changes)
	}
}

func TestTrackerRemoveFocused(t *testing.T) {
	bus := event.NewBus()
	tr := NewTracker(bus)
	a := NewNode("a")
	b := NewNode("b")
	tr.Add(a)
	tr.Add(b)
	tr.FocusElement(a)

	var last Changed
	var changes int
	if _, err := tr.OnChange(func(c Changed) {
		last = c
		changes++
	}); err != nil {
		t.Fatalf("OnChange: %v", err)
	}

	tr.Remove(a)
	if changes != 1 {
		t.Fatalf("expected 1 change event, got %d", changes)
	}
	if last.Element != nil {
		t.Error("removal of focused element should publish cleared focus")
	}
	if a.IsFocused() {
		t.Error("removed element should be blurred")
	}

	// Removing an unfocused element publishes nothing.
	tr.Remove(b)
	if changes != 1 {
		t.Errorf("expected no further change events, got %d", changes)
	}
}

func TestTrackerCycling(t *testing.T) {
	bus := event.NewBus()
	tr := NewTracker(bus)
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	tr.Add(a)
	tr.Add(b)
	tr.Add(c)

	tr.Next()
	if tr.Focused() != a {
		t.Error("Next from no focus should land on first element")
	}
	tr.Next()
	tr.Next()
	if tr.Focused() != c {
		t.Error("Next twice more should land on last element")
	}
	tr.Next()
	if tr.Focused() != a {
		t.Error("Next should wrap to first element")
	}
	tr.Prev()
	if tr.Focused() != c {
		t.Error("Prev should wrap to last element")
	}
}

func TestTrackerPrevFromNoFocus(t *testing.T) {
	bus := event.NewBus()
	tr := NewTracker(bus)
	a := NewNode("a")
	b := NewNode("b")
	tr.Add(a)
	tr.Add(b)

	tr.Prev()
	if tr.Focused() != b {
		t.Error("Prev from no focus should land on last element")
	}
}

func TestTrackerCyclingEmpty(t *testing.T) {
	bus := event.NewBus()
	tr := NewTracker(bus)
	tr.Next()
	tr.Prev()
	if tr.IsFocused() {
		t.Error("cycling with no elements should not set focus")
	}
}

func TestTrackerChangePayload(t *testing.T) {
	bus := event.NewBus()
	tr := NewTracker(bus)
	a := NewNode("a")
	tr.Add(a)

	var got []Changed
	if _, err := tr.OnChange(func(c Changed) { got = append(got, c) }); err != nil {
		t.Fatalf("OnChange: %v", err)
	}

	tr.FocusElement(a)
	tr.Blur()

	if len(got) != 2 {
		t.Fatalf("expected 2 change events, got %d", len(got))
	}
	if got[0].Element != a {
		t.Error("first change should carry the focused element")
	}
	if got[1].Element != nil {
		t.Error("second change should carry nil for cleared focus")
	}
}

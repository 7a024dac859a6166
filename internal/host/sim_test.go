package host

import "testing"

func TestSim_ObserversRunBeforeConsumers(t *testing.T) {
	s := NewSim()

	var order []string
	s.Consume(func(Event) bool {
		order = append(order, "consumer")
		return true
	})
	s.Observe(func(Event) {
		order = append(order, "observer")
	})

	s.PressKey(KeyTab)

	want := []string{"observer", "consumer"}
	if len(order) != 2 || order[0] != want[0] || order[1] != want[1] {
		t.Errorf("dispatch order = %v, want %v", order, want)
	}
}

func TestSim_ObserversSeeConsumedEvents(t *testing.T) {
	s := NewSim()

	// First consumer swallows everything.
	s.Consume(func(Event) bool { return true })

	seen := 0
	s.Observe(func(Event) {
		seen++
	})
	secondConsumer := 0
	s.Consume(func(Event) bool {
		secondConsumer++
		return false
	})

	s.PressRune('x')
	s.MovePointer(3, 4)

	if seen != 2 {
		t.Errorf("observer saw %d events, want 2", seen)
	}
	if secondConsumer != 0 {
		t.Errorf("consumer after a consuming handler saw %d events, want 0", secondConsumer)
	}
}

func TestSim_ObserverOrder(t *testing.T) {
	s := NewSim()

	var order []int
	s.Observe(func(Event) { order = append(order, 1) })
	s.Observe(func(Event) { order = append(order, 2) })
	s.Observe(func(Event) { order = append(order, 3) })

	s.PressKey(KeyEnter)

	for i, id := range order {
		if id != i+1 {
			t.Fatalf("observer order = %v, want [1 2 3]", order)
		}
	}
}

func TestSim_RemoveObserver(t *testing.T) {
	s := NewSim()

	count := 0
	remove := s.Observe(func(Event) { count++ })

	s.PressKey(KeyTab)
	remove()
	remove() // idempotent
	s.PressKey(KeyTab)

	if count != 1 {
		t.Errorf("removed observer ran %d times, want 1", count)
	}
	if s.ObserverCount() != 0 {
		t.Errorf("ObserverCount() = %d, want 0", s.ObserverCount())
	}
}

func TestSim_EventConstruction(t *testing.T) {
	s := NewSim()

	var got Event
	s.Observe(func(e Event) { got = e })

	s.PressRune('q')
	if got.Type != EventKeyDown || got.Key != KeyRune || got.Rune != 'q' {
		t.Errorf("PressRune delivered %v", got)
	}

	s.EnterPointer(7, 9)
	if got.Type != EventPointerEnter || got.X != 7 || got.Y != 9 {
		t.Errorf("EnterPointer delivered %v", got)
	}

	if len(s.Delivered()) != 2 {
		t.Errorf("Delivered() len = %d, want 2", len(s.Delivered()))
	}
}

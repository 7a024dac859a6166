package focus

import (
	"sync"

	"github.com/dshills/focustrack/internal/event"
)

// TopicChanged carries Changed payloads whenever the focused element
// changes.
const TopicChanged event.Topic = "focus.changed"

const source = "focus"

// Changed is the payload published on TopicChanged.
type Changed struct {
	// Element is the newly focused element, nil when focus was cleared.
	Element Element
}

// Tracker tracks which element of a registered set currently holds
// focus. The zero element count is fine; focus is simply never set.
type Tracker struct {
	mu       sync.RWMutex
	bus      event.Bus
	elements []Element
	current  Element
}

// NewTracker creates an empty focus tracker.
func NewTracker(bus event.Bus) *Tracker {
	return &Tracker{bus: bus}
}

// Add registers an element. Elements cycle in registration order.
func (t *Tracker) Add(el Element) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.elements = append(t.elements, el)
}

// Remove unregisters an element. If it held focus, focus is cleared.
func (t *Tracker) Remove(el Element) {
	t.mu.Lock()
	for i, e := range t.elements {
		if e == el {
			t.elements = append(t.elements[:i], t.elements[i+1:]...)
			break
		}
	}
	wasFocused := t.current == el
	if wasFocused {
		t.current = nil
	}
	t.mu.Unlock()

	if wasFocused {
		el.SetFocused(false)
		t.publish(nil)
	}
}

// FocusElement moves focus to the given element. Focusing the current
// element again is a no-op and publishes nothing.
func (t *Tracker) FocusElement(el Element) {
	t.mu.Lock()
	if t.current == el {
		t.mu.Unlock()
		return
	}
	prev := t.current
	t.current = el
	t.mu.Unlock()

	if prev != nil {
		prev.SetFocused(false)
	}
	el.SetFocused(true)
	t.publish(el)
}

// Blur clears focus. A no-op when nothing is focused.
func (t *Tracker) Blur() {
	t.mu.Lock()
	prev := t.current
	t.current = nil
	t.mu.Unlock()

	if prev == nil {
		return
	}
	prev.SetFocused(false)
	t.publish(nil)
}

// Focused returns the currently focused element, or nil.
func (t *Tracker) Focused() Element {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// IsFocused reports whether any element currently holds focus.
func (t *Tracker) IsFocused() bool {
	return t.Focused() != nil
}

// Next moves focus to the next element in registration order,
// wrapping. With no focused element it focuses the first.
func (t *Tracker) Next() {
	t.step(1)
}

// Prev moves focus to the previous element in registration order,
// wrapping. With no focused element it focuses the last.
func (t *Tracker) Prev() {
	t.step(-1)
}

func (t *Tracker) step(delta int) {
	t.mu.RLock()
	elements := make([]Element, len(t.elements))
	copy(elements, t.elements)
	current := t.current
	t.mu.RUnlock()

	if len(elements) == 0 {
		return
	}

	idx := -1
	for i, el := range elements {
		if el == current {
			idx = i
			break
		}
	}

	var next Element
	switch {
	case idx < 0 && delta > 0:
		next = elements[0]
	case idx < 0:
		next = elements[len(elements)-1]
	default:
		next = elements[(idx+delta+len(elements))%len(elements)]
	}
	t.FocusElement(next)
}

// OnChange subscribes to focus transitions.
func (t *Tracker) OnChange(fn func(Changed), opts ...event.SubscriptionOption) (event.Subscription, error) {
	return t.bus.Subscribe(TopicChanged, event.Typed(func(e event.Event[Changed]) {
		fn(e.Payload)
	}), opts...)
}

func (t *Tracker) publish(el Element) {
	_ = t.bus.Publish(event.New(TopicChanged, Changed{Element: el}, source))
}

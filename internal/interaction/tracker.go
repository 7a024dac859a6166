package interaction

import (
	"github.com/dshills/focustrack/internal/event"
	"github.com/dshills/focustrack/internal/host"
)

// Change topics published by the tracker.
const (
	// TopicKeyChanged carries Change[bool] when key-held state flips.
	TopicKeyChanged event.Topic = "interaction.key.changed"

	// TopicMouseChanged carries Change[bool] when pointer-moved state flips.
	TopicMouseChanged event.Topic = "interaction.mouse.changed"
)

const source = "interaction"

// Tracker maintains the two raw interaction signals.
//
// KeyPressed is true between a key-down and the synthesized or real
// key-up. MouseMoved is true once pointer activity is observed after
// the most recent key-down; every key-down and key-up resets it. Only
// the tracker's own host observer mutates either signal.
type Tracker struct {
	keyPressed *event.Property[bool]
	mouseMoved *event.Property[bool]
	remove     host.RemoveFunc
}

// newTracker mounts the host observer and starts with both signals false.
func newTracker(bus event.Bus, src host.Source) *Tracker {
	t := &Tracker{
		keyPressed: event.NewProperty(bus, TopicKeyChanged, source, false),
		mouseMoved: event.NewProperty(bus, TopicMouseChanged, source, false),
	}
	t.remove = src.Observe(t.observe)
	return t
}

// observe applies one input event to the signals.
//
// A key-down clears MouseMoved before raising KeyPressed so that a new
// keyboard interaction starts from a clean slate: pointer activity
// preceding the press does not taint it.
func (t *Tracker) observe(e host.Event) {
	switch e.Type {
	case host.EventKeyDown:
		t.mouseMoved.Set(false)
		t.keyPressed.Set(true)
	case host.EventKeyUp:
		t.keyPressed.Set(false)
		t.mouseMoved.Set(false)
	case host.EventPointerEnter, host.EventPointerLeave, host.EventPointerMove:
		t.mouseMoved.Set(true)
	}
}

// KeyPressed reports whether a key is currently held down.
func (t *Tracker) KeyPressed() bool {
	return t.keyPressed.Get()
}

// MouseMoved reports whether the pointer has moved since the last key press.
func (t *Tracker) MouseMoved() bool {
	return t.mouseMoved.Get()
}

// OnKeyPressedChange subscribes to key-held changes.
func (t *Tracker) OnKeyPressedChange(fn func(event.Change[bool]), opts ...event.SubscriptionOption) (event.Subscription, error) {
	return t.keyPressed.OnChange(fn, opts...)
}

// OnMouseMovedChange subscribes to pointer-moved changes.
func (t *Tracker) OnMouseMovedChange(fn func(event.Change[bool]), opts ...event.SubscriptionOption) (event.Subscription, error) {
	return t.mouseMoved.OnChange(fn, opts...)
}

// detach unmounts the host observer and resets both signals.
func (t *Tracker) detach() {
	if t.remove != nil {
		t.remove()
		t.remove = nil
	}
	t.keyPressed.Set(false)
	t.mouseMoved.Set(false)
}

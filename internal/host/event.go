package host

import (
	"fmt"
	"time"
)

// EventType classifies an input event.
type EventType uint8

const (
	// EventNone is the zero event type.
	EventNone EventType = iota

	// EventKeyDown is delivered when a key is pressed.
	EventKeyDown

	// EventKeyUp is delivered when a key is released. Sources that
	// cannot observe releases directly (terminals) synthesize it.
	EventKeyUp

	// EventPointerEnter is delivered when the pointer enters a region.
	EventPointerEnter

	// EventPointerLeave is delivered when the pointer leaves a region.
	EventPointerLeave

	// EventPointerMove is delivered on pointer movement.
	EventPointerMove
)

// String returns a human-readable event type name.
func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventPointerEnter:
		return "pointer-enter"
	case EventPointerLeave:
		return "pointer-leave"
	case EventPointerMove:
		return "pointer-move"
	default:
		return "none"
	}
}

// IsKey returns true for key events.
func (t EventType) IsKey() bool {
	return t == EventKeyDown || t == EventKeyUp
}

// IsPointer returns true for pointer events.
func (t EventType) IsPointer() bool {
	return t == EventPointerEnter || t == EventPointerLeave || t == EventPointerMove
}

// Event is a single input event from a Source.
type Event struct {
	// Type classifies the event.
	Type EventType

	// Key identifies the key for key events.
	Key Key

	// Rune is the character for KeyRune key events.
	Rune rune

	// Mod holds the active modifier keys.
	Mod Modifier

	// X, Y is the pointer position in cells, for pointer events.
	X, Y int

	// Time is when the event occurred.
	Time time.Time
}

// PressEvent builds a key-down event for a special key.
func PressEvent(k Key, mod Modifier) Event {
	return Event{Type: EventKeyDown, Key: k, Mod: mod, Time: time.Now()}
}

// RuneEvent builds a key-down event for a character key.
func RuneEvent(r rune, mod Modifier) Event {
	return Event{Type: EventKeyDown, Key: KeyRune, Rune: r, Mod: mod, Time: time.Now()}
}

// ReleaseEvent builds a key-up event.
func ReleaseEvent(k Key, mod Modifier) Event {
	return Event{Type: EventKeyUp, Key: k, Mod: mod, Time: time.Now()}
}

// MoveEvent builds a pointer-move event.
func MoveEvent(x, y int) Event {
	return Event{Type: EventPointerMove, X: x, Y: y, Time: time.Now()}
}

// EnterEvent builds a pointer-enter event.
func EnterEvent(x, y int) Event {
	return Event{Type: EventPointerEnter, X: x, Y: y, Time: time.Now()}
}

// LeaveEvent builds a pointer-leave event.
func LeaveEvent(x, y int) Event {
	return Event{Type: EventPointerLeave, X: x, Y: y, Time: time.Now()}
}

// String returns a debug representation of the event.
func (e Event) String() string {
	switch {
	case e.Type.IsKey() && e.Key == KeyRune:
		return fmt.Sprintf("%s(%q)", e.Type, e.Rune)
	case e.Type.IsKey():
		return fmt.Sprintf("%s(%s)", e.Type, e.Key)
	case e.Type.IsPointer():
		return fmt.Sprintf("%s(%d,%d)", e.Type, e.X, e.Y)
	default:
		return e.Type.String()
	}
}

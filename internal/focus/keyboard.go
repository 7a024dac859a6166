package focus

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/focustrack/internal/event"
	"github.com/dshills/focustrack/internal/interaction"
)

// TopicKeyboardChanged carries Change[bool] when a KeyboardTracker's
// derived boolean flips. Each tracker publishes with its own ID as the
// event source; OnChange filters accordingly.
const TopicKeyboardChanged event.Topic = "focus.keyboard.changed"

// KeyboardTracker derives whether the current focus resulted from
// keyboard navigation.
//
// Three independent rules drive the derived boolean, each recomputing
// it in full from current state:
//
//  1. Pointer movement observed → false, unconditionally.
//  2. A key press while focus is already held attributes that focus to
//     the keyboard.
//  3. A focus transition is keyboard-attributed only if a key is held
//     and the pointer has not moved since the last key press.
//
// Rules 2 and 3 can fire for the same user action within one dispatch
// turn; whichever lands last wins. That race mirrors how hosts deliver
// key and focus events and is deliberately not ordered here.
//
// The tracker shares the interaction tracker through a Registry
// reference and never owns the supplied focus Tracker.
type KeyboardTracker struct {
	id           string
	focusTracker *Tracker
	registry     *interaction.Registry
	tracker      *interaction.Tracker
	keyboard     *event.Property[bool]

	subs []event.Subscription
	bus  event.Bus

	destroyOnce sync.Once
}

// NewKeyboardTracker acquires the shared interaction tracker and
// subscribes to the three driving event streams. The supplied focus
// tracker stays owned by the caller.
func NewKeyboardTracker(bus event.Bus, registry *interaction.Registry, focusTracker *Tracker) (*KeyboardTracker, error) {
	kt := &KeyboardTracker{
		id:           uuid.NewString(),
		focusTracker: focusTracker,
		registry:     registry,
		tracker:      registry.Acquire(),
		bus:          bus,
	}
	kt.keyboard = event.NewProperty(bus, TopicKeyboardChanged, kt.id, false)

	mouseSub, err := kt.tracker.OnMouseMovedChange(kt.onMouseMoved)
	if err != nil {
		registry.Release()
		return nil, err
	}
	keySub, err := kt.tracker.OnKeyPressedChange(kt.onKeyPressed)
	if err != nil {
		bus.Unsubscribe(mouseSub)
		registry.Release()
		return nil, err
	}
	focusSub, err := focusTracker.OnChange(kt.onFocusChanged)
	if err != nil {
		bus.Unsubscribe(mouseSub)
		bus.Unsubscribe(keySub)
		registry.Release()
		return nil, err
	}

	kt.subs = []event.Subscription{mouseSub, keySub, focusSub}
	return kt, nil
}

// onMouseMoved applies rule 1: pointer movement cancels keyboard
// attribution regardless of focus or key state.
func (kt *KeyboardTracker) onMouseMoved(c event.Change[bool]) {
	if c.New {
		kt.keyboard.Set(false)
	}
}

// onKeyPressed applies rule 2: a fresh key press attributes any
// currently held focus to the keyboard.
func (kt *KeyboardTracker) onKeyPressed(c event.Change[bool]) {
	if c.New {
		kt.keyboard.Set(kt.focusTracker.IsFocused())
	}
}

// onFocusChanged applies rule 3.
func (kt *KeyboardTracker) onFocusChanged(c Changed) {
	kt.keyboard.Set(c.Element != nil && !kt.tracker.MouseMoved() && kt.tracker.KeyPressed())
}

// IsFocusedUsingKeyboard reports whether the current focus is
// attributed to keyboard navigation.
func (kt *KeyboardTracker) IsFocusedUsingKeyboard() bool {
	return kt.keyboard.Get()
}

// OnChange subscribes to changes of this tracker's derived boolean.
func (kt *KeyboardTracker) OnChange(fn func(event.Change[bool]), opts ...event.SubscriptionOption) (event.Subscription, error) {
	opts = append(opts, event.WithFilter(func(e any) bool {
		ev, ok := e.(event.Event[event.Change[bool]])
		return ok && ev.Metadata.Source == kt.id
	}))
	return kt.keyboard.OnChange(fn, opts...)
}

// Destroy detaches all three subscriptions, releases the shared
// interaction tracker and resets the derived boolean. The supplied
// focus tracker is left untouched. Destroy is idempotent; a destroyed
// tracker ignores all further notifications.
func (kt *KeyboardTracker) Destroy() {
	kt.destroyOnce.Do(func() {
		for _, sub := range kt.subs {
			_ = kt.bus.Unsubscribe(sub)
		}
		kt.subs = nil
		kt.registry.Release()
		kt.keyboard.Set(false)
	})
}

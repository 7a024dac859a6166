package host

import "sync"

// ConsumerFunc is a post-dispatch handler. Returning true consumes the
// event: later consumers do not see it. Observers always run first.
type ConsumerFunc func(Event) bool

// Sim is a scripted, in-memory Source for tests and tooling.
//
// Deliver pushes an event through the full dispatch path synchronously:
// all observers first, then consumers until one consumes the event.
type Sim struct {
	observers ObserverSet

	mu        sync.Mutex
	consumers []ConsumerFunc

	delivered []Event
}

// NewSim creates an empty simulated source.
func NewSim() *Sim {
	return &Sim{}
}

// Observe implements Source.
func (s *Sim) Observe(fn Observer) RemoveFunc {
	return s.observers.Add(fn)
}

// ObserverCount returns the number of registered observers.
func (s *Sim) ObserverCount() int {
	return s.observers.Len()
}

// Consume registers a post-dispatch consumer handler.
func (s *Sim) Consume(fn ConsumerFunc) RemoveFunc {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.consumers = append(s.consumers, fn)
	idx := len(s.consumers) - 1

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.consumers[idx] = nil
		})
	}
}

// Deliver dispatches an event synchronously: observers in registration
// order, then consumers until one returns true.
func (s *Sim) Deliver(e Event) {
	s.mu.Lock()
	s.delivered = append(s.delivered, e)
	consumers := make([]ConsumerFunc, len(s.consumers))
	copy(consumers, s.consumers)
	s.mu.Unlock()

	s.observers.Notify(e)

	for _, fn := range consumers {
		if fn != nil && fn(e) {
			break
		}
	}
}

// Delivered returns a copy of every event delivered so far.
func (s *Sim) Delivered() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.delivered))
	copy(out, s.delivered)
	return out
}

// Convenience injectors used heavily in tests.

// PressKey delivers a key-down for a special key.
func (s *Sim) PressKey(k Key) {
	s.Deliver(PressEvent(k, ModNone))
}

// PressRune delivers a key-down for a character key.
func (s *Sim) PressRune(r rune) {
	s.Deliver(RuneEvent(r, ModNone))
}

// ReleaseKey delivers a key-up.
func (s *Sim) ReleaseKey(k Key) {
	s.Deliver(ReleaseEvent(k, ModNone))
}

// MovePointer delivers a pointer-move.
func (s *Sim) MovePointer(x, y int) {
	s.Deliver(MoveEvent(x, y))
}

// EnterPointer delivers a pointer-enter.
func (s *Sim) EnterPointer(x, y int) {
	s.Deliver(EnterEvent(x, y))
}

// LeavePointer delivers a pointer-leave.
func (s *Sim) LeavePointer(x, y int) {
	s.Deliver(LeaveEvent(x, y))
}

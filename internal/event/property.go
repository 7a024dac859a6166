package event

import "sync"

// Property is a single observable value bound to a bus topic.
//
// Set publishes Event[Change[T]] on the property's topic only when the
// value actually changes; setting the current value again is a no-op
// and fires nothing. Get is synchronously readable at any time.
type Property[T comparable] struct {
	mu     sync.RWMutex
	value  T
	topic  Topic
	source string
	bus    Bus
}

// NewProperty creates a property publishing changes on the given topic.
func NewProperty[T comparable](bus Bus, topic Topic, source string, initial T) *Property[T] {
	return &Property[T]{
		value:  initial,
		topic:  topic,
		source: source,
		bus:    bus,
	}
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// Topic returns the topic the property publishes changes on.
func (p *Property[T]) Topic() Topic {
	return p.topic
}

// Set updates the value. Returns true if the value changed and a
// change event was published.
func (p *Property[T]) Set(v T) bool {
	p.mu.Lock()
	if p.value == v {
		p.mu.Unlock()
		return false
	}
	old := p.value
	p.value = v
	p.mu.Unlock()

	// Publish outside the lock: handlers may read the property back.
	_ = p.bus.Publish(New(p.topic, Change[T]{Old: old, New: v}, p.source))
	return true
}

// OnChange subscribes a callback to the property's change events.
func (p *Property[T]) OnChange(fn func(c Change[T]), opts ...SubscriptionOption) (Subscription, error) {
	return p.bus.Subscribe(p.topic, Typed(func(e Event[Change[T]]) {
		fn(e.Payload)
	}), opts...)
}

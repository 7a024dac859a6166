package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is a typed event published on the bus.
// Events are immutable once created.
type Event[T any] struct {
	// Type is the hierarchical event topic.
	Type Topic

	// Payload is the event-specific data.
	Payload T

	// Metadata carries standard event information.
	Metadata Metadata
}

// Metadata is attached to every event.
type Metadata struct {
	// ID uniquely identifies this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source names the component that published the event.
	Source string
}

// New creates an event with the given topic, payload and source.
func New[T any](t Topic, payload T, source string) Event[T] {
	return Event[T]{
		Type:    t,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// EventTopic returns the event's topic for type-erased handling.
func (e Event[T]) EventTopic() Topic {
	return e.Type
}

// TopicProvider is implemented by values that carry their own topic.
// The bus uses it to route type-erased events.
type TopicProvider interface {
	EventTopic() Topic
}

// Change is the payload published when an observable value changes.
type Change[T any] struct {
	// Old is the value before the change.
	Old T

	// New is the value after the change.
	New T
}

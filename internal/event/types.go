package event

// Priority determines handler execution order. Lower values run first.
type Priority int

const (
	// PriorityTracker is for tracker-internal handlers that must observe
	// changes before any consumer.
	PriorityTracker Priority = 0

	// PriorityNormal is the default consumer priority.
	PriorityNormal Priority = 100

	// PriorityLow is for observers such as logging and script hooks.
	PriorityLow Priority = 200
)

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch {
	case p <= PriorityTracker:
		return "tracker"
	case p <= PriorityNormal:
		return "normal"
	default:
		return "low"
	}
}

// Handler processes a published event. The event is type-erased;
// handlers type-assert to the Event[T] they subscribed for.
type Handler interface {
	Handle(event any)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(event any)

// Handle implements Handler.
func (f HandlerFunc) Handle(event any) {
	f(event)
}

// Typed adapts a function over Event[T] to a generic Handler.
// Events of any other payload type are skipped.
func Typed[T any](fn func(e Event[T])) Handler {
	return HandlerFunc(func(event any) {
		if e, ok := event.(Event[T]); ok {
			fn(e)
		}
	})
}

// FilterFunc is a subscription predicate. Return false to skip delivery.
type FilterFunc func(event any) bool

// Stats holds bus delivery counters.
type Stats struct {
	// Published is the total number of events published.
	Published uint64

	// Delivered is the total number of successful handler invocations.
	Delivered uint64

	// Panics is the number of handler panics that were isolated.
	Panics uint64

	// ActiveSubscriptions is the current number of active subscriptions.
	ActiveSubscriptions int
}

package host

import "sync"

// Observer receives every input event from a Source.
type Observer func(Event)

// RemoveFunc detaches a previously registered observer or handler.
// Calling it more than once is a no-op.
type RemoveFunc func()

// Source is an input event source.
//
// Observers are pre-dispatch: a Source must invoke all observers, in
// registration order, before any consumer handler runs, regardless of
// whether a consumer later consumes the event.
type Source interface {
	// Observe registers a pre-dispatch observer.
	Observe(fn Observer) RemoveFunc
}

// ObserverSet is the observer bookkeeping shared by Source
// implementations. The zero value is ready for use. It is safe for
// concurrent use.
type ObserverSet struct {
	mu     sync.Mutex
	nextID int
	order  []int
	fns    map[int]Observer
}

// Add registers an observer and returns its remove func.
func (s *ObserverSet) Add(fn Observer) RemoveFunc {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fns == nil {
		s.fns = make(map[int]Observer)
	}
	id := s.nextID
	s.nextID++
	s.order = append(s.order, id)
	s.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.remove(id)
		})
	}
}

func (s *ObserverSet) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.fns, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Notify invokes all observers in registration order.
func (s *ObserverSet) Notify(e Event) {
	s.mu.Lock()
	ids := make([]int, len(s.order))
	copy(ids, s.order)
	fns := make(map[int]Observer, len(s.fns))
	for id, fn := range s.fns {
		fns[id] = fn
	}
	s.mu.Unlock()

	for _, id := range ids {
		if fn, ok := fns[id]; ok {
			fn(e)
		}
	}
}

// Len returns the number of registered observers.
func (s *ObserverSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

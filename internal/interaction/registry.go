package interaction

import (
	"sync"

	"github.com/dshills/focustrack/internal/event"
	"github.com/dshills/focustrack/internal/host"
)

// Registry owns the shared Tracker and its reference count.
//
// The first Acquire creates the tracker and mounts its host observer;
// later Acquires reuse it. Release of the last reference unmounts the
// observer, resets both signals and clears the slot, so a subsequent
// Acquire builds a fresh tracker.
type Registry struct {
	mu      sync.Mutex
	bus     event.Bus
	source  host.Source
	tracker *Tracker
	refs    int
}

// NewRegistry creates a registry over the given bus and input source.
func NewRegistry(bus event.Bus, src host.Source) *Registry {
	return &Registry{bus: bus, source: src}
}

// Acquire returns the shared tracker, creating it on first use, and
// increments the reference count. It never fails.
func (r *Registry) Acquire() *Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tracker == nil {
		r.tracker = newTracker(r.bus, r.source)
	}
	r.refs++
	return r.tracker
}

// Release decrements the reference count. When it reaches zero the
// tracker is detached and the slot cleared. Releasing with no
// outstanding references is a no-op.
func (r *Registry) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.refs == 0 {
		return
	}
	r.refs--
	if r.refs == 0 && r.tracker != nil {
		r.tracker.detach()
		r.tracker = nil
	}
}

// Refs returns the current reference count.
func (r *Registry) Refs() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refs
}

// Live reports whether a tracker instance currently exists.
func (r *Registry) Live() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracker != nil
}

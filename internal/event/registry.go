package event

import (
	"sort"
	"sync"
)

// registry indexes subscriptions by topic pattern.
// It is safe for concurrent use.
//
// Matching is a linear scan over registered patterns. A UI process holds
// at most a few dozen subscriptions, so an index structure would buy
// nothing here.
type registry struct {
	mu   sync.RWMutex
	subs map[Topic][]*subscription
	byID map[string]*subscription
}

func newRegistry() *registry {
	return &registry{
		subs: make(map[Topic][]*subscription),
		byID: make(map[string]*subscription),
	}
}

// add inserts a subscription, keeping each pattern's list priority-sorted.
func (r *registry) add(sub *subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := append(r.subs[sub.pattern], sub)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].config.Priority < list[j].config.Priority
	})
	r.subs[sub.pattern] = list
	r.byID[sub.id] = sub
}

// remove deletes a subscription by ID.
func (r *registry) remove(subID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.byID[subID]
	if !ok {
		return false
	}

	list := r.subs[sub.pattern]
	for i, s := range list {
		if s.id == subID {
			r.subs[sub.pattern] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(r.subs[sub.pattern]) == 0 {
		delete(r.subs, sub.pattern)
	}
	delete(r.byID, subID)
	return true
}

// matchActive returns active subscriptions whose pattern matches the
// topic, priority-ordered across all matching patterns.
func (r *registry) matchActive(t Topic) []*subscription {
	r.mu.RLock()
	var matched []*subscription
	for pattern, list := range r.subs {
		if t.Matches(pattern) {
			matched = append(matched, list...)
		}
	}
	r.mu.RUnlock()

	if len(matched) == 0 {
		return nil
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].config.Priority < matched[j].config.Priority
	})

	active := matched[:0]
	for _, sub := range matched {
		if sub.IsActive() {
			active = append(active, sub)
		}
	}
	return active
}

// countActive returns the number of active subscriptions.
func (r *registry) countActive() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, sub := range r.byID {
		if sub.IsActive() {
			n++
		}
	}
	return n
}

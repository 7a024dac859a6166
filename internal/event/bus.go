package event

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Bus is the central notification hub.
//
// Publish delivers synchronously: every matching active handler runs in
// the caller's goroutine, in priority order, before Publish returns.
// A handler panic is isolated and counted; remaining handlers still run.
type Bus interface {
	// Publish delivers an event to all matching subscriptions.
	// The event must implement TopicProvider (every Event[T] does).
	Publish(event any) error

	// Subscribe registers a handler for a topic pattern.
	Subscribe(pattern Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error)

	// SubscribeFunc registers a function handler for a topic pattern.
	SubscribeFunc(pattern Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error)

	// Unsubscribe cancels and removes a subscription.
	Unsubscribe(sub Subscription) error

	// Stats returns delivery counters.
	Stats() Stats
}

type bus struct {
	registry *registry

	published atomic.Uint64
	delivered atomic.Uint64
	panics    atomic.Uint64
}

// NewBus creates an empty bus, ready for use.
func NewBus() Bus {
	return &bus{registry: newRegistry()}
}

func (b *bus) Publish(event any) error {
	tp, ok := event.(TopicProvider)
	if !ok {
		return ErrInvalidEvent
	}
	t := tp.EventTopic()
	if !t.IsValid() {
		return ErrInvalidEvent
	}

	subs := b.registry.matchActive(t)
	if len(subs) == 0 {
		return nil
	}

	b.published.Add(1)

	for _, sub := range subs {
		if !sub.shouldDeliver(event) {
			continue
		}
		b.dispatch(sub, event)
		if sub.config.Once {
			sub.Cancel()
			b.registry.remove(sub.id)
		}
	}
	return nil
}

// dispatch runs one handler with panic isolation.
func (b *bus) dispatch(sub *subscription, event any) {
	defer func() {
		if r := recover(); r != nil {
			b.panics.Add(1)
		}
	}()
	sub.handler.Handle(event)
	b.delivered.Add(1)
}

func (b *bus) Subscribe(pattern Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if !pattern.IsValid() {
		return nil, ErrInvalidTopic
	}

	sub := newSubscription(uuid.NewString(), pattern, handler, opts...)
	b.registry.add(sub)
	return sub, nil
}

func (b *bus) SubscribeFunc(pattern Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	return b.Subscribe(pattern, fn, opts...)
}

func (b *bus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrInvalidSubscription
	}
	sub.Cancel()
	if !b.registry.remove(sub.ID()) {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (b *bus) Stats() Stats {
	return Stats{
		Published:           b.published.Load(),
		Delivered:           b.delivered.Load(),
		Panics:              b.panics.Load(),
		ActiveSubscriptions: b.registry.countActive(),
	}
}

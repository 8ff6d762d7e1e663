// Package eventbus provides an in-process publish/subscribe broadcaster.
//
// A Bus is an ordinary value: the application creates the instances it needs
// and injects them where events are produced or consumed, so tests can build
// isolated buses instead of sharing process-wide registries.
package eventbus

import (
	"context"
	"slices"
	"sync"
)

// Handler receives published events. Handlers run synchronously on the
// publisher's goroutine and must not block for long.
type Handler[T any] func(ctx context.Context, event T)

// SubscriptionID identifies a handler registered on a Bus.
type SubscriptionID uint64

type subscription[T any] struct {
	id      SubscriptionID
	handler Handler[T]
}

// Bus fans events of type T out to every subscribed handler.
// The zero value is ready to use and safe for concurrent use.
type Bus[T any] struct {
	mu     sync.RWMutex
	nextID SubscriptionID
	subs   []subscription[T]
}

// New returns an empty Bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers handler and returns the id needed to unsubscribe it.
func (b *Bus[T]) Subscribe(handler Handler[T]) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs = append(b.subs, subscription[T]{id: b.nextID, handler: handler})

	return b.nextID
}

// Unsubscribe removes the handler registered under id. Unknown ids are ignored.
func (b *Bus[T]) Unsubscribe(id SubscriptionID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs = slices.DeleteFunc(b.subs, func(s subscription[T]) bool {
		return s.id == id
	})
}

// Publish delivers event to every handler subscribed at the time of the call,
// in subscription order. Handlers may subscribe or unsubscribe while being
// called; such changes take effect from the next Publish.
func (b *Bus[T]) Publish(ctx context.Context, event T) {
	b.mu.RLock()
	subs := slices.Clone(b.subs)
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(ctx, event)
	}
}

// Len returns the number of active subscriptions.
func (b *Bus[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs)
}

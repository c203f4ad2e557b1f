// Package bus provides the in-process command notification bus. Every
// locally executed mutating command publishes one notification; the sync
// reconciler subscribes and marks the local database dirty.
package bus

import "sync"

// Handler is invoked once per published mutating-command notification.
// Handlers must be fast and must not block: publishers call them inline
// from the mutation path.
type Handler func()

// CommandBus fans a mutating-command notification out to all subscribers.
// Subscribe and Publish are safe for concurrent use.
type CommandBus struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewCommandBus returns an empty bus with no subscribers.
func NewCommandBus() *CommandBus {
	return &CommandBus{}
}

// Subscribe registers a handler. There is no unsubscribe: subscribers live
// for the session, same as the bus itself.
func (b *CommandBus) Subscribe(h Handler) {
	if h == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish notifies every subscriber that a mutating command has executed.
// Notifications carry no payload: the flag they set is idempotent once true.
func (b *CommandBus) Publish() {
	b.mu.RLock()
	handlers := b.handlers
	b.mu.RUnlock()

	for _, h := range handlers {
		h()
	}
}

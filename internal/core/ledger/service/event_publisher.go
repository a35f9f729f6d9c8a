package service

import (
	"context"
	"sync"

	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// EventHooks provides structured callbacks for committed transactions.
// Hooks run on the engine's goroutine while it holds its lock, so they must
// not submit transactions.
type EventHooks struct {
	// OnTransaction is called for every committed transaction
	OnTransaction func(r *tx.Receipt)

	// OnPoolCreated is called when an initialize commits
	OnPoolCreated func(pool types.Hash256)
}

// EventPublisher fans committed receipts out to registered hooks.
type EventPublisher struct {
	mu    sync.RWMutex
	hooks []*EventHooks
}

var _ tx.EventSink = (*EventPublisher)(nil)

// NewEventPublisher creates a new event publisher.
func NewEventPublisher() *EventPublisher {
	return &EventPublisher{}
}

// Subscribe registers hooks.
func (p *EventPublisher) Subscribe(h *EventHooks) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hooks = append(p.hooks, h)
}

// HasSubscribers returns true if there are any subscribers.
func (p *EventPublisher) HasSubscribers() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.hooks) > 0
}

// Publish implements tx.EventSink.
func (p *EventPublisher) Publish(_ context.Context, r *tx.Receipt) error {
	p.mu.RLock()
	hooks := p.hooks
	p.mu.RUnlock()

	created := r.Type == tx.TypeInitialize && r.Pool != nil
	for _, h := range hooks {
		if h.OnTransaction != nil {
			h.OnTransaction(r)
		}
		if created && h.OnPoolCreated != nil {
			h.OnPoolCreated(*r.Pool)
		}
	}
	return nil
}

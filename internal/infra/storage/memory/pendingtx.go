// Package memory provides an in-process pendingtx.Store, used when no Redis
// server is configured and in tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/gabapcia/pendingwatch/internal/pendingtx"
	"github.com/gabapcia/pendingwatch/internal/pkg/eventbus"
)

// store keeps every address's pending transactions in insertion order and
// announces each change to every service sharing it.
type store struct {
	mu  sync.RWMutex
	txs map[string][]pendingtx.Transaction

	changes *eventbus.Bus[pendingtx.Changed]
}

// Ensure store implements pendingtx.Store and pendingtx.Feed at compile time.
var (
	_ pendingtx.Store = (*store)(nil)
	_ pendingtx.Feed  = (*store)(nil)
)

// NewStore creates an empty in-memory store.
func NewStore() *store {
	return &store{
		txs:     make(map[string][]pendingtx.Transaction),
		changes: eventbus.New[pendingtx.Changed](),
	}
}

func (s *store) Add(ctx context.Context, tx pendingtx.Transaction) error {
	if err := s.add(tx); err != nil {
		return err
	}

	s.changes.Publish(ctx, pendingtx.Changed{Address: tx.Address})
	return nil
}

func (s *store) add(tx pendingtx.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := pendingtx.FindPendingByHash(s.txs[tx.Address], tx.Hash); found {
		return pendingtx.ErrTransactionAlreadyPending
	}

	s.txs[tx.Address] = append(s.txs[tx.Address], tx)
	return nil
}

func (s *store) Remove(ctx context.Context, address, hash string) error {
	if err := s.remove(address, hash); err != nil {
		return err
	}

	s.changes.Publish(ctx, pendingtx.Changed{Address: address})
	return nil
}

func (s *store) remove(address, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := s.txs[address]
	i := slices.IndexFunc(txs, func(tx pendingtx.Transaction) bool {
		return tx.Hash == hash
	})
	if i < 0 {
		return pendingtx.ErrTransactionNotFound
	}

	txs = slices.Delete(txs, i, i+1)
	if len(txs) == 0 {
		delete(s.txs, address)
		return nil
	}

	s.txs[address] = txs
	return nil
}

// List returns a copy of the pending transactions of address.
func (s *store) List(ctx context.Context, address string) ([]pendingtx.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]pendingtx.Transaction{}, s.txs[address]...), nil
}

// Watch calls handler after every Add or Remove touching address, on the
// writer's goroutine and after the store lock is released.
func (s *store) Watch(ctx context.Context, address string, handler func(ctx context.Context, address string)) (func(), error) {
	id := s.changes.Subscribe(func(ctx context.Context, event pendingtx.Changed) {
		if event.Address == address {
			handler(ctx, address)
		}
	})

	return func() { s.changes.Unsubscribe(id) }, nil
}

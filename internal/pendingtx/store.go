package pendingtx

import (
	"context"
	"errors"
)

var (
	// ErrTransactionNotFound is returned when a hash is not pending for the address.
	ErrTransactionNotFound = errors.New("pending transaction not found")

	// ErrTransactionAlreadyPending is returned when tracking a hash the address already holds.
	ErrTransactionAlreadyPending = errors.New("transaction already pending")

	// ErrChainNotRegistered is returned when no node client serves a transaction's chain.
	ErrChainNotRegistered = errors.New("chain not registered")
)

// Store persists the pending transactions of every account.
//
// Implementations receive already normalized addresses and hashes (see
// NormalizeAddress and NormalizeHash) and must keep each address's
// transactions in insertion order.
type Store interface {
	// Add appends tx to the pending list of tx.Address.
	//
	// Returns ErrTransactionAlreadyPending if the address already holds tx.Hash.
	Add(ctx context.Context, tx Transaction) error

	// Remove deletes the transaction identified by hash from the pending list of address.
	//
	// Returns ErrTransactionNotFound if it is not there.
	Remove(ctx context.Context, address, hash string) error

	// List returns the pending transactions of address in insertion order.
	// An address without pending transactions yields an empty slice and no error.
	List(ctx context.Context, address string) ([]Transaction, error)
}

// Feed is implemented by stores that announce changes made by any writer,
// including other processes sharing the same backend. When the Store given to
// New is also a Feed, Subscribe follows the store instead of the local bus.
type Feed interface {
	// Watch calls handler after every change to the pending list of address
	// until stop is called. It returns once the subscription is active.
	Watch(ctx context.Context, address string, handler func(ctx context.Context, address string)) (stop func(), err error)
}

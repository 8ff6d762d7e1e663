// Package nonce computes the next nonce to use for an account, taking into
// account the transactions it already has in flight.
package nonce

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/gabapcia/pendingwatch/internal/pendingtx"
	"github.com/gabapcia/pendingwatch/internal/pkg/resilience/retry"
)

const pendingBlock = "pending"

// ErrNonceExhausted is returned when a pending transaction already holds the
// largest representable nonce, leaving none for the next one.
var ErrNonceExhausted = errors.New("nonce space exhausted")

// Chain reports how many transactions an account has sent.
type Chain interface {
	// TransactionCount returns the number of transactions sent by address as of block.
	TransactionCount(ctx context.Context, address, block string) (uint64, error)
}

type config struct {
	retry retry.Retry
}

// Option configures a Resolver.
type Option func(*config)

// WithRetry makes every chain call go through r.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// Resolver hands out nonces that do not collide with pending transactions.
type Resolver struct {
	service pendingtx.Service
	chains  map[string]Chain
	retry   retry.Retry
}

// New creates a Resolver reading pending transactions from service.
func New(service pendingtx.Service, chains map[string]Chain, opts ...Option) *Resolver {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Resolver{
		service: service,
		chains:  chains,
		retry:   cfg.retry,
	}
}

// Next returns the nonce the next transaction of address on chainID should use.
//
// It is the larger of the node's pending transaction count and one past the
// highest nonce among the address's tracked pending transactions, so a
// transaction the node has already forgotten still reserves its nonce.
func (r *Resolver) Next(ctx context.Context, address, chainID string) (uint64, error) {
	chain, ok := r.chains[chainID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", pendingtx.ErrChainNotRegistered, chainID)
	}

	address = pendingtx.NormalizeAddress(address)

	var count uint64
	err := retry.Do(ctx, r.retry, func() (err error) {
		count, err = chain.TransactionCount(ctx, address, pendingBlock)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("fetching transaction count: %w", err)
	}

	txs, err := r.service.List(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("listing pending transactions: %w", err)
	}

	if highest, ok := pendingtx.HighestNonce(txs, chainID); ok {
		if highest == math.MaxUint64 {
			return 0, fmt.Errorf("%w: %s holds nonce %d on chain %s", ErrNonceExhausted, address, highest, chainID)
		}
		count = max(count, highest+1)
	}

	return count, nil
}

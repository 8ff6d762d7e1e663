// Package balance keeps the native balance of accounts up to date as their
// pending transactions settle.
package balance

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/gabapcia/pendingwatch/internal/pendingtx"
	"github.com/gabapcia/pendingwatch/internal/pkg/eventbus"
	"github.com/gabapcia/pendingwatch/internal/pkg/logger"
	"github.com/gabapcia/pendingwatch/internal/pkg/resilience/retry"

	"github.com/shopspring/decimal"
)

// nativeDecimals is the number of decimals of the native coin of EVM chains (1 ether = 10^18 wei).
const nativeDecimals = 18

// Chain reads native balances.
type Chain interface {
	// Balance returns the balance of address in the smallest unit (wei) at the latest block.
	Balance(ctx context.Context, address string) (*big.Int, error)
}

type key struct {
	address string
	chainID string
}

type config struct {
	retry retry.Retry
}

// Option configures a Refresher.
type Option func(*config)

// WithRetry makes every chain call go through r.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// Refresher caches account balances and refreshes them whenever a pending
// transaction of the account settles.
type Refresher struct {
	chains map[string]Chain
	retry  retry.Retry

	mu       sync.RWMutex
	balances map[key]decimal.Decimal

	unsubscribe func()
}

// New creates a Refresher. When settled is not nil the Refresher subscribes
// to it until Close is called.
func New(chains map[string]Chain, settled *eventbus.Bus[pendingtx.Settled], opts ...Option) *Refresher {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Refresher{
		chains:      chains,
		retry:       cfg.retry,
		balances:    make(map[key]decimal.Decimal),
		unsubscribe: func() {},
	}

	if settled != nil {
		id := settled.Subscribe(r.onSettled)
		r.unsubscribe = func() { settled.Unsubscribe(id) }
	}

	return r
}

// Close stops following settlement events.
func (r *Refresher) Close() {
	r.unsubscribe()
}

// Balance returns the last known balance of address on chainID, in whole coins.
func (r *Refresher) Balance(address, chainID string) (decimal.Decimal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.balances[key{address: pendingtx.NormalizeAddress(address), chainID: chainID}]
	return b, ok
}

// Refresh fetches the balance of address on chainID, caches it and returns it in whole coins.
func (r *Refresher) Refresh(ctx context.Context, address, chainID string) (decimal.Decimal, error) {
	chain, ok := r.chains[chainID]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", pendingtx.ErrChainNotRegistered, chainID)
	}

	address = pendingtx.NormalizeAddress(address)

	var wei *big.Int
	err := retry.Do(ctx, r.retry, func() (err error) {
		wei, err = chain.Balance(ctx, address)
		return err
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetching balance: %w", err)
	}

	amount := decimal.NewFromBigInt(wei, -nativeDecimals)

	r.mu.Lock()
	r.balances[key{address: address, chainID: chainID}] = amount
	r.mu.Unlock()

	return amount, nil
}

// onSettled refreshes the balance of the account that owned a settled
// transaction. Failures are logged, never returned to the publisher.
func (r *Refresher) onSettled(ctx context.Context, event pendingtx.Settled) {
	tx := event.Transaction

	amount, err := r.Refresh(ctx, tx.Address, tx.ChainID)
	if err != nil {
		logger.Warn(ctx, "failed to refresh balance after settlement",
			"tx.address", tx.Address,
			"tx.chain_id", tx.ChainID,
			"tx.hash", tx.Hash,
			"error", err,
		)
		return
	}

	logger.Debug(ctx, "balance refreshed",
		"tx.address", tx.Address,
		"tx.chain_id", tx.ChainID,
		"balance", amount.String(),
	)
}

// Package reconcile decides what happened to pending transactions by asking
// the chain they were sent to, and settles the ones that left the mempool.
package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/pendingwatch/internal/pendingtx"
	"github.com/gabapcia/pendingwatch/internal/pkg/eventbus"
	"github.com/gabapcia/pendingwatch/internal/pkg/logger"
	"github.com/gabapcia/pendingwatch/internal/pkg/resilience/retry"
)

// settlement is a transaction observed in a terminal status.
type settlement struct {
	tx          pendingtx.Transaction
	status      pendingtx.Status
	blockNumber uint64
}

type config struct {
	retry retry.Retry
}

// Option configures a Reconciler.
type Option func(*config)

// WithRetry makes every chain call go through r.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// Reconciler checks pending transactions against their chains. Its Watch
// method is meant to be driven by a txwatch.Coordinator.
type Reconciler struct {
	service pendingtx.Service
	chains  map[string]Chain
	settled *eventbus.Bus[pendingtx.Settled]
	retry   retry.Retry
}

// New creates a Reconciler that untracks settled transactions through service
// and announces them on settled. A nil bus gets replaced by a private one.
func New(service pendingtx.Service, chains map[string]Chain, settled *eventbus.Bus[pendingtx.Settled], opts ...Option) *Reconciler {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if settled == nil {
		settled = eventbus.New[pendingtx.Settled]()
	}

	return &Reconciler{
		service: service,
		chains:  chains,
		settled: settled,
		retry:   cfg.retry,
	}
}

// Watch resolves the status of every transaction in txs. Confirmed, failed
// and dropped transactions are untracked and published as Settled events.
//
// Lookups stop as soon as ctx is done. Settlements already observed are
// still committed, since the chain outcome does not depend on the caller.
// The returned error joins every failure of the batch.
func (r *Reconciler) Watch(ctx context.Context, txs []pendingtx.Transaction) error {
	var (
		errs        []error
		settlements []settlement
	)

	for chainID, chainTxs := range pendingtx.ByChain(txs) {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		chain, ok := r.chains[chainID]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", pendingtx.ErrChainNotRegistered, chainID))
			continue
		}

		found, err := r.resolveChain(ctx, chain, chainTxs)
		settlements = append(settlements, found...)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if err := r.settle(context.WithoutCancel(ctx), settlements); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// resolveChain looks up every transaction of a single chain and returns the
// settled ones.
func (r *Reconciler) resolveChain(ctx context.Context, chain Chain, txs []pendingtx.Transaction) ([]settlement, error) {
	var (
		errs        []error
		settlements []settlement
		counts      = make(map[string]uint64)
	)

	for _, tx := range txs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		status, blockNumber, err := r.resolve(ctx, chain, tx, counts)
		if err != nil {
			errs = append(errs, fmt.Errorf("resolving transaction %s on chain %s: %w", tx.Hash, tx.ChainID, err))
			continue
		}

		if status.IsTerminal() {
			settlements = append(settlements, settlement{tx: tx, status: status, blockNumber: blockNumber})
		}
	}

	return settlements, errors.Join(errs...)
}

// resolve returns the current status of tx. counts caches the latest
// transaction count per address for the duration of a batch.
func (r *Reconciler) resolve(ctx context.Context, chain Chain, tx pendingtx.Transaction, counts map[string]uint64) (pendingtx.Status, uint64, error) {
	status, blockNumber, mined, err := r.receiptStatus(ctx, chain, tx.Hash)
	if err != nil || mined {
		return status, blockNumber, err
	}

	if tx.Nonce == nil {
		return pendingtx.StatusSubmitted, 0, nil
	}

	count, ok := counts[tx.Address]
	if !ok {
		err := retry.Do(ctx, r.retry, func() (err error) {
			count, err = chain.TransactionCount(ctx, tx.Address, BlockLatest)
			return err
		})
		if err != nil {
			return "", 0, err
		}
		counts[tx.Address] = count
	}

	if count <= *tx.Nonce {
		return pendingtx.StatusSubmitted, 0, nil
	}

	// The nonce is used. Either this transaction got mined between the two
	// calls or another one with the same nonce replaced it.
	status, blockNumber, mined, err = r.receiptStatus(ctx, chain, tx.Hash)
	if err != nil || mined {
		return status, blockNumber, err
	}

	return pendingtx.StatusDropped, 0, nil
}

func (r *Reconciler) receiptStatus(ctx context.Context, chain Chain, hash string) (pendingtx.Status, uint64, bool, error) {
	var (
		receipt Receipt
		found   bool
	)

	err := retry.Do(ctx, r.retry, func() (err error) {
		receipt, found, err = chain.TransactionReceipt(ctx, hash)
		return err
	})
	if err != nil || !found {
		return pendingtx.StatusSubmitted, 0, false, err
	}

	if receipt.Successful {
		return pendingtx.StatusConfirmed, receipt.BlockNumber, true, nil
	}

	return pendingtx.StatusFailed, receipt.BlockNumber, true, nil
}

// settle untracks each settled transaction and publishes it. A transaction
// already untracked by someone else is skipped silently.
func (r *Reconciler) settle(ctx context.Context, settlements []settlement) error {
	var errs []error
	for _, s := range settlements {
		err := r.service.Untrack(ctx, s.tx.Address, s.tx.Hash)
		if errors.Is(err, pendingtx.ErrTransactionNotFound) {
			continue
		}

		if err != nil {
			errs = append(errs, fmt.Errorf("untracking transaction %s: %w", s.tx.Hash, err))
			continue
		}

		logger.Info(ctx, "pending transaction settled",
			"tx.address", s.tx.Address,
			"tx.hash", s.tx.Hash,
			"tx.chain_id", s.tx.ChainID,
			"tx.status", s.status,
			"tx.block_number", s.blockNumber,
		)

		r.settled.Publish(ctx, pendingtx.Settled{
			Transaction: s.tx,
			Status:      s.status,
			BlockNumber: s.blockNumber,
		})
	}

	return errors.Join(errs...)
}

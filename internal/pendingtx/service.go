package pendingtx

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/pendingwatch/internal/pkg/eventbus"
	"github.com/gabapcia/pendingwatch/internal/pkg/logger"
	"github.com/gabapcia/pendingwatch/internal/pkg/validator"
)

// Service is the entrypoint for reading and mutating pending transactions.
//
// It validates and normalizes input before delegating to the Store, and
// announces every successful mutation with a Changed event so readers can
// react without polling the store.
type Service interface {
	// Track starts tracking tx as pending for tx.Address.
	Track(ctx context.Context, tx Transaction) error

	// Untrack removes the transaction identified by hash from the pending list of address.
	Untrack(ctx context.Context, address, hash string) error

	// List returns the pending transactions of address in submission order.
	List(ctx context.Context, address string) ([]Transaction, error)

	// Lookup finds a pending transaction by hash (case-insensitive).
	Lookup(ctx context.Context, address, hash string) (Transaction, bool, error)

	// Subscribe registers handler to be called after every change to the
	// pending list of address. The returned function cancels the subscription.
	//
	// Stores that implement Feed deliver changes made by other processes too.
	Subscribe(ctx context.Context, address string, handler func(ctx context.Context, address string)) (unsubscribe func(), err error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	store   Store
	changes *eventbus.Bus[Changed]
	now     func() time.Time
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a Service backed by store that publishes Changed events on changes.
// A nil bus gets replaced by a private one.
func New(store Store, changes *eventbus.Bus[Changed]) *service {
	if changes == nil {
		changes = eventbus.New[Changed]()
	}

	return &service{
		store:   store,
		changes: changes,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// buildTransaction validates tx and returns it in canonical form.
func (s *service) buildTransaction(tx Transaction) (Transaction, error) {
	if err := validator.Validate(tx); err != nil {
		return Transaction{}, err
	}

	hash, ok := NormalizeHash(tx.Hash)
	if !ok {
		return Transaction{}, fmt.Errorf("%w: malformed hash %q", validator.ErrValidation, tx.Hash)
	}

	tx.Hash = hash
	tx.Address = NormalizeAddress(tx.Address)

	if tx.Status == "" {
		tx.Status = StatusSubmitted
	}

	if tx.SubmittedAt.IsZero() {
		tx.SubmittedAt = s.now()
	}

	return tx, nil
}

// Track validates tx, stores it and publishes a Changed event.
func (s *service) Track(ctx context.Context, tx Transaction) error {
	tx, err := s.buildTransaction(tx)
	if err != nil {
		return err
	}

	if err := s.store.Add(ctx, tx); err != nil {
		return err
	}

	logger.Debug(ctx, "pending transaction tracked",
		"tx.address", tx.Address,
		"tx.hash", tx.Hash,
		"tx.chain_id", tx.ChainID,
	)

	s.changes.Publish(ctx, Changed{Address: tx.Address})
	return nil
}

// Untrack removes a pending transaction and publishes a Changed event.
// A malformed hash is reported as ErrTransactionNotFound.
func (s *service) Untrack(ctx context.Context, address, hash string) error {
	normalized, ok := NormalizeHash(hash)
	if !ok {
		return ErrTransactionNotFound
	}

	address = NormalizeAddress(address)
	if err := s.store.Remove(ctx, address, normalized); err != nil {
		return err
	}

	logger.Debug(ctx, "pending transaction untracked",
		"tx.address", address,
		"tx.hash", normalized,
	)

	s.changes.Publish(ctx, Changed{Address: address})
	return nil
}

func (s *service) List(ctx context.Context, address string) ([]Transaction, error) {
	return s.store.List(ctx, NormalizeAddress(address))
}

func (s *service) Lookup(ctx context.Context, address, hash string) (Transaction, bool, error) {
	txs, err := s.List(ctx, address)
	if err != nil {
		return Transaction{}, false, err
	}

	tx, found := FindPendingByHash(txs, hash)
	return tx, found, nil
}

func (s *service) Subscribe(ctx context.Context, address string, handler func(ctx context.Context, address string)) (func(), error) {
	address = NormalizeAddress(address)

	if feed, ok := s.store.(Feed); ok {
		return feed.Watch(ctx, address, handler)
	}

	id := s.changes.Subscribe(func(ctx context.Context, event Changed) {
		if event.Address == address {
			handler(ctx, address)
		}
	})

	return func() {
		s.changes.Unsubscribe(id)
	}, nil
}

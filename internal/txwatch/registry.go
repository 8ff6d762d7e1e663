package txwatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/pendingwatch/internal/pendingtx"
	"github.com/gabapcia/pendingwatch/internal/pkg/logger"
	"github.com/gabapcia/pendingwatch/internal/pkg/validator"
)

// ErrRegistryClosed is returned by Acquire after Close.
var ErrRegistryClosed = errors.New("watch registry closed")

// binding ties a running Coordinator to the change feed of its address.
//
// It enters the registry before it is bound so acquirers of other addresses
// never wait on a slow store. Fields other than refs are written once by the
// acquirer that created it and read only after ready is closed.
type binding struct {
	ready chan struct{}
	err   error

	coordinator *Coordinator
	unsubscribe func()
	stopResync  func()

	refs     int // guarded by Registry.mu
	shutdown sync.Once
}

func newBinding() *binding {
	return &binding{ready: make(chan struct{})}
}

// bound reports whether the binding finished successfully.
func (b *binding) bound() bool {
	select {
	case <-b.ready:
		return b.err == nil
	default:
		return false
	}
}

// teardown stops the coordinator once binding finished. A failed binding
// already released everything it acquired.
func (b *binding) teardown() {
	b.shutdown.Do(func() {
		<-b.ready
		if b.err != nil {
			return
		}

		b.stopResync()
		b.unsubscribe()
		b.coordinator.Close()
	})
}

// Registry shares a single Coordinator per address between all its users.
//
// The first Acquire of an address starts a Coordinator fed by the pending
// transaction service: it is seeded with the current list and refreshed after
// every change announced for that address, and on the WithResync period when
// one is configured. The last release stops it.
type Registry struct {
	service pendingtx.Service
	watch   WatchFunc
	opts    []Option

	mu       sync.Mutex
	closed   bool
	bindings map[string]*binding
}

// NewRegistry creates a Registry whose coordinators call watch and are built with opts.
func NewRegistry(service pendingtx.Service, watch WatchFunc, opts ...Option) *Registry {
	return &Registry{
		service:  service,
		watch:    watch,
		opts:     opts,
		bindings: make(map[string]*binding),
	}
}

// Acquire ensures the pending transactions of address are being watched and
// returns a function that gives up this interest. The watch stops once every
// acquirer has released it. Calling release more than once has no effect.
//
// Concurrent acquirers of an address share the first one's binding and wait
// for it, or for their own ctx. The coordinator outlives ctx; only release or
// Close stop it.
func (r *Registry) Acquire(ctx context.Context, address string) (release func(), err error) {
	address = pendingtx.NormalizeAddress(address)
	if address == "" {
		return nil, fmt.Errorf("%w: empty address", validator.ErrValidation)
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRegistryClosed
	}

	b, found := r.bindings[address]
	if !found {
		b = newBinding()
		r.bindings[address] = b
	}
	b.refs++
	r.mu.Unlock()

	if found {
		select {
		case <-b.ready:
		case <-ctx.Done():
			r.release(address, b)
			return nil, ctx.Err()
		}
	} else if err := r.bind(ctx, address, b); err != nil {
		r.forget(address, b)
	}

	if b.err != nil {
		r.release(address, b)
		return nil, b.err
	}

	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		r.release(address, b)
		return nil, ErrRegistryClosed
	}

	var once sync.Once
	return func() {
		once.Do(func() { r.release(address, b) })
	}, nil
}

// bind starts a Coordinator for address and closes b.ready with the outcome.
// The change subscription is set up before the initial listing so no change
// can fall between the two.
func (r *Registry) bind(ctx context.Context, address string, b *binding) (err error) {
	defer func() {
		b.err = err
		close(b.ready)
	}()

	coordinator := New(address, r.watch, r.opts...)

	unsubscribe, err := r.service.Subscribe(ctx, address, func(ctx context.Context, address string) {
		r.refresh(ctx, coordinator, address)
	})
	if err != nil {
		return err
	}

	txs, err := r.service.List(ctx, address)
	if err != nil {
		unsubscribe()
		return err
	}
	coordinator.Update(txs)

	if err := coordinator.Start(context.WithoutCancel(ctx)); err != nil {
		unsubscribe()
		return err
	}

	b.coordinator = coordinator
	b.unsubscribe = unsubscribe
	b.stopResync = r.resync(context.WithoutCancel(ctx), coordinator, address)

	logger.Info(ctx, "watching pending transactions", "tx.address", address, "tx.pending", len(txs))
	return nil
}

// forget drops a failed binding so the next Acquire tries again instead of
// inheriting its error.
func (r *Registry) forget(address string, b *binding) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.bindings[address] == b {
		delete(r.bindings, address)
	}
}

// refresh reloads the pending list of address into coordinator. On failure
// the coordinator keeps its previous snapshot.
func (r *Registry) refresh(ctx context.Context, coordinator *Coordinator, address string) {
	txs, err := r.service.List(ctx, address)
	if err != nil {
		logger.Warn(ctx, "failed to refresh pending transactions", "tx.address", address, "error", err)
		return
	}

	coordinator.Update(txs)
}

// resync refreshes coordinator on the configured period until the returned
// function is called. It is a no-op when no period is configured.
func (r *Registry) resync(ctx context.Context, coordinator *Coordinator, address string) (stop func()) {
	every := coordinator.cfg.resync
	if every <= 0 {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.refresh(ctx, coordinator, address)
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

func (r *Registry) release(address string, b *binding) {
	r.mu.Lock()
	b.refs--
	if b.refs > 0 {
		r.mu.Unlock()
		return
	}

	if r.bindings[address] == b {
		delete(r.bindings, address)
	}
	r.mu.Unlock()

	b.teardown()
}

// Watching reports whether address currently has a running coordinator.
func (r *Registry) Watching(address string) bool {
	r.mu.Lock()
	b, ok := r.bindings[pendingtx.NormalizeAddress(address)]
	r.mu.Unlock()

	return ok && b.bound()
}

// Close stops every coordinator, waiting for bindings still in progress.
// Later Acquire calls fail with ErrRegistryClosed.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	bindings := r.bindings
	r.bindings = make(map[string]*binding)
	r.mu.Unlock()

	for _, b := range bindings {
		b.teardown()
	}
}

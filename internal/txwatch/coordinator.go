// Package txwatch drives the periodic checking of an account's pending
// transactions.
//
// A Coordinator owns the schedule for one address: while the address has
// pending transactions it calls a WatchFunc on a fixed interval with the
// latest snapshot, never runs two calls at once, and cancels the outstanding
// call when the snapshot changes to a different set of hashes or becomes
// empty. A Registry shares one Coordinator per address between any number of
// interested callers.
package txwatch

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/pendingwatch/internal/pendingtx"
	"github.com/gabapcia/pendingwatch/internal/pkg/logger"
	"github.com/gabapcia/pendingwatch/internal/pkg/x/chflow"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultInterval is the time between two watch cycles.
	DefaultInterval = time.Second

	// DefaultMaxWatchDuration bounds a single watch cycle.
	DefaultMaxWatchDuration = 30 * time.Second

	// DefaultFailureThreshold is the failure streak that triggers the failure handler.
	DefaultFailureThreshold = 5

	instrumentationName = "github.com/gabapcia/pendingwatch/internal/txwatch"
)

var (
	// ErrAlreadyStarted is returned by Start when the coordinator is already running.
	ErrAlreadyStarted = errors.New("coordinator already started")

	// ErrClosed is returned by Start after Close.
	ErrClosed = errors.New("coordinator closed")
)

// WatchFunc checks the on-chain state of txs.
//
// ctx is cancelled when the coordinator no longer needs the result: the
// pending set changed, became empty, the cycle exceeded its maximum
// duration, or the coordinator was closed. Implementations must honor it and
// should pass it to every I/O call they make.
type WatchFunc func(ctx context.Context, txs []pendingtx.Transaction) error

type outcome string

const (
	outcomeSuccess  outcome = "success"
	outcomeFailure  outcome = "failure"
	outcomeCanceled outcome = "canceled"
)

// cycleResult is what a finished watch cycle reports back to the run loop.
type cycleResult struct {
	id      string
	outcome outcome
	err     error
}

type config struct {
	interval         time.Duration
	maxWatchDuration time.Duration
	failureThreshold int
	resync           time.Duration
	onFailure        FailureHandler
	meterProvider    metric.MeterProvider
	tracerProvider   trace.TracerProvider
}

// Option configures a Coordinator.
type Option func(*config)

// WithInterval sets the time between two watch cycles. Non-positive values
// are ignored. Default: DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithMaxWatchDuration sets the deadline given to every watch cycle.
// Zero disables the deadline. Default: DefaultMaxWatchDuration.
func WithMaxWatchDuration(d time.Duration) Option {
	return func(c *config) {
		c.maxWatchDuration = max(d, 0)
	}
}

// WithFailureThreshold sets how many consecutive failed cycles trigger the
// failure handler. Zero disables the handler. Default: DefaultFailureThreshold.
func WithFailureThreshold(n int) Option {
	return func(c *config) {
		c.failureThreshold = max(n, 0)
	}
}

// WithResync makes a Registry reload the pending list of every watched
// address on this period, in addition to reacting to change notifications,
// so a missed notification delays a change instead of losing it. Zero
// disables it. Default: disabled.
func WithResync(d time.Duration) Option {
	return func(c *config) {
		c.resync = max(d, 0)
	}
}

// WithFailureHandler replaces the default failure handler, which logs the
// failure at error level.
func WithFailureHandler(h FailureHandler) Option {
	return func(c *config) {
		if h != nil {
			c.onFailure = h
		}
	}
}

// WithMeterProvider sets the provider of the coordinator's metrics.
// Default: the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithTracerProvider sets the provider of the coordinator's cycle spans.
// Default: the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// Coordinator schedules the watch cycles of a single address.
//
// All scheduling state lives in the run loop goroutine started by Start;
// Update and Close only talk to it through channels and a cancel function.
type Coordinator struct {
	address string
	watch   WatchFunc
	cfg     config

	updates chan []pendingtx.Transaction // latest snapshot wins
	results chan cycleResult             // at most one cycle is outstanding

	mu      sync.Mutex
	started bool
	closed  bool
	stop    context.CancelFunc
	exited  chan struct{}

	tracer       trace.Tracer
	cycles       metric.Int64Counter
	skippedTicks metric.Int64Counter
}

// New creates a Coordinator that calls watch for the pending transactions of
// address. Nothing happens until Start is called and a non-empty snapshot is
// delivered through Update.
func New(address string, watch WatchFunc, opts ...Option) *Coordinator {
	cfg := config{
		interval:         DefaultInterval,
		maxWatchDuration: DefaultMaxWatchDuration,
		failureThreshold: DefaultFailureThreshold,
		onFailure:        defaultOnWatchFailure,
		meterProvider:    otel.GetMeterProvider(),
		tracerProvider:   otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := cfg.meterProvider.Meter(instrumentationName)

	cycles, err := meter.Int64Counter("txwatch.cycles",
		metric.WithDescription("Watch cycles run, by outcome."),
	)
	if err != nil {
		cycles = noop.Int64Counter{}
	}

	skippedTicks, err := meter.Int64Counter("txwatch.skipped_ticks",
		metric.WithDescription("Ticks skipped because the previous cycle was still running."),
	)
	if err != nil {
		skippedTicks = noop.Int64Counter{}
	}

	return &Coordinator{
		address:      pendingtx.NormalizeAddress(address),
		watch:        watch,
		cfg:          cfg,
		updates:      make(chan []pendingtx.Transaction, 1),
		results:      make(chan cycleResult, 1),
		exited:       make(chan struct{}),
		tracer:       cfg.tracerProvider.Tracer(instrumentationName),
		cycles:       cycles,
		skippedTicks: skippedTicks,
	}
}

// Address returns the normalized address the coordinator watches.
func (c *Coordinator) Address() string {
	return c.address
}

// Start launches the run loop. The loop stops when ctx is done or Close is called.
func (c *Coordinator) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	if c.started {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	c.stop = cancel
	c.started = true

	go c.run(ctx)
	return nil
}

// Update delivers a new snapshot of the address's pending transactions.
// It never blocks; a snapshot not yet consumed by the run loop is replaced.
// Calls made after Close are ignored.
func (c *Coordinator) Update(txs []pendingtx.Transaction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	chflow.Replace(c.updates, slices.Clone(txs))
}

// Close cancels the outstanding cycle, stops the schedule and waits for the
// run loop to exit. It does not wait for a WatchFunc that ignores its context.
// Close is safe to call more than once.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.closed = true
	if c.stop != nil {
		c.stop()
	}
	started := c.started
	c.mu.Unlock()

	if started {
		<-c.exited
	}
}

func (c *Coordinator) run(ctx context.Context) {
	defer close(c.exited)

	var (
		state    cycleState
		snapshot []pendingtx.Transaction
		failures []error
	)
	defer state.teardown()

	for {
		select {
		case <-ctx.Done():
			return
		case txs := <-c.updates:
			snapshot = c.applySnapshot(&state, snapshot, txs)
		case <-state.tick():
			c.startCycle(ctx, &state, snapshot)
		case result := <-c.results:
			failures = c.finishCycle(ctx, &state, result, failures)
		}
	}
}

// applySnapshot makes next the current snapshot and adjusts the schedule.
func (c *Coordinator) applySnapshot(state *cycleState, current, next []pendingtx.Transaction) []pendingtx.Transaction {
	if len(next) == 0 {
		state.teardown()
		return nil
	}

	if state.processing && !pendingtx.SameHashes(current, next) {
		state.cancel()
	}

	state.startTicker(c.cfg.interval)
	return next
}

func (c *Coordinator) startCycle(ctx context.Context, state *cycleState, snapshot []pendingtx.Transaction) {
	if state.processing {
		c.skippedTicks.Add(ctx, 1, metric.WithAttributes(attribute.String("tx.address", c.address)))
		logger.Debug(ctx, "watch tick skipped, previous cycle still running", "tx.address", c.address)
		return
	}

	var (
		cycleCtx context.Context
		cancel   context.CancelFunc
	)
	if c.cfg.maxWatchDuration > 0 {
		cycleCtx, cancel = context.WithTimeout(ctx, c.cfg.maxWatchDuration)
	} else {
		cycleCtx, cancel = context.WithCancel(ctx)
	}

	state.processing = true
	state.cancelCycle = cancel

	go c.runCycle(cycleCtx, newCycleID(), slices.Clone(snapshot))
}

// runCycle calls the watch function once and reports the result to the run loop.
func (c *Coordinator) runCycle(ctx context.Context, id string, txs []pendingtx.Transaction) {
	ctx, span := c.tracer.Start(ctx, "txwatch.cycle", trace.WithAttributes(
		attribute.String("tx.address", c.address),
		attribute.String("cycle.id", id),
		attribute.Int("cycle.transactions", len(txs)),
	))

	err := c.invoke(ctx, txs)
	result := cycleResult{id: id, outcome: classify(ctx, err), err: err}

	c.cycles.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tx.address", c.address),
		attribute.String("outcome", string(result.outcome)),
	))

	if result.outcome == outcomeFailure {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	c.results <- result
}

// invoke calls the watch function, turning a panic into an error.
func (c *Coordinator) invoke(ctx context.Context, txs []pendingtx.Transaction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWatchPanicked, r)
		}
	}()

	return c.watch(ctx, txs)
}

// classify tells apart a cancellation requested by the coordinator from a
// real failure. A deadline hit by a hung cycle is a failure.
func classify(ctx context.Context, err error) outcome {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, context.Canceled) && errors.Is(ctx.Err(), context.Canceled):
		return outcomeCanceled
	default:
		return outcomeFailure
	}
}

// finishCycle clears the reentry guard and updates the failure streak.
func (c *Coordinator) finishCycle(ctx context.Context, state *cycleState, result cycleResult, failures []error) []error {
	state.processing = false
	state.cancel()

	switch result.outcome {
	case outcomeSuccess:
		return nil
	case outcomeCanceled:
		logger.Debug(ctx, "watch cycle canceled", "tx.address", c.address, "cycle.id", result.id)
		return failures
	}

	logger.Warn(ctx, "watch cycle failed",
		"tx.address", c.address,
		"cycle.id", result.id,
		"error", result.err,
	)

	failures = append(failures, result.err)
	if c.cfg.failureThreshold > 0 && len(failures) >= c.cfg.failureThreshold {
		c.cfg.onFailure(ctx, WatchFailure{
			Address:             c.address,
			ConsecutiveFailures: len(failures),
			Errors:              failures,
		})
		return nil
	}

	return failures
}

func newCycleID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

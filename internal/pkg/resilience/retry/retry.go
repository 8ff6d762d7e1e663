// Package retry provides a configurable retry mechanism for operations that may fail temporarily,
// such as JSON-RPC calls against a node that is briefly unavailable.
// It wraps the retry-go package from Avast and exposes a small interface with functional
// options for customizing retry behavior.
//
// Basic usage:
//
//	r := retry.New()
//	errs := r.Execute(ctx, func() error {
//	    return chain.Ping(ctx)
//	})
//	if errs != nil {
//	    return errors.Join(errs...)
//	}
package retry

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs the given function with configured retry logic.
	//
	// The context allows for cancellation. If the context is canceled while
	// waiting between attempts, retrying stops and the context error is
	// included in the returned slice.
	//
	// The operation should be idempotent and return nil on success.
	//
	// Execute returns nil if the operation succeeds within the configured
	// number of attempts, otherwise every error collected along the way,
	// oldest first.
	Execute(ctx context.Context, operation func() error) []error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts uint             // maximum number of attempts, including the first one
	delay    time.Duration    // base delay between attempts
	maxDelay time.Duration    // cap for the exponential backoff
	retryIf  func(error) bool // reports whether an error is worth another attempt
}

// Retryable is the default retry predicate. Context errors are final: the
// caller gave up on the result, so further attempts are wasted calls.
func Retryable(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates and returns a Retry implementation configured with
// the provided options.
//
// Default configuration:
//   - attempts: 3 (1 initial attempt + 2 retries)
//   - delay:    1 second (grows with exponential backoff)
//   - maxDelay: 5 seconds
//   - retryIf:  Retryable
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    1 * time.Second,
		maxDelay: 5 * time.Second,
		retryIf:  Retryable,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) []error {
	err := retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(false),
		retry.RetryIf(r.cfg.retryIf),
		retry.Context(ctx),
	)
	if err == nil {
		return nil
	}

	var retryErr retry.Error
	if errors.As(err, &retryErr) {
		return retryErr.WrappedErrors()
	}

	return []error{err}
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
// Values below one are raised to one. Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = max(n, 1)
	}
}

// WithDelay sets the base delay between retry attempts.
// Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay between attempts.
// Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithRetryIf replaces the predicate deciding whether a failed attempt is
// retried. A nil predicate is ignored. Default: Retryable.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		if f != nil {
			c.retryIf = f
		}
	}
}

// Do runs operation through r and joins the collected errors. A nil r runs
// operation once, so callers can keep retries optional.
func Do(ctx context.Context, r Retry, operation func() error) error {
	if r == nil {
		return operation()
	}

	return errors.Join(r.Execute(ctx, operation)...)
}

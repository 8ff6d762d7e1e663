package txwatch

import (
	"context"
	"errors"

	"github.com/gabapcia/pendingwatch/internal/pkg/logger"
)

// ErrWatchPanicked wraps the value recovered from a panicking WatchFunc.
var ErrWatchPanicked = errors.New("watch function panicked")

// WatchFailure reports that the watch function of an address kept failing.
//
// It is delivered to the failure handler once ConsecutiveFailures reaches the
// configured threshold. Errors holds the error of every failed cycle in the
// streak, oldest first; use errors.Join(failure.Errors...) to log them as one.
type WatchFailure struct {
	Address             string  // address whose watch keeps failing
	ConsecutiveFailures int     // length of the failure streak
	Errors              []error // error of each failed cycle in the streak
}

// FailureHandler receives WatchFailure reports. It runs on the coordinator's
// loop goroutine and must not block.
type FailureHandler func(ctx context.Context, failure WatchFailure)

func defaultOnWatchFailure(ctx context.Context, failure WatchFailure) {
	logger.Error(ctx, "pending transaction watch keeps failing",
		"tx.address", failure.Address,
		"watch.consecutive_failures", failure.ConsecutiveFailures,
		"watch.errors", failure.Errors,
	)
}

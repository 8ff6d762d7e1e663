package txwatch

import (
	"context"
	"time"
)

// cycleState is the per-coordinator scheduling state. It is only ever
// touched by the run loop goroutine.
type cycleState struct {
	processing  bool               // a watch invocation has not returned yet
	cancelCycle context.CancelFunc // cancels the outstanding invocation
	ticker      *time.Ticker       // nil while the pending list is empty
}

// tick returns the ticker channel, or nil (which blocks forever in a select)
// when no ticker is running.
func (s *cycleState) tick() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}

	return s.ticker.C
}

func (s *cycleState) startTicker(interval time.Duration) {
	if s.ticker == nil {
		s.ticker = time.NewTicker(interval)
	}
}

func (s *cycleState) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

// cancel signals the outstanding invocation, if any. The processing flag is
// left alone: it only clears once the invocation actually returns.
func (s *cycleState) cancel() {
	if s.cancelCycle != nil {
		s.cancelCycle()
		s.cancelCycle = nil
	}
}

func (s *cycleState) teardown() {
	s.cancel()
	s.stopTicker()
}

// Package chflow holds small helpers for channel hand-offs between goroutines.
package chflow

// Replace delivers data on a buffered channel without blocking, discarding
// values still waiting in the buffer so the receiver only ever sees the most
// recent one. It is meant for "latest snapshot wins" channels with a single
// sender; with several concurrent senders a value may still be dropped in
// favor of another sender's newer one, never blocked on.
func Replace[T any](ch chan T, data T) {
	for {
		select {
		case ch <- data:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}

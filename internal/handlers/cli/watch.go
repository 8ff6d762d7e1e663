package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/gabapcia/pendingwatch/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// ErrStoreNotShared is returned by start when the pending transactions are
// kept in process memory, where the track and untrack commands of other
// processes cannot reach them.
var ErrStoreNotShared = errors.New("start needs a shared store: set PENDINGWATCH_REDIS_ADDR")

// startWatchingCommand returns a CLI command that watches the pending
// transactions of the given addresses until the process is interrupted.
//
// Usage example:
//
//	pendingwatch start --address 0xABC... --address 0xDEF...
func startWatchingCommand(w Watcher, shared bool) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Watches the pending transactions of the given addresses and settles them as they confirm or drop.",
		Usage:       "Runs the watchers until Ctrl+C or a termination signal.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "address",
				Usage:    "Account address to watch (repeatable)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if !shared {
				return ErrStoreNotShared
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			for _, address := range c.StringSlice("address") {
				release, err := w.Acquire(ctx, address)
				if err != nil {
					return err
				}
				defer release()
			}

			<-ctx.Done()
			logger.Info(ctx, "shutting down watchers")
			return nil
		},
	}
}

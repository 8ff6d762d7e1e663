package cli

import (
	"context"
	"os"

	"github.com/gabapcia/pendingwatch/internal/pendingtx"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// Watcher keeps the pending transactions of an address under watch until released.
type Watcher interface {
	Acquire(ctx context.Context, address string) (release func(), err error)
}

// NonceResolver computes the next usable nonce of an account.
type NonceResolver interface {
	Next(ctx context.Context, address, chainID string) (uint64, error)
}

// BalanceReader fetches the native balance of an account.
type BalanceReader interface {
	Refresh(ctx context.Context, address, chainID string) (decimal.Decimal, error)
}

// Dependencies groups the services the commands operate on.
type Dependencies struct {
	Transactions pendingtx.Service
	Watcher      Watcher
	Nonces       NonceResolver
	Balances     BalanceReader

	// SharedStore reports whether the pending transactions live in a store
	// other processes can reach. Without it, start would never see what the
	// other commands track, so it refuses to run.
	SharedStore bool
}

// newApp builds the root command with every subcommand registered.
func newApp(deps Dependencies) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "pendingwatch",
		Description:           "Command-line interface for tracking and watching pending blockchain transactions.",
		Usage:                 "pendingwatch [command] [flags]",
		Commands: []*cli.Command{
			startWatchingCommand(deps.Watcher, deps.SharedStore),
			trackTransactionCommand(deps.Transactions),
			untrackTransactionCommand(deps.Transactions),
			listTransactionsCommand(deps.Transactions),
			nextNonceCommand(deps.Nonces),
			balanceCommand(deps.Balances),
		},
	}
}

// Run initializes and executes the pendingwatch CLI application.
//
// It registers all available commands:
//
//   - `start`: Watches the pending transactions of one or more addresses.
//   - `track`: Records a submitted transaction as pending.
//   - `untrack`: Removes a transaction from the pending list.
//   - `list`: Prints the pending transactions of an address.
//   - `nonce`: Prints the next nonce an address should use.
//   - `balance`: Prints the native balance of an address.
func Run(ctx context.Context, deps Dependencies) error {
	return newApp(deps).Run(ctx, os.Args)
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gabapcia/pendingwatch/internal/pendingtx"

	"github.com/urfave/cli/v3"
)

// trackTransactionCommand returns a CLI command that records a submitted
// transaction as pending for an address.
//
// Usage example:
//
//	pendingwatch track --address 0xABC... --hash 0x123... --chain 1 --nonce 42
func trackTransactionCommand(s pendingtx.Service) *cli.Command {
	return &cli.Command{
		Name:        "track",
		Description: "Records a submitted transaction as pending so it gets watched until it settles.",
		Usage:       "Tracks a pending transaction. Must provide address, hash and chain.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Account address that sent the transaction",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "hash",
				Usage:    "Transaction hash",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "chain",
				Usage:    "Chain identifier (e.g., 1 for Ethereum mainnet)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "nonce",
				Usage: "Transaction nonce, when known",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			tx := pendingtx.Transaction{
				Address: c.String("address"),
				Hash:    c.String("hash"),
				ChainID: c.String("chain"),
			}

			if c.IsSet("nonce") {
				nonce, err := strconv.ParseUint(c.String("nonce"), 10, 64)
				if err != nil {
					return fmt.Errorf("invalid nonce: %w", err)
				}
				tx.Nonce = &nonce
			}

			return s.Track(ctx, tx)
		},
	}
}

// untrackTransactionCommand returns a CLI command that removes a transaction
// from the pending list of an address.
//
// Usage example:
//
//	pendingwatch untrack --address 0xABC... --hash 0x123...
func untrackTransactionCommand(s pendingtx.Service) *cli.Command {
	return &cli.Command{
		Name:        "untrack",
		Description: "Removes a transaction from the pending list of an address.",
		Usage:       "Stops tracking a pending transaction. Must provide both address and hash.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Account address that sent the transaction",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "hash",
				Usage:    "Transaction hash",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return s.Untrack(ctx, c.String("address"), c.String("hash"))
		},
	}
}

// listTransactionsCommand returns a CLI command that prints the pending
// transactions of an address as JSON, oldest first.
//
// Usage example:
//
//	pendingwatch list --address 0xABC...
func listTransactionsCommand(s pendingtx.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "Prints the pending transactions of an address as JSON, oldest first.",
		Usage:       "Lists pending transactions. Must provide an address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Account address",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			txs, err := s.List(ctx, c.String("address"))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.Root().Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(txs)
		},
	}
}

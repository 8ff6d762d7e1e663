package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// accountFlags are the flags identifying an account on a chain.
func accountFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "address",
			Usage:    "Account address",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "chain",
			Usage:    "Chain identifier (e.g., 1 for Ethereum mainnet)",
			Required: true,
		},
	}
}

// nextNonceCommand returns a CLI command that prints the nonce the next
// transaction of an address should use.
//
// Usage example:
//
//	pendingwatch nonce --address 0xABC... --chain 1
func nextNonceCommand(r NonceResolver) *cli.Command {
	return &cli.Command{
		Name:        "nonce",
		Description: "Prints the next nonce of an address, accounting for its pending transactions.",
		Usage:       "Resolves the next nonce. Must provide both address and chain.",
		Flags:       accountFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			next, err := r.Next(ctx, c.String("address"), c.String("chain"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, next)
			return err
		},
	}
}

// balanceCommand returns a CLI command that prints the native balance of an
// address in whole coins.
//
// Usage example:
//
//	pendingwatch balance --address 0xABC... --chain 1
func balanceCommand(b BalanceReader) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Prints the native balance of an address in whole coins.",
		Usage:       "Fetches the balance. Must provide both address and chain.",
		Flags:       accountFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			amount, err := b.Refresh(ctx, c.String("address"), c.String("chain"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, amount.String())
			return err
		},
	}
}

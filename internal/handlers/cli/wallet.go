package cli

import (
	"context"
	"errors"

	"github.com/gabapcia/walletsync/internal/dashboard"
	"github.com/gabapcia/walletsync/internal/walletapi"

	"github.com/urfave/cli/v3"
)

// noWalletHint is printed instead of an error when the user has no wallet.
const noWalletHint = "You do not have a wallet yet. Run 'walletsync wallet generate' to create one."

// walletCommand groups the wallet management subcommands.
//
// Usage example:
//
//	walletsync wallet generate
func (h *handler) walletCommand() *cli.Command {
	return &cli.Command{
		Name:        "wallet",
		Description: "Manage the wallet of the logged in user.",
		Usage:       "Wallet management.",
		Commands: []*cli.Command{
			{
				Name:        "generate",
				Description: "Create the wallet of the logged in user and show its mnemonic once.",
				Usage:       "Generates a new wallet.",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := h.requireSession(ctx); err != nil {
						return err
					}

					wallet, err := dashboard.NewWalletGenerator(h.wallet, nil).Generate(ctx)
					if err != nil {
						return h.apiError(ctx, err)
					}

					renderWallet(h.out, wallet)
					return nil
				},
			},
		},
	}
}

// balanceCommand prints the balance of the user's wallet.
func (h *handler) balanceCommand() *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Show the balance of the logged in user's wallet.",
		Usage:       "Prints the wallet balance.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := h.requireSession(ctx); err != nil {
				return err
			}

			balance, err := h.wallet.WalletBalance(ctx)
			if errors.Is(err, walletapi.ErrNoWallet) {
				h.println(noWalletHint)
				return nil
			}
			if err != nil {
				return h.apiError(ctx, err)
			}

			renderBalance(h.out, balance, h.loc)
			return nil
		},
	}
}

// addressBalanceCommand prints the balance of any address.
//
// Usage example:
//
//	walletsync address-balance 0xABC123...
func (h *handler) addressBalanceCommand() *cli.Command {
	return &cli.Command{
		Name:        "address-balance",
		Description: "Show the balance of any address on the wallet network.",
		Usage:       "Prints the balance of the given address.",
		ArgsUsage:   "<address>",
		Action: func(ctx context.Context, c *cli.Command) error {
			address := c.Args().First()
			if address == "" {
				return errors.New("an address is required")
			}

			if err := h.requireSession(ctx); err != nil {
				return err
			}

			balance, err := h.wallet.AddressBalance(ctx, address)
			if err != nil {
				return h.apiError(ctx, err)
			}

			renderBalance(h.out, balance, h.loc)
			return nil
		},
	}
}

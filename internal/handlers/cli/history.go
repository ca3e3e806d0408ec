package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/walletsync/internal/dashboard"
	"github.com/gabapcia/walletsync/internal/walletapi"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// historyCommand prints one page of the transaction history.
//
// Usage example:
//
//	walletsync history --page 2 --page-size 20
func (h *handler) historyCommand() *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "List the transactions of the logged in user's wallet, newest first.",
		Usage:       "Prints one page of the transaction history.",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "page", Usage: "Page number, starting at 1", Value: 1},
			&cli.IntFlag{Name: "page-size", Usage: "Transactions per page", Value: dashboard.DefaultPageSize},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				page     = int(c.Int("page"))
				pageSize = int(c.Int("page-size"))
			)
			if page < 1 || pageSize < 1 {
				return errors.New("page and page size must be positive")
			}

			if err := h.requireSession(ctx); err != nil {
				return err
			}

			// The balance only provides the wallet address the directions
			// are relative to.
			var (
				balance walletapi.WalletBalance
				txs     []walletapi.Transaction
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				balance, err = h.wallet.WalletBalance(gctx)
				if errors.Is(err, walletapi.ErrNoWallet) {
					return nil
				}
				return err
			})
			g.Go(func() error {
				var err error
				txs, err = h.wallet.Transactions(gctx, page, pageSize)
				return err
			})
			if err := g.Wait(); err != nil {
				return h.apiError(ctx, err)
			}

			renderHistory(h.out, txs, balance.Address, h.loc)
			renderPage(h.out, page, page > 1, len(txs) >= pageSize)
			return nil
		},
	}
}

// transactionCommand prints the details of one transaction.
//
// Usage example:
//
//	walletsync tx 0xHASH...
func (h *handler) transactionCommand() *cli.Command {
	return &cli.Command{
		Name:        "tx",
		Description: "Show the details of a transaction.",
		Usage:       "Prints one transaction.",
		ArgsUsage:   "<hash>",
		Action: func(ctx context.Context, c *cli.Command) error {
			hash := c.Args().First()
			if hash == "" {
				return errors.New("a transaction hash is required")
			}

			if err := h.requireSession(ctx); err != nil {
				return err
			}

			tx, err := h.wallet.Transaction(ctx, hash)
			if errors.Is(err, walletapi.ErrNotFound) {
				return fmt.Errorf("transaction %s not found, it may not be indexed yet", hash)
			}
			if err != nil {
				return h.apiError(ctx, err)
			}

			renderTransaction(h.out, tx, h.loc)
			return nil
		},
	}
}

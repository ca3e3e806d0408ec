package cli

import (
	"context"
	"strings"

	"github.com/gabapcia/walletsync/internal/dashboard"
	"github.com/gabapcia/walletsync/internal/pkg/x/chflow"
	"github.com/gabapcia/walletsync/internal/walletapi"

	"github.com/urfave/cli/v3"
)

// transferCommand sends funds from the user's wallet. With --wait it keeps
// running until the delayed history refresh has shown whether the transfer
// was indexed.
//
// Usage example:
//
//	walletsync transfer --to 0xABC123... --amount 0.01 --memo rent --wait
func (h *handler) transferCommand() *cli.Command {
	return &cli.Command{
		Name:        "transfer",
		Description: "Send ether from the logged in user's wallet. The transfer is never retried automatically.",
		Usage:       "Sends funds to an address.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "to", Usage: "Destination address"},
			&cli.StringFlag{Name: "amount", Usage: "Amount in ether"},
			&cli.StringFlag{Name: "memo", Usage: "Optional note"},
			&cli.BoolFlag{Name: "wait", Usage: "Wait for the transfer to show up in the history"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := h.requireSession(ctx); err != nil {
				return err
			}

			var coordinator dashboard.Coordinator
			var listener dashboard.SettlementListener
			if c.Bool("wait") {
				coordinator = dashboard.NewCoordinator(h.wallet, h.dashboardOpts...)
				defer coordinator.Close()
				listener = coordinator
			}

			flow := dashboard.NewTransferFlow(h.wallet, listener,
				dashboard.WithTransitionHook(func(_, to dashboard.TransferState) {
					if to == dashboard.TransferSubmitting {
						h.println("Submitting transfer...")
					}
				}),
			)
			flow.SetToAddress(c.String("to"))
			flow.SetAmountInput(c.String("amount"))
			flow.SetMemo(c.String("memo"))

			result, err := flow.Submit(ctx)
			if err != nil {
				return h.apiError(ctx, err)
			}

			h.println(flow.Snapshot().Success)
			h.printf("Explorer: %s\n", walletapi.ExplorerURL(result.Hash))

			if coordinator == nil {
				return nil
			}

			h.println("Waiting for the transaction to be indexed...")
			s := waitSettled(ctx, coordinator)

			switch {
			case s.History.Err != nil:
				h.printf("Could not refresh the history: %s\n", walletapi.Message(s.History.Err))
			case containsTransaction(s.History.Data, result.Hash):
				h.println("The transfer is now in your history.")
			default:
				h.printf("The transfer is not indexed yet. Check later with 'walletsync tx %s'.\n", result.Hash)
			}
			return nil
		},
	}
}

// waitSettled blocks until no delayed refresh is pending, ctx is done or
// the coordinator is closed, and returns the last snapshot.
func waitSettled(ctx context.Context, c dashboard.Coordinator) dashboard.Snapshot {
	for {
		s := c.Snapshot()
		if s.PendingRefresh == "" {
			return s
		}

		if _, ok := chflow.Receive(ctx, c.Updates()); !ok {
			return c.Snapshot()
		}
	}
}

func containsTransaction(txs []walletapi.Transaction, hash string) bool {
	for _, tx := range txs {
		if strings.EqualFold(tx.Hash, hash) {
			return true
		}
	}
	return false
}

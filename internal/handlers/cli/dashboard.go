package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/gabapcia/walletsync/internal/dashboard"
	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/walletapi"

	"github.com/urfave/cli/v3"
)

const dashboardHelp = `Commands:
  refresh             reload balance and transactions
  balance             reload the balance
  history             reload the transactions
  next, prev          move between transaction pages
  generate            create your wallet
  send <to> <amount> [memo]
                      transfer funds
  form                show or hide the transfer form
  dismiss             hide the transfer message
  help                show this help
  quit                leave the dashboard once running actions finish`

// errQuit ends the dashboard loop without error.
var errQuit = errors.New("quit")

// dashboardCommand runs the interactive dashboard. It reads one command per
// line, runs network actions in the background and redraws whenever the
// shown state changes.
func (h *handler) dashboardCommand() *cli.Command {
	return &cli.Command{
		Name:        "dashboard",
		Description: "Interactive dashboard that keeps balance and history in sync with your transfers.",
		Usage:       "Starts the interactive dashboard. Type 'help' for the commands.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := h.requireSession(ctx); err != nil {
				return err
			}

			coordinator := dashboard.NewCoordinator(h.wallet, h.dashboardOpts...)
			defer coordinator.Close()

			d := &dashboardSession{
				handler:     h,
				coordinator: coordinator,
				transfer:    dashboard.NewTransferFlow(h.wallet, coordinator),
				generator:   dashboard.NewWalletGenerator(h.wallet, coordinator),
				results:     make(chan func()),
			}
			return d.run(ctx)
		},
	}
}

type dashboardSession struct {
	*handler

	coordinator dashboard.Coordinator
	transfer    *dashboard.TransferFlow
	generator   *dashboard.WalletGenerator

	// results carries the completion of background actions back to the
	// loop, which is the only goroutine writing to the output.
	results  chan func()
	inFlight int

	shown viewState
}

// viewState is what a redraw depends on. Loading flags are left out so a
// refresh that changes nothing does not redraw twice.
type viewState struct {
	branch     dashboard.Branch
	balanceAt  time.Time
	balanceErr string
	historyAt  time.Time
	historyErr string
	page       int
	pending    string
	transfer   dashboard.TransferState
	panelOpen  bool
	success    string
}

func (d *dashboardSession) currentView() viewState {
	s := d.coordinator.Snapshot()
	t := d.transfer.Snapshot()

	return viewState{
		branch:     s.Branch,
		balanceAt:  s.Balance.UpdatedAt,
		balanceErr: walletapi.Message(s.Balance.Err),
		historyAt:  s.History.UpdatedAt,
		historyErr: walletapi.Message(s.History.Err),
		page:       s.Page,
		pending:    s.PendingRefresh,
		transfer:   t.State,
		panelOpen:  t.PanelOpen,
		success:    t.Success,
	}
}

func (d *dashboardSession) run(ctx context.Context) error {
	// Canceled on return so background actions never wait on the loop.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d.render()
	d.println("Type 'help' for the commands.")

	// Query errors are part of the rendered state.
	d.spawn(ctx, func(ctx context.Context) func() {
		_ = d.coordinator.Mount(ctx)
		return nil
	})

	lines := scanLines(ctx, d.in)
	updates := d.coordinator.Updates()
	quitting := false

	for !quitting || d.inFlight > 0 {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-updates:
			if !ok {
				return nil
			}
			if done := d.onUpdate(); done {
				return nil
			}
		case done := <-d.results:
			d.inFlight--
			if done != nil {
				done()
			}
		case line, ok := <-lines:
			if !ok {
				quitting, lines = true, nil
				continue
			}

			err := d.exec(ctx, strings.Fields(line))
			if errors.Is(err, errQuit) {
				quitting, lines = true, nil
				continue
			}
			if err != nil {
				d.printError(err)
			}
		}
	}

	// The last update may still be queued behind the final result.
	d.onUpdate()
	return nil
}

// spawn runs action in the background. The function it returns, if any,
// runs on the loop once the action is done.
func (d *dashboardSession) spawn(ctx context.Context, action func(ctx context.Context) func()) {
	d.inFlight++
	go func() {
		done := action(ctx)
		select {
		case d.results <- done:
		case <-ctx.Done():
		}
	}()
}

// onUpdate redraws when the shown state changed and reports whether the
// session was rejected.
func (d *dashboardSession) onUpdate() bool {
	current := d.currentView()
	if current.branch == dashboard.BranchUnauthenticated {
		d.println("Your session has expired. Please log in again.")
		return true
	}

	if current == d.shown {
		return false
	}

	if d.shown.pending != "" && current.pending == "" && current.historyAt != d.shown.historyAt {
		d.println("Transactions refreshed.")
	}
	d.render()
	return false
}

func (d *dashboardSession) exec(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "quit", "exit", "q":
		if d.inFlight > 0 {
			d.println("Waiting for running actions to finish...")
		}
		return errQuit
	case "help", "?":
		d.println(dashboardHelp)
	case "refresh", "r":
		// Both errors end up in the rendered state.
		d.spawn(ctx, func(ctx context.Context) func() {
			_ = d.coordinator.RefreshBalance(ctx)
			return nil
		})
		d.spawn(ctx, func(ctx context.Context) func() {
			_ = d.coordinator.RefreshHistory(ctx)
			return nil
		})
	case "balance":
		d.spawn(ctx, func(ctx context.Context) func() {
			_ = d.coordinator.RefreshBalance(ctx)
			return nil
		})
	case "history":
		d.spawn(ctx, func(ctx context.Context) func() {
			_ = d.coordinator.RefreshHistory(ctx)
			return nil
		})
	case "next", "n":
		if !d.coordinator.Snapshot().HasNext {
			return dashboard.ErrLastPage
		}
		d.spawn(ctx, func(ctx context.Context) func() {
			return d.pageTurned(d.coordinator.NextPage(ctx))
		})
	case "prev", "p":
		if !d.coordinator.Snapshot().HasPrevious {
			return dashboard.ErrFirstPage
		}
		d.spawn(ctx, func(ctx context.Context) func() {
			return d.pageTurned(d.coordinator.PreviousPage(ctx))
		})
	case "generate":
		return d.generate(ctx)
	case "send":
		return d.send(ctx, args[1:])
	case "form":
		d.transfer.TogglePanel()
		d.render()
	case "dismiss":
		d.transfer.DismissSuccess()
		d.render()
	default:
		return errors.New("unknown command " + args[0] + ", type 'help'")
	}

	return nil
}

// pageTurned reports the paging errors the rendered state does not show.
func (d *dashboardSession) pageTurned(err error) func() {
	if errors.Is(err, dashboard.ErrLastPage) || errors.Is(err, dashboard.ErrFirstPage) {
		return func() { d.printError(err) }
	}
	return nil
}

func (d *dashboardSession) generate(ctx context.Context) error {
	if d.generator.InProgress() {
		return dashboard.ErrGenerationInProgress
	}

	d.println("Generating your wallet...")
	d.spawn(ctx, func(ctx context.Context) func() {
		wallet, err := d.generator.Generate(ctx)
		return func() {
			if err != nil {
				d.printError(err)
				return
			}
			renderWallet(d.out, wallet)
		}
	})
	return nil
}

func (d *dashboardSession) send(ctx context.Context, args []string) error {
	if !d.transfer.Snapshot().CanSubmit() {
		return dashboard.ErrSubmitInProgress
	}
	if len(args) < 2 {
		return errors.New("usage: send <to> <amount> [memo]")
	}

	d.transfer.OpenPanel()
	d.transfer.SetToAddress(args[0])
	d.transfer.SetAmountInput(args[1])
	d.transfer.SetMemo(strings.Join(args[2:], " "))

	submit, err := d.transfer.Start(ctx)
	d.render()
	if err != nil {
		return err
	}

	d.spawn(ctx, func(ctx context.Context) func() {
		result, err := submit(ctx)
		return func() {
			if err != nil {
				d.printError(err)
				return
			}
			d.printf("Explorer: %s\n", walletapi.ExplorerURL(result.Hash))
		}
	})
	return nil
}

func (d *dashboardSession) printError(err error) {
	d.printf("Error: %s\n", ErrorMessage(err))
}

func (d *dashboardSession) render() {
	d.shown = d.currentView()
	d.println()
	renderDashboard(d.out, d.coordinator.Snapshot(), d.transfer.Snapshot(), d.loc)
}

// scanLines feeds the lines of r to the returned channel until EOF or ctx is done.
func scanLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logger.Warn(ctx, "failed to read dashboard input", "error", err)
		}
	}()

	return lines
}

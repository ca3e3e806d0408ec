// Package cli exposes the wallet through the walletsync command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gabapcia/walletsync/internal/dashboard"
	"github.com/gabapcia/walletsync/internal/pkg/validator"
	"github.com/gabapcia/walletsync/internal/session"
	"github.com/gabapcia/walletsync/internal/walletapi"

	"github.com/urfave/cli/v3"
)

// ErrNotLoggedIn is returned by commands that need a session when there is none.
var ErrNotLoggedIn = errors.New("not logged in, run 'walletsync login' first")

type handler struct {
	sessions session.Service
	wallet   walletapi.Client

	in            io.Reader
	out           io.Writer
	loc           *time.Location
	dashboardOpts []dashboard.Option
	ephemeral     bool
}

// Option configures the command line application.
type Option func(*handler)

// WithInput sets where the interactive dashboard reads commands from. Default: os.Stdin.
func WithInput(r io.Reader) Option {
	return func(h *handler) {
		h.in = r
	}
}

// WithOutput sets where results are printed. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(h *handler) {
		h.out = w
	}
}

// WithLocation sets the time zone dates are shown in. Default: time.Local.
func WithLocation(loc *time.Location) Option {
	return func(h *handler) {
		h.loc = loc
	}
}

// WithDashboardOptions configures the refresh coordinator used by the
// dashboard and transfer commands.
func WithDashboardOptions(opts ...dashboard.Option) Option {
	return func(h *handler) {
		h.dashboardOpts = append(h.dashboardOpts, opts...)
	}
}

// WithEphemeralSessions tells the login command that sessions do not
// outlive the process, so it prints how to reuse the token.
func WithEphemeralSessions() Option {
	return func(h *handler) {
		h.ephemeral = true
	}
}

// New builds the walletsync command tree.
//
//   - `login`, `register`, `logout`, `me`: session management.
//   - `wallet generate`, `balance`, `address-balance`: wallet and balances.
//   - `history`, `tx`: transaction history and details.
//   - `transfer`: sends funds.
//   - `dashboard`: interactive view that keeps balance and history in sync.
func New(sessions session.Service, wallet walletapi.Client, opts ...Option) *cli.Command {
	h := &handler{
		sessions: sessions,
		wallet:   wallet,
		in:       os.Stdin,
		out:      os.Stdout,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(h)
	}

	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "walletsync",
		Description:           "Command-line client for the custodial wallet API.",
		Usage:                 "walletsync [command] [flags]",
		Commands: []*cli.Command{
			h.loginCommand(),
			h.registerCommand(),
			h.logoutCommand(),
			h.meCommand(),
			h.walletCommand(),
			h.balanceCommand(),
			h.addressBalanceCommand(),
			h.historyCommand(),
			h.transactionCommand(),
			h.transferCommand(),
			h.dashboardCommand(),
		},
	}
}

// Run builds the command tree and runs it with the process arguments.
func Run(ctx context.Context, sessions session.Service, wallet walletapi.Client, opts ...Option) error {
	return New(sessions, wallet, opts...).Run(ctx, os.Args)
}

// ErrorMessage renders err for the terminal: one line per validation
// problem, the server messages for API errors.
func ErrorMessage(err error) string {
	var formErr *session.FormError
	if errors.As(err, &formErr) {
		return strings.Join(formErr.Messages, "\n")
	}

	if msgs := validator.Messages(err); len(msgs) > 0 {
		return strings.Join(msgs, "\n")
	}

	return walletapi.Message(err)
}

// requireSession fails unless a live session exists.
func (h *handler) requireSession(ctx context.Context) error {
	_, err := h.sessions.Current(ctx)
	switch {
	case errors.Is(err, session.ErrNoSession):
		return ErrNotLoggedIn
	case errors.Is(err, session.ErrSessionExpired):
		return fmt.Errorf("%w, run 'walletsync login' again", err)
	}
	return err
}

// apiError tears the session down when the API rejected it.
func (h *handler) apiError(ctx context.Context, err error) error {
	if errors.Is(err, walletapi.ErrUnauthenticated) {
		h.sessions.Expire(ctx)
		return fmt.Errorf("%w, run 'walletsync login' again", err)
	}
	return err
}

func (h *handler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format, args...)
}

func (h *handler) println(args ...any) {
	fmt.Fprintln(h.out, args...)
}

package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gabapcia/walletsync/internal/dashboard"
	"github.com/gabapcia/walletsync/internal/walletapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	patience = time.Second
	poll     = 5 * time.Millisecond
)

// console drives a running dashboard one line at a time.
type console struct {
	t    *testing.T
	in   *io.PipeWriter
	out  *syncBuffer
	done chan error
}

func startDashboard(t *testing.T, f *fixture) *console {
	t.Helper()

	r, w := io.Pipe()
	f.in = r

	c := &console{t: t, in: w, out: f.out, done: make(chan error, 1)}
	go func() {
		c.done <- f.run(t, "dashboard")
	}()
	return c
}

func (c *console) send(line string) {
	c.t.Helper()

	_, err := io.WriteString(c.in, line+"\n")
	require.NoError(c.t, err)
}

func (c *console) waitFor(text string) {
	c.t.Helper()

	require.Eventually(c.t, func() bool {
		return strings.Contains(c.out.String(), text)
	}, patience, poll, "output never contained %q:\n%s", text, c.out.String())
}

// wait ends the input and waits for the dashboard to return.
func (c *console) wait() error {
	c.t.Helper()

	require.NoError(c.t, c.in.Close())
	select {
	case err := <-c.done:
		return err
	case <-time.After(patience):
		c.t.Fatal("dashboard did not exit")
		return nil
	}
}

func TestDashboardCommand(t *testing.T) {
	t.Run("should render the mounted dashboard", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.loggedIn()
		f.in = strings.NewReader("help\nnext\nquit\n")
		f.wallet.EXPECT().WalletBalance(mock.Anything).Return(walletapi.WalletBalance{Address: "0xme", Balance: "1.5"}, nil).Once()
		f.wallet.EXPECT().Transactions(mock.Anything, 1, dashboard.DefaultPageSize).Return([]walletapi.Transaction{
			{Hash: "0xtx", From: "0xme", Value: "0.1", Status: walletapi.StatusSuccess},
		}, nil).Once()

		// Act
		err := f.run(t, "dashboard")

		// Assert
		require.NoError(t, err)
		out := f.out.String()
		assert.Contains(t, out, "1.500000 ETH")
		assert.Contains(t, out, "0xtx")
		assert.Contains(t, out, "Commands:")
		assert.Contains(t, out, "Error: already on the last page")
	})

	t.Run("should redraw once a generated wallet is loaded", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.loggedIn()
		f.wallet.EXPECT().WalletBalance(mock.Anything).Return(walletapi.WalletBalance{}, walletapi.ErrNoWallet).Once()
		f.wallet.EXPECT().Transactions(mock.Anything, 1, dashboard.DefaultPageSize).Return(nil, nil).Once()
		f.wallet.EXPECT().GenerateWallet(mock.Anything).Return(walletapi.CreatedWallet{Address: "0xnew", Mnemonic: "alpha beta"}, nil).Once()
		f.wallet.EXPECT().WalletBalance(mock.Anything).Return(walletapi.WalletBalance{Address: "0xnew", Balance: "0"}, nil).Once()

		// Act
		c := startDashboard(t, f)
		c.waitFor("Type 'generate' to create one.")
		c.send("generate")

		// Assert
		c.waitFor("alpha beta")
		c.waitFor("0.000000 ETH")
		require.NoError(t, c.wait())
	})

	t.Run("should send transfers and reject invalid ones", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.opts = []dashboard.Option{dashboard.WithHistoryRefreshDelay(time.Hour)}
		f.loggedIn()
		f.in = strings.NewReader("send 0xdef 0\nsend 0xdef 0.5 for lunch\nbogus\n")
		f.wallet.EXPECT().WalletBalance(mock.Anything).Return(walletapi.WalletBalance{Address: "0xme", Balance: "1"}, nil)
		f.wallet.EXPECT().Transactions(mock.Anything, 1, dashboard.DefaultPageSize).Return(nil, nil).Once()
		f.wallet.EXPECT().TransferFunds(mock.Anything, walletapi.TransferRequest{ToAddress: "0xdef", Amount: 0.5, Memo: "for lunch"}).
			Return(walletapi.TransferResult{Hash: "0xhash"}, nil).Once()

		// Act
		err := f.run(t, "dashboard")

		// Assert
		require.NoError(t, err)
		out := f.out.String()
		assert.Contains(t, out, "Error: 'amount' must be greater than 0")
		assert.Contains(t, out, "Transfer form: to 0xdef, amount N/A, memo N/A")
		assert.Contains(t, out, "Transfer successful! Transaction hash: 0xhash")
		assert.Contains(t, out, "Waiting for 0xhash to be indexed...")
		assert.Contains(t, out, "Error: unknown command bogus")
	})

	t.Run("should keep reading commands while a transfer is in flight", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.opts = []dashboard.Option{dashboard.WithHistoryRefreshDelay(time.Hour)}
		f.loggedIn()

		started := make(chan struct{})
		release := make(chan struct{})
		balanceCalls := make(chan struct{}, 16)

		f.wallet.EXPECT().WalletBalance(mock.Anything).RunAndReturn(func(context.Context) (walletapi.WalletBalance, error) {
			balanceCalls <- struct{}{}
			return walletapi.WalletBalance{Address: "0xme", Balance: "1"}, nil
		})
		f.wallet.EXPECT().Transactions(mock.Anything, 1, dashboard.DefaultPageSize).Return(nil, nil)
		f.wallet.EXPECT().TransferFunds(mock.Anything, walletapi.TransferRequest{ToAddress: "0xdef", Amount: 0.5}).
			RunAndReturn(func(ctx context.Context, _ walletapi.TransferRequest) (walletapi.TransferResult, error) {
				close(started)
				select {
				case <-release:
					return walletapi.TransferResult{Hash: "0xhash"}, nil
				case <-ctx.Done():
					return walletapi.TransferResult{}, ctx.Err()
				}
			}).Once()

		c := startDashboard(t, f)
		c.waitFor("1.000000 ETH")
		<-balanceCalls

		// Act
		c.send("send 0xdef 0.5")
		select {
		case <-started:
		case <-time.After(patience):
			t.Fatal("transfer was not sent")
		}
		c.waitFor("Sending 0.5 ETH to 0xdef...")

		c.send("send 0xdef 0.7")
		c.waitFor("Error: transfer already in progress")

		c.send("refresh")

		// Assert
		select {
		case <-balanceCalls:
		case <-time.After(patience):
			t.Fatal("refresh did not run while the transfer was in flight")
		}

		close(release)
		c.waitFor("Transfer successful! Transaction hash: 0xhash")
		require.NoError(t, c.wait())
	})

	t.Run("should leave when the session is rejected", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.loggedIn()
		f.wallet.EXPECT().WalletBalance(mock.Anything).Return(walletapi.WalletBalance{}, walletapi.ErrUnauthenticated).Once()
		f.wallet.EXPECT().Transactions(mock.Anything, 1, dashboard.DefaultPageSize).Return(nil, walletapi.ErrUnauthenticated).Once()

		// Act
		c := startDashboard(t, f)

		// Assert
		select {
		case err := <-c.done:
			require.NoError(t, err)
		case <-time.After(patience):
			t.Fatal("dashboard did not exit")
		}
		assert.Contains(t, f.out.String(), "Your session has expired. Please log in again.")
		require.NoError(t, c.in.Close())
	})
}

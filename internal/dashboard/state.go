package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/walletsync/internal/walletapi"
)

var (
	// ErrAlreadyMounted is returned by Mount when it was already called.
	ErrAlreadyMounted = errors.New("coordinator already mounted")

	// ErrClosed is returned by operations on a closed coordinator.
	ErrClosed = errors.New("coordinator closed")

	// ErrLastPage is returned by NextPage when the last fetched page was short.
	ErrLastPage = errors.New("already on the last page")

	// ErrFirstPage is returned by PreviousPage on page 1.
	ErrFirstPage = errors.New("already on the first page")

	// ErrFetchTimeout wraps fetch errors caused by the per-fetch timeout.
	ErrFetchTimeout = errors.New("fetch timed out")
)

// API is the subset of the wallet API the dashboard depends on.
type API interface {
	WalletBalance(ctx context.Context) (walletapi.WalletBalance, error)
	Transactions(ctx context.Context, page, pageSize int) ([]walletapi.Transaction, error)
	TransferFunds(ctx context.Context, req walletapi.TransferRequest) (walletapi.TransferResult, error)
	GenerateWallet(ctx context.Context) (walletapi.CreatedWallet, error)
}

// QueryState is the observable state of one read query. Loading and the
// last result are tracked independently: a refetch keeps the previous
// data visible until it completes.
type QueryState[T any] struct {
	Data      T
	HasData   bool
	Loading   bool
	Err       error
	UpdatedAt time.Time
}

// Branch selects what the dashboard shows, derived from the balance query.
type Branch string

const (
	BranchLoading         Branch = "loading"
	BranchNoWallet        Branch = "no-wallet"
	BranchUnauthenticated Branch = "unauthenticated"
	BranchError           Branch = "error"
	BranchReady           Branch = "ready"
)

// Snapshot is a consistent copy of the coordinator state.
type Snapshot struct {
	Balance QueryState[walletapi.WalletBalance]
	History QueryState[[]walletapi.Transaction]

	Page        int
	PageSize    int
	HasNext     bool // approximation: the last page fetched was full
	HasPrevious bool

	// PendingRefresh is the hash whose delayed history refresh is
	// scheduled or running, "" when none is.
	PendingRefresh string

	Branch Branch
}

// branch picks the view branch. completed tells whether any balance
// fetch has finished yet. A balance query that completed with neither data
// nor error is treated as a missing wallet.
func branch(unauthenticated, completed bool, balance QueryState[walletapi.WalletBalance]) Branch {
	switch {
	case unauthenticated:
		return BranchUnauthenticated
	case !completed, balance.Loading && !balance.HasData && balance.Err == nil:
		return BranchLoading
	case errors.Is(balance.Err, walletapi.ErrNoWallet):
		return BranchNoWallet
	case balance.Err != nil:
		return BranchError
	case !balance.HasData:
		return BranchNoWallet
	default:
		return BranchReady
	}
}

// Package dashboard holds the client-side state of the wallet dashboard:
// when balance and history are fetched (Coordinator), how a transfer is
// submitted (TransferFlow) and how a wallet is generated (WalletGenerator).
//
// The state objects are safe for concurrent use and never block on their
// observers: changes are announced on a coalescing Updates channel and the
// current state is read with Snapshot.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletsync/internal/pkg/x/chflow"
	"github.com/gabapcia/walletsync/internal/walletapi"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultPageSize is the number of transactions fetched per history page.
	DefaultPageSize = 10

	// DefaultHistoryRefreshDelay is how long after a settled transfer the
	// history is fetched again. A broadcast transaction is not guaranteed
	// to be indexed sooner, nor by then.
	DefaultHistoryRefreshDelay = 3000 * time.Millisecond

	// DefaultFetchTimeout bounds every read query.
	DefaultFetchTimeout = 20 * time.Second
)

// errNotIndexed is the retry condition of the settlement check.
var errNotIndexed = errors.New("transaction not in history yet")

// Coordinator decides when the balance and the history are fetched.
type Coordinator interface {
	// Mount fetches balance and history concurrently. It can be called
	// once; query errors are recorded in the state and the first one is
	// also returned.
	Mount(ctx context.Context) error

	// RefreshBalance fetches the balance now, whatever else is in flight.
	RefreshBalance(ctx context.Context) error

	// RefreshHistory fetches the current history page now, even while a
	// delayed refresh is pending.
	RefreshHistory(ctx context.Context) error

	// NextPage moves to the next history page and fetches it. The page
	// is restored when the fetch fails.
	NextPage(ctx context.Context) error

	// PreviousPage moves to the previous history page and fetches it. The
	// page is restored when the fetch fails.
	PreviousPage(ctx context.Context) error

	// OnWalletGenerated fetches the balance once, in the background.
	OnWalletGenerated(ctx context.Context)

	// OnTransferStarted cancels the pending delayed history refresh, if
	// any. The new transfer schedules its own once it settles.
	OnTransferStarted(ctx context.Context)

	// OnTransferSettled fetches the balance in the background right away
	// and schedules a history refresh after the configured delay. A newer
	// transfer supersedes a refresh that is still pending.
	OnTransferSettled(ctx context.Context, hash string)

	// Snapshot returns a copy of the current state.
	Snapshot() Snapshot

	// Updates is signaled after every state change. Signals coalesce; the
	// channel is closed by Close.
	Updates() <-chan struct{}

	// Close cancels pending refreshes and waits for background work.
	Close()
}

type (
	unauthenticatedHandler func(ctx context.Context)

	// query tracks one read query. seq identifies the latest issued fetch;
	// only its result is applied.
	query[T any] struct {
		name      string
		state     QueryState[T]
		seq       uint64
		completed bool
	}

	// pendingRefresh is the delayed history refresh of a settled transfer.
	pendingRefresh struct {
		hash   string
		timer  *time.Timer
		cancel context.CancelFunc
	}
)

type coordinator struct {
	mu      sync.Mutex
	mounted bool
	closed  bool

	api API

	balance         query[walletapi.WalletBalance]
	history         query[[]walletapi.Transaction]
	page            int
	unauthenticated bool

	pending  *pendingRefresh
	tasks    sync.WaitGroup
	lifetime context.Context
	cancel   context.CancelFunc
	updates  chan struct{}

	pageSize          int
	refreshDelay      time.Duration
	fetchTimeout      time.Duration
	settlementRetry   retry.Retry
	onUnauthenticated unauthenticatedHandler
	now               func() time.Time
}

var _ Coordinator = (*coordinator)(nil)

type config struct {
	pageSize          int
	refreshDelay      time.Duration
	fetchTimeout      time.Duration
	settlementRetry   retry.Retry
	onUnauthenticated unauthenticatedHandler
	now               func() time.Time
}

// Option configures the coordinator.
type Option func(*config)

// WithPageSize sets the history page size. Default: DefaultPageSize.
func WithPageSize(n int) Option {
	return func(c *config) {
		c.pageSize = n
	}
}

// WithHistoryRefreshDelay sets the delay between a settled transfer and
// the history refresh. Default: DefaultHistoryRefreshDelay.
func WithHistoryRefreshDelay(d time.Duration) Option {
	return func(c *config) {
		c.refreshDelay = d
	}
}

// WithFetchTimeout bounds every read query. Default: DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *config) {
		c.fetchTimeout = d
	}
}

// WithSettlementRetry keeps refreshing the first history page after a
// settled transfer, using r, until the transfer shows up. Without it the
// history is refreshed exactly once.
func WithSettlementRetry(r retry.Retry) Option {
	return func(c *config) {
		c.settlementRetry = r
	}
}

// WithUnauthenticatedHandler sets the function called when a query is
// rejected as unauthenticated, typically the session teardown.
func WithUnauthenticatedHandler(f func(ctx context.Context)) Option {
	return func(c *config) {
		c.onUnauthenticated = f
	}
}

// WithClock overrides the time source used for UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// NewCoordinator creates a coordinator on page 1. Nothing is fetched until Mount.
func NewCoordinator(api API, opts ...Option) *coordinator {
	cfg := config{
		pageSize:          DefaultPageSize,
		refreshDelay:      DefaultHistoryRefreshDelay,
		fetchTimeout:      DefaultFetchTimeout,
		onUnauthenticated: func(context.Context) {},
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	lifetime, cancel := context.WithCancel(context.Background())

	return &coordinator{
		api:               api,
		balance:           query[walletapi.WalletBalance]{name: "balance"},
		history:           query[[]walletapi.Transaction]{name: "history"},
		page:              1,
		lifetime:          lifetime,
		cancel:            cancel,
		updates:           make(chan struct{}, 1),
		pageSize:          cfg.pageSize,
		refreshDelay:      cfg.refreshDelay,
		fetchTimeout:      cfg.fetchTimeout,
		settlementRetry:   cfg.settlementRetry,
		onUnauthenticated: cfg.onUnauthenticated,
		now:               cfg.now,
	}
}

func (c *coordinator) Mount(ctx context.Context) error {
	c.mu.Lock()
	switch {
	case c.closed:
		c.mu.Unlock()
		return ErrClosed
	case c.mounted:
		c.mu.Unlock()
		return ErrAlreadyMounted
	}
	c.mounted = true
	c.mu.Unlock()

	var g errgroup.Group
	g.Go(func() error { return c.RefreshBalance(ctx) })
	g.Go(func() error { return c.RefreshHistory(ctx) })
	return g.Wait()
}

func (c *coordinator) RefreshBalance(ctx context.Context) error {
	_, err := runQuery(ctx, c, &c.balance, func() func(context.Context) (walletapi.WalletBalance, error) {
		return c.api.WalletBalance
	})
	return err
}

func (c *coordinator) RefreshHistory(ctx context.Context) error {
	_, _, err := c.fetchHistory(ctx)
	return err
}

// fetchHistory fetches the current page and reports which page it was.
func (c *coordinator) fetchHistory(ctx context.Context) ([]walletapi.Transaction, int, error) {
	var page int
	txs, err := runQuery(ctx, c, &c.history, func() func(context.Context) ([]walletapi.Transaction, error) {
		page = c.page
		return func(ctx context.Context) ([]walletapi.Transaction, error) {
			return c.api.Transactions(ctx, page, c.pageSize)
		}
	})
	return txs, page, err
}

func (c *coordinator) NextPage(ctx context.Context) error {
	c.mu.Lock()
	if !c.hasNextLocked() {
		c.mu.Unlock()
		return ErrLastPage
	}
	return c.turnPageLocked(ctx, c.page+1)
}

func (c *coordinator) PreviousPage(ctx context.Context) error {
	c.mu.Lock()
	if c.page <= 1 {
		c.mu.Unlock()
		return ErrFirstPage
	}
	return c.turnPageLocked(ctx, c.page-1)
}

// turnPageLocked moves to page and fetches it. When the fetch fails the
// previous page comes back, so the page number keeps matching the rows.
// It is called with c.mu held and releases it.
func (c *coordinator) turnPageLocked(ctx context.Context, page int) error {
	previous := c.page
	c.page = page
	c.mu.Unlock()

	err := c.RefreshHistory(ctx)
	if err != nil {
		c.mu.Lock()
		if c.page == page {
			c.page = previous
			c.notifyLocked()
		}
		c.mu.Unlock()
	}
	return err
}

// hasNextLocked applies the short-page heuristic: the API reports no
// total, so a full page is taken to mean that more may follow.
func (c *coordinator) hasNextLocked() bool {
	return c.history.state.HasData && len(c.history.state.Data) >= c.pageSize
}

func (c *coordinator) OnWalletGenerated(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.goLocked(c.taskContext(ctx), func(ctx context.Context) {
		_ = c.RefreshBalance(ctx)
	})
}

func (c *coordinator) OnTransferStarted(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.pending == nil {
		return
	}

	logger.Debug(ctx, "delayed history refresh canceled by a new transfer", "transfer.hash", c.pending.hash)
	c.cancelPendingLocked()
	c.notifyLocked()
}

func (c *coordinator) OnTransferSettled(ctx context.Context, hash string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	taskCtx := c.taskContext(ctx)
	c.goLocked(taskCtx, func(ctx context.Context) {
		_ = c.RefreshBalance(ctx)
	})

	if c.pending != nil {
		logger.Debug(ctx, "delayed history refresh superseded",
			"transfer.hash", c.pending.hash,
			"transfer.superseded_by", hash,
		)
		c.cancelPendingLocked()
	}
	c.scheduleLocked(taskCtx, hash)
	c.notifyLocked()
}

// taskContext detaches background work from the caller's cancellation
// while keeping its trace.
func (c *coordinator) taskContext(ctx context.Context) context.Context {
	return trace.ContextWithSpanContext(c.lifetime, trace.SpanContextFromContext(ctx))
}

// goLocked runs f in a tracked goroutine unless the coordinator is closed.
func (c *coordinator) goLocked(ctx context.Context, f func(ctx context.Context)) {
	if c.closed {
		return
	}

	c.tasks.Add(1)
	go func() {
		defer c.tasks.Done()
		f(ctx)
	}()
}

func (c *coordinator) scheduleLocked(ctx context.Context, hash string) {
	ctx, cancel := context.WithCancel(ctx)
	p := &pendingRefresh{hash: hash, cancel: cancel}

	c.tasks.Add(1)
	p.timer = time.AfterFunc(c.refreshDelay, func() {
		defer c.tasks.Done()
		defer cancel()

		if ctx.Err() == nil {
			c.refreshAfterSettlement(ctx, hash)
		}

		c.mu.Lock()
		if c.pending == p {
			c.pending = nil
			c.notifyLocked()
		}
		c.mu.Unlock()
	})

	c.pending = p
	logger.Debug(ctx, "history refresh scheduled", "transfer.hash", hash, "refresh.delay", c.refreshDelay)
}

// cancelPendingLocked cancels the pending refresh. The task counter is
// released here only when the timer had not fired yet.
func (c *coordinator) cancelPendingLocked() {
	if c.pending == nil {
		return
	}

	c.pending.cancel()
	if c.pending.timer.Stop() {
		c.tasks.Done()
	}
	c.pending = nil
}

func (c *coordinator) refreshAfterSettlement(ctx context.Context, hash string) {
	if c.settlementRetry == nil {
		_ = c.RefreshHistory(ctx)
		return
	}

	err := c.settlementRetry.Execute(ctx, func() error {
		txs, page, err := c.fetchHistory(ctx)
		if err != nil {
			return err
		}

		// Only the first page is guaranteed to hold the newest transfer.
		if page != 1 || containsHash(txs, hash) {
			return nil
		}
		return errNotIndexed
	})
	if err != nil && ctx.Err() == nil {
		logger.Warn(ctx, "settled transfer not visible in history", "transfer.hash", hash, "error", err)
	}
}

func containsHash(txs []walletapi.Transaction, hash string) bool {
	for _, tx := range txs {
		if strings.EqualFold(tx.Hash, hash) {
			return true
		}
	}
	return false
}

func (c *coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Balance:     c.balance.state,
		History:     c.history.state,
		Page:        c.page,
		PageSize:    c.pageSize,
		HasNext:     c.hasNextLocked(),
		HasPrevious: c.page > 1,
		Branch:      branch(c.unauthenticated, c.balance.completed, c.balance.state),
	}
	if c.history.state.Data != nil {
		s.History.Data = append([]walletapi.Transaction(nil), c.history.state.Data...)
	}
	if c.pending != nil {
		s.PendingRefresh = c.pending.hash
	}
	return s
}

func (c *coordinator) Updates() <-chan struct{} {
	return c.updates
}

func (c *coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.cancelPendingLocked()
	c.cancel()
	close(c.updates)
	c.mu.Unlock()

	c.tasks.Wait()
}

// notifyLocked signals observers. It must be called with c.mu held.
func (c *coordinator) notifyLocked() {
	if !c.closed {
		chflow.TrySend(c.updates, struct{}{})
	}
}

// runQuery issues one fetch of q. issue is called with c.mu held, right
// after the sequence number is taken, and returns the fetch to run.
// Results of superseded or canceled fetches are discarded.
func runQuery[T any](ctx context.Context, c *coordinator, q *query[T], issue func() func(context.Context) (T, error)) (T, error) {
	var zero T

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return zero, ErrClosed
	}
	q.seq++
	seq := q.seq
	fetch := issue()
	q.state.Loading = true
	c.notifyLocked()
	c.mu.Unlock()

	logger.Debug(ctx, "query issued", "query.name", q.name, "query.seq", seq)

	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	data, err := fetch(fetchCtx)
	timedOut := errors.Is(fetchCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil
	cancel()

	if err != nil && timedOut {
		err = fmt.Errorf("%w after %s: %w", ErrFetchTimeout, c.fetchTimeout, err)
	}

	unauthenticated := errors.Is(err, walletapi.ErrUnauthenticated)

	c.mu.Lock()
	switch {
	case c.closed, seq != q.seq:
		// superseded by a newer fetch
	case ctx.Err() != nil:
		q.state.Loading = false
		c.notifyLocked()
	default:
		q.state.Loading = false
		q.completed = true
		if err != nil {
			q.state.Err = err
		} else {
			q.state.Data = data
			q.state.HasData = true
			q.state.Err = nil
			q.state.UpdatedAt = c.now()
		}
		if unauthenticated {
			c.unauthenticated = true
		} else if err == nil {
			c.unauthenticated = false
		}
		c.notifyLocked()
	}
	c.mu.Unlock()

	if err != nil {
		if ctx.Err() == nil {
			logger.Warn(ctx, "query failed", "query.name", q.name, "query.seq", seq, "error", err)
		}
		if unauthenticated {
			c.onUnauthenticated(ctx)
		}
		return zero, err
	}

	return data, nil
}

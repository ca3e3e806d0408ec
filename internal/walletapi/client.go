// Package walletapi is the typed client of the custodial wallet GraphQL API.
//
// Every operation maps to one named GraphQL document. Errors are classified
// into ErrUnauthenticated, ErrNoWallet and ErrNotFound at this boundary so
// callers never inspect error strings. Both transaction payload shapes are
// converted into Transaction before they leave the package.
package walletapi

import (
	"context"
	"sync"

	"github.com/gabapcia/walletsync/internal/pkg/transport/graphql"

	"github.com/zyedidia/generic/cache"
)

// defaultTransactionCacheSize bounds the number of settled transactions kept in memory.
const defaultTransactionCacheSize = 256

// Client defines the operations of the wallet API.
type Client interface {
	// Login exchanges credentials for a session token.
	Login(ctx context.Context, input LoginInput) (LoggedInUser, error)

	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, input RegisterInput) (CreatedUser, error)

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context) (User, error)

	// GenerateWallet creates the user's custodial wallet.
	GenerateWallet(ctx context.Context) (CreatedWallet, error)

	// TransferFunds broadcasts a transfer. It is sent exactly once.
	TransferFunds(ctx context.Context, req TransferRequest) (TransferResult, error)

	// WalletBalance returns the balance of the user's wallet, or ErrNoWallet.
	WalletBalance(ctx context.Context) (WalletBalance, error)

	// Transactions returns one page of the wallet history, newest first.
	// Pages start at 1.
	Transactions(ctx context.Context, page, pageSize int) ([]Transaction, error)

	// Transaction looks up a single transaction by hash.
	Transaction(ctx context.Context, hash string) (Transaction, error)

	// AddressBalance returns the balance of an arbitrary address.
	AddressBalance(ctx context.Context, address string) (WalletBalance, error)
}

type client struct {
	gql graphql.Client

	mu           sync.Mutex
	transactions *cache.Cache[string, Transaction]
}

var _ Client = (*client)(nil)

type config struct {
	transactionCacheSize int
}

// Option configures the client.
type Option func(*config)

// WithTransactionCacheSize sets how many settled transactions are cached
// by hash. Default: 256.
func WithTransactionCacheSize(n int) Option {
	return func(c *config) {
		c.transactionCacheSize = n
	}
}

// New creates a wallet API client over gql.
func New(gql graphql.Client, opts ...Option) *client {
	cfg := config{
		transactionCacheSize: defaultTransactionCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		gql:          gql,
		transactions: cache.New[string, Transaction](cfg.transactionCacheSize),
	}
}

func (c *client) do(ctx context.Context, req graphql.Request, out any) error {
	return classify(c.gql.Do(ctx, req, out))
}

func (c *client) Login(ctx context.Context, input LoginInput) (LoggedInUser, error) {
	var out struct {
		Login LoggedInUser `json:"login"`
	}

	err := c.do(ctx, graphql.Request{
		Query:         loginMutation,
		OperationName: "Login",
		Variables:     map[string]any{"input": input},
	}, &out)
	return out.Login, err
}

func (c *client) Register(ctx context.Context, input RegisterInput) (CreatedUser, error) {
	var out struct {
		Register CreatedUser `json:"register"`
	}

	err := c.do(ctx, graphql.Request{
		Query:         registerMutation,
		OperationName: "Register",
		Variables:     map[string]any{"input": input},
	}, &out)
	return out.Register, err
}

func (c *client) Me(ctx context.Context) (User, error) {
	var out struct {
		Me User `json:"me"`
	}

	err := c.do(ctx, graphql.Request{
		Query:         getMeQuery,
		OperationName: "GetMe",
	}, &out)
	return out.Me, err
}

func (c *client) GenerateWallet(ctx context.Context) (CreatedWallet, error) {
	var out struct {
		GenerateWallet CreatedWallet `json:"generateWallet"`
	}

	err := c.do(ctx, graphql.Request{
		Query:         generateWalletMutation,
		OperationName: "GenerateWallet",
	}, &out)
	return out.GenerateWallet, err
}

func (c *client) TransferFunds(ctx context.Context, req TransferRequest) (TransferResult, error) {
	var out struct {
		TransferFunds TransferResult `json:"transferFunds"`
	}

	err := c.do(ctx, graphql.Request{
		Query:         transferFundsMutation,
		OperationName: "TransferFunds",
		Variables:     map[string]any{"input": req},
	}, &out)
	return out.TransferFunds, err
}

func (c *client) WalletBalance(ctx context.Context) (WalletBalance, error) {
	var out struct {
		GetWalletBalance *WalletBalance `json:"getWalletBalance"`
	}

	err := c.do(ctx, graphql.Request{
		Query:         getWalletBalanceQuery,
		OperationName: "GetWalletBalance",
	}, &out)
	if err != nil {
		return WalletBalance{}, err
	}

	// A null balance without errors means there is no wallet either.
	if out.GetWalletBalance == nil {
		return WalletBalance{}, ErrNoWallet
	}
	return *out.GetWalletBalance, nil
}

func (c *client) Transactions(ctx context.Context, page, pageSize int) ([]Transaction, error) {
	var out struct {
		GetTransactions []EtherTransaction `json:"getTransactions"`
	}

	err := c.do(ctx, graphql.Request{
		Query:         getTransactionsQuery,
		OperationName: "GetTransactions",
		Variables:     map[string]any{"page": page, "pageSize": pageSize},
	}, &out)
	if err != nil {
		return nil, err
	}

	return convertEtherTransactions(out.GetTransactions), nil
}

// Transaction serves settled transactions from the cache; pending and
// unknown ones are always fetched again.
func (c *client) Transaction(ctx context.Context, hash string) (Transaction, error) {
	c.mu.Lock()
	tx, ok := c.transactions.Get(hash)
	c.mu.Unlock()
	if ok {
		return tx, nil
	}

	var out struct {
		GetTransaction *AlchemyTransaction `json:"getTransaction"`
	}

	err := c.do(ctx, graphql.Request{
		Query:         getTransactionQuery,
		OperationName: "GetTransaction",
		Variables:     map[string]any{"hash": hash},
	}, &out)
	if err != nil {
		return Transaction{}, err
	}

	if out.GetTransaction == nil {
		return Transaction{}, ErrNotFound
	}

	tx = out.GetTransaction.Transaction()
	if tx.Status == StatusSuccess || tx.Status == StatusFailed {
		c.mu.Lock()
		c.transactions.Put(hash, tx)
		c.mu.Unlock()
	}

	return tx, nil
}

func (c *client) AddressBalance(ctx context.Context, address string) (WalletBalance, error) {
	var out struct {
		GetAddressBalance WalletBalance `json:"getAddressBalance"`
	}

	err := c.do(ctx, graphql.Request{
		Query:         getAddressBalanceQuery,
		OperationName: "GetAddressBalance",
		Variables:     map[string]any{"address": address},
	}, &out)
	return out.GetAddressBalance, err
}

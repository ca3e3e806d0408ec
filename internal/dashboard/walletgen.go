package dashboard

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/walletapi"
)

// ErrGenerationInProgress is returned by Generate while a wallet is being created.
var ErrGenerationInProgress = errors.New("wallet generation already in progress")

// GenerationListener is told about newly generated wallets. Coordinator
// implements it.
type GenerationListener interface {
	OnWalletGenerated(ctx context.Context)
}

// WalletGenerator creates the user's wallet, one request at a time.
type WalletGenerator struct {
	api      API
	listener GenerationListener
	inFlight atomic.Bool
}

// NewWalletGenerator creates a generator. listener may be nil.
func NewWalletGenerator(api API, listener GenerationListener) *WalletGenerator {
	return &WalletGenerator{api: api, listener: listener}
}

// InProgress reports whether a generation request is in flight.
func (g *WalletGenerator) InProgress() bool {
	return g.inFlight.Load()
}

// Generate creates the wallet. The mnemonic is only ever returned here.
func (g *WalletGenerator) Generate(ctx context.Context) (walletapi.CreatedWallet, error) {
	if !g.inFlight.CompareAndSwap(false, true) {
		return walletapi.CreatedWallet{}, ErrGenerationInProgress
	}
	defer g.inFlight.Store(false)

	wallet, err := g.api.GenerateWallet(ctx)
	if err != nil {
		logger.Error(ctx, "wallet generation failed", "error", err)
		return walletapi.CreatedWallet{}, err
	}

	logger.Info(ctx, "wallet generated", "wallet.address", wallet.Address, "wallet.network", wallet.Network)

	if g.listener != nil {
		g.listener.OnWalletGenerated(ctx)
	}
	return wallet, nil
}

package walletapi

import (
	"errors"
	"fmt"

	"github.com/gabapcia/walletsync/internal/pkg/transport/graphql"
)

var (
	// ErrNoWallet indicates that the authenticated user has not generated a wallet yet.
	ErrNoWallet = errors.New("no wallet found")

	// ErrUnauthenticated indicates a missing, invalid or expired session token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound indicates that the requested transaction does not exist.
	ErrNotFound = errors.New("not found")
)

const (
	codeUnauthenticated = "UNAUTHENTICATED"
	codeWalletNotFound  = "WALLET_NOT_FOUND"
	codeNotFound        = "NOT_FOUND"

	// noWalletMessage is matched when the server does not send codeWalletNotFound.
	noWalletMessage = "No wallet found"
)

// classify maps transport errors to this package's error kinds. The
// original error stays in the chain so its message is still available.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, graphql.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	respErr, ok := graphql.AsResponseError(err)
	if !ok {
		return err
	}

	switch {
	case respErr.HasCode(codeUnauthenticated):
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	case respErr.HasCode(codeWalletNotFound), respErr.MessageContains(noWalletMessage):
		return fmt.Errorf("%w: %w", ErrNoWallet, err)
	case respErr.HasCode(codeNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return err
	}
}

// Message returns the text to show to users for err: the server messages
// for GraphQL errors, err.Error() otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}

	if respErr, ok := graphql.AsResponseError(err); ok {
		return respErr.Error()
	}
	return err.Error()
}

package dashboard

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gabapcia/walletsync/internal/walletapi"

	"github.com/stretchr/testify/assert"
)

func TestBranch(t *testing.T) {
	type balance = QueryState[walletapi.WalletBalance]

	tests := []struct {
		name            string
		unauthenticated bool
		completed       bool
		balance         balance
		want            Branch
	}{
		{"nothing fetched yet", false, false, balance{}, BranchLoading},
		{"first fetch in flight", false, false, balance{Loading: true}, BranchLoading},
		{"no wallet", false, true, balance{Err: fmt.Errorf("balance: %w", walletapi.ErrNoWallet)}, BranchNoWallet},
		{"no data and no error", false, true, balance{}, BranchNoWallet},
		{"other error", false, true, balance{Err: errors.New("boom")}, BranchError},
		{"error beats stale data", false, true, balance{HasData: true, Err: errors.New("boom")}, BranchError},
		{"ready", false, true, balance{HasData: true}, BranchReady},
		{"reloading keeps ready", false, true, balance{HasData: true, Loading: true}, BranchReady},
		{"unauthenticated wins", true, true, balance{HasData: true}, BranchUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, branch(tt.unauthenticated, tt.completed, tt.balance))
		})
	}
}

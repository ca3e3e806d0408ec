package walletapi

import "strings"

const (
	// ExplorerBaseURL is the block explorer of the test network.
	ExplorerBaseURL = "https://sepolia.etherscan.io/tx/"

	// FaucetURL funds test network wallets.
	FaucetURL = "https://cloud.google.com/application/web3/faucet"
)

// ExplorerURL returns the block explorer page of a transaction.
func ExplorerURL(hash string) string {
	return ExplorerBaseURL + hash
}

// IsTestnet reports whether network names a test network, where the faucet applies.
func IsTestnet(network string) bool {
	n := strings.ToLower(network)
	return strings.Contains(n, "sepolia") || strings.Contains(n, "testnet")
}

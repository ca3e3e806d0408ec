package walletapi

import (
	"strings"

	"github.com/gabapcia/walletsync/internal/pkg/types"
)

type (
	// User is the authenticated user's profile as returned by `me`.
	User struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"firstName,omitempty"`
		LastName  string `json:"lastName,omitempty"`
		Suspended bool   `json:"suspended"`
		Deleted   bool   `json:"deleted"`
		CreatedAt string `json:"createdAt,omitempty"`
		UpdatedAt string `json:"updatedAt,omitempty"`
	}

	// LoggedInUser is the result of the login mutation.
	LoggedInUser struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}

	// CreatedUser is the result of the register mutation.
	CreatedUser struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"firstName,omitempty"`
		LastName  string `json:"lastName,omitempty"`
	}

	// LoginInput holds the credentials sent to the login mutation.
	LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// RegisterInput holds the new account sent to the register mutation.
	RegisterInput struct {
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Password  string `json:"password"`
	}

	// WalletBalance is the balance of the user's wallet or of any address.
	// Balance may be expressed in wei or in ether; see valuefmt.
	WalletBalance struct {
		Address          string           `json:"address"`
		Balance          string           `json:"balance"`
		FormattedBalance string           `json:"formattedBalance,omitempty"`
		Network          string           `json:"network"`
		USDValue         string           `json:"usdValue,omitempty"`
		LastUpdated      types.FlexString `json:"lastUpdated"`
	}

	// CreatedWallet is the result of the generate wallet mutation. The
	// mnemonic is only ever returned here.
	CreatedWallet struct {
		ID        string      `json:"id"`
		Address   string      `json:"address"`
		Balance   string      `json:"balance,omitempty"`
		Network   string      `json:"network,omitempty"`
		Mnemonic  string      `json:"mnemonic,omitempty"`
		CreatedAt string      `json:"createdAt,omitempty"`
		User      CreatedUser `json:"user"`
	}

	// EtherTransaction is the etherscan-like payload of the history query.
	EtherTransaction struct {
		Hash             string           `json:"hash"`
		From             string           `json:"from"`
		To               string           `json:"to"`
		Value            string           `json:"value"`
		BlockNumber      types.FlexString `json:"blockNumber"`
		TimeStamp        types.FlexString `json:"timeStamp"`
		Confirmations    types.FlexString `json:"confirmations"`
		Gas              types.FlexString `json:"gas"`
		GasUsed          types.FlexString `json:"gasUsed"`
		TransactionIndex types.FlexString `json:"transactionIndex"`
		IsError          types.FlexString `json:"isError"`
		TxReceiptStatus  types.FlexString `json:"txreceipt_status"`
	}

	// AlchemyTransaction is the normalized payload of the single transaction query.
	AlchemyTransaction struct {
		Hash          string           `json:"hash"`
		FromAddress   string           `json:"fromAddress"`
		ToAddress     string           `json:"toAddress"`
		Value         string           `json:"value"`
		Status        string           `json:"status"`
		Timestamp     types.FlexString `json:"timestamp"`
		BlockNumber   types.FlexString `json:"blockNumber"`
		Confirmations types.FlexString `json:"confirmations"`
		GasPrice      types.FlexString `json:"gasPrice"`
		GasUsed       types.FlexString `json:"gasUsed"`
		Asset         string           `json:"asset,omitempty"`
		Category      string           `json:"category,omitempty"`
	}

	// TransferRequest is the input of the transfer funds mutation. Amount
	// is expressed in ether.
	TransferRequest struct {
		ToAddress string  `json:"toAddress"`
		Amount    float64 `json:"amount"`
		Memo      string  `json:"memo,omitempty"`
	}

	// TransferResult carries the hash of a broadcast, possibly unconfirmed, transfer.
	TransferResult struct {
		Hash string `json:"hash"`
	}
)

// Status is the outcome of a transaction.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusPending Status = "pending"
	StatusUnknown Status = "unknown"
)

// Label returns the capitalized form shown to users.
func (s Status) Label() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusFailed:
		return "Failed"
	case StatusPending:
		return "Pending"
	default:
		return "Unknown"
	}
}

// Direction tells whether a transaction left or reached a wallet.
type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// Transaction is the single transaction shape used past the API boundary.
// Transactions are immutable once observed.
type Transaction struct {
	Hash          string
	From          string
	To            string
	Value         string // raw amount, wei or ether
	Status        Status
	Timestamp     string // epoch seconds or a date string
	BlockNumber   string
	Confirmations int64
	GasUsed       string
	GasPrice      string
	Asset         string
	Category      string
}

// DirectionFor reports whether tx was sent from or received by address.
// Addresses are compared case-insensitively.
func (tx Transaction) DirectionFor(address string) Direction {
	if strings.EqualFold(tx.From, address) {
		return DirectionSent
	}
	return DirectionReceived
}

// Transaction converts the etherscan-like payload. isError "0" is a
// success, anything else a failure.
func (t EtherTransaction) Transaction() Transaction {
	status := StatusFailed
	if t.IsError == "0" {
		status = StatusSuccess
	}

	return Transaction{
		Hash:          t.Hash,
		From:          t.From,
		To:            t.To,
		Value:         t.Value,
		Status:        status,
		Timestamp:     t.TimeStamp.String(),
		BlockNumber:   t.BlockNumber.String(),
		Confirmations: t.Confirmations.Int(),
		GasUsed:       t.GasUsed.String(),
	}
}

// Transaction converts the normalized payload.
func (t AlchemyTransaction) Transaction() Transaction {
	return Transaction{
		Hash:          t.Hash,
		From:          t.FromAddress,
		To:            t.ToAddress,
		Value:         t.Value,
		Status:        parseStatus(t.Status),
		Timestamp:     t.Timestamp.String(),
		BlockNumber:   t.BlockNumber.String(),
		Confirmations: t.Confirmations.Int(),
		GasUsed:       t.GasUsed.String(),
		GasPrice:      t.GasPrice.String(),
		Asset:         t.Asset,
		Category:      t.Category,
	}
}

func parseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "success", "confirmed", "completed", "1":
		return StatusSuccess
	case "failed", "failure", "error", "reverted", "0":
		return StatusFailed
	case "pending":
		return StatusPending
	default:
		return StatusUnknown
	}
}

func convertEtherTransactions(in []EtherTransaction) []Transaction {
	out := make([]Transaction, len(in))
	for i, tx := range in {
		out[i] = tx.Transaction()
	}
	return out
}

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gabapcia/walletsync/internal/dashboard"
	"github.com/gabapcia/walletsync/internal/valuefmt"
	"github.com/gabapcia/walletsync/internal/walletapi"
)

// notAvailable is printed for fields the API did not send.
const notAvailable = "N/A"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func formatAmount(raw string) string {
	return valuefmt.FormatValue(raw) + " ETH"
}

func formatDate(raw string, loc *time.Location) string {
	if strings.TrimSpace(raw) == "" {
		return notAvailable
	}
	return valuefmt.FormatTimestamp(raw, loc)
}

func renderBalance(w io.Writer, b walletapi.WalletBalance, loc *time.Location) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Address:\t%s\n", orNA(b.Address))
	fmt.Fprintf(tw, "Network:\t%s\n", orNA(b.Network))
	fmt.Fprintf(tw, "Balance:\t%s ETH\n", valuefmt.DisplayBalance(b.FormattedBalance, b.Balance))
	fmt.Fprintf(tw, "USD value:\t%s\n", orNA(b.USDValue))
	fmt.Fprintf(tw, "Last updated:\t%s\n", formatDate(b.LastUpdated.String(), loc))
	if walletapi.IsTestnet(b.Network) {
		fmt.Fprintf(tw, "Faucet:\t%s\n", walletapi.FaucetURL)
	}
	tw.Flush()
}

// renderHistory prints one history page. address is the wallet the
// directions are relative to; "" leaves them out.
func renderHistory(w io.Writer, txs []walletapi.Transaction, address string, loc *time.Location) {
	if len(txs) == 0 {
		fmt.Fprintln(w, "No transactions yet.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "HASH\tDIRECTION\tVALUE\tSTATUS\tDATE")
	for _, tx := range txs {
		direction := "-"
		if address != "" {
			direction = string(tx.DirectionFor(address))
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			tx.Hash,
			direction,
			formatAmount(tx.Value),
			tx.Status.Label(),
			formatDate(tx.Timestamp, loc),
		)
	}
	tw.Flush()
}

func renderPage(w io.Writer, page int, hasPrevious, hasNext bool) {
	var nav []string
	if hasPrevious {
		nav = append(nav, "prev")
	}
	if hasNext {
		nav = append(nav, "next")
	}

	if len(nav) == 0 {
		fmt.Fprintf(w, "Page %d\n", page)
		return
	}
	fmt.Fprintf(w, "Page %d (%s)\n", page, strings.Join(nav, ", "))
}

func renderTransaction(w io.Writer, tx walletapi.Transaction, loc *time.Location) {
	confirmations := notAvailable
	if tx.Confirmations > 0 {
		confirmations = strconv.FormatInt(tx.Confirmations, 10)
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "Hash:\t%s\n", tx.Hash)
	fmt.Fprintf(tw, "Status:\t%s\n", tx.Status.Label())
	fmt.Fprintf(tw, "From:\t%s\n", orNA(tx.From))
	fmt.Fprintf(tw, "To:\t%s\n", orNA(tx.To))
	fmt.Fprintf(tw, "Value:\t%s\n", formatAmount(tx.Value))
	fmt.Fprintf(tw, "Date:\t%s\n", formatDate(tx.Timestamp, loc))
	fmt.Fprintf(tw, "Block:\t%s\n", orNA(tx.BlockNumber))
	fmt.Fprintf(tw, "Confirmations:\t%s\n", confirmations)
	fmt.Fprintf(tw, "Gas used:\t%s\n", orNA(tx.GasUsed))
	fmt.Fprintf(tw, "Gas price:\t%s\n", orNA(tx.GasPrice))
	if tx.Asset != "" {
		fmt.Fprintf(tw, "Asset:\t%s\n", tx.Asset)
	}
	if tx.Category != "" {
		fmt.Fprintf(tw, "Category:\t%s\n", tx.Category)
	}
	fmt.Fprintf(tw, "Explorer:\t%s\n", walletapi.ExplorerURL(tx.Hash))
	tw.Flush()
}

func renderUser(w io.Writer, u walletapi.User) {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)

	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", u.ID)
	fmt.Fprintf(tw, "Email:\t%s\n", orNA(u.Email))
	fmt.Fprintf(tw, "Name:\t%s\n", orNA(name))
	if u.CreatedAt != "" {
		fmt.Fprintf(tw, "Member since:\t%s\n", u.CreatedAt)
	}
	if u.Suspended {
		fmt.Fprintln(tw, "Status:\tsuspended")
	}
	tw.Flush()
}

func renderWallet(w io.Writer, wallet walletapi.CreatedWallet) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Address:\t%s\n", wallet.Address)
	fmt.Fprintf(tw, "Network:\t%s\n", orNA(wallet.Network))
	if wallet.Mnemonic != "" {
		fmt.Fprintf(tw, "Mnemonic:\t%s\n", wallet.Mnemonic)
	}
	tw.Flush()

	if wallet.Mnemonic != "" {
		fmt.Fprintln(w, "Write the mnemonic down and keep it safe. It will not be shown again.")
	}
	if walletapi.IsTestnet(wallet.Network) {
		fmt.Fprintf(w, "Fund it with test ether at %s\n", walletapi.FaucetURL)
	}
}

// renderDashboard prints the whole dashboard for the current branch.
func renderDashboard(w io.Writer, s dashboard.Snapshot, transfer dashboard.TransferSnapshot, loc *time.Location) {
	switch s.Branch {
	case dashboard.BranchLoading:
		fmt.Fprintln(w, "Loading...")
		return
	case dashboard.BranchUnauthenticated:
		fmt.Fprintln(w, "Your session has expired. Please log in again.")
		return
	case dashboard.BranchNoWallet:
		fmt.Fprintln(w, "You do not have a wallet yet. Type 'generate' to create one.")
		return
	case dashboard.BranchError:
		fmt.Fprintf(w, "Error: %s\n", walletapi.Message(s.Balance.Err))
		return
	}

	renderBalance(w, s.Balance.Data, loc)
	fmt.Fprintln(w)

	switch {
	case s.History.Err != nil:
		fmt.Fprintf(w, "Could not load transactions: %s\n", walletapi.Message(s.History.Err))
	case !s.History.HasData:
		fmt.Fprintln(w, "Loading transactions...")
	default:
		renderHistory(w, s.History.Data, s.Balance.Data.Address, loc)
	}
	renderPage(w, s.Page, s.HasPrevious, s.HasNext)

	if s.PendingRefresh != "" {
		fmt.Fprintf(w, "Waiting for %s to be indexed...\n", s.PendingRefresh)
	}
	if transfer.Success != "" {
		fmt.Fprintln(w, transfer.Success)
	}
	renderTransferPanel(w, transfer)
}

// renderTransferPanel prints the transfer in flight, or the form and its
// problems while the panel is open.
func renderTransferPanel(w io.Writer, t dashboard.TransferSnapshot) {
	amount := notAvailable
	if t.Form.Amount > 0 {
		amount = strconv.FormatFloat(t.Form.Amount, 'f', -1, 64)
	}

	switch {
	case t.State == dashboard.TransferSubmitting:
		fmt.Fprintf(w, "Sending %s ETH to %s...\n", amount, strings.TrimSpace(t.Form.ToAddress))
	case t.PanelOpen:
		fmt.Fprintf(w, "Transfer form: to %s, amount %s, memo %s\n", orNA(t.Form.ToAddress), amount, orNA(t.Form.Memo))
		for _, msg := range t.Errors {
			fmt.Fprintf(w, "  %s\n", msg)
		}
	}
}

// Package report provides read-only views over the ledger state:
// transaction projections joined with their referenced entities, filtering
// and sorting for display, and the aggregations behind reporting.
package report

import (
	"fintrack/internal/ledger"
	"fintrack/internal/model"
)

// Placeholders substituted for dangling references so that one corrupt
// transaction never blocks projecting the rest.
var (
	UnknownCategory = model.Category{ID: "unknown", Name: "Unknown Category", Icon: "❓", Color: "#9CA3AF", Type: model.CategoryTypeExpense}
	UnknownAccount  = model.Account{ID: "unknown", Name: "Unknown Account", Type: model.AccountTypeCash, Color: "#9CA3AF"}

	// TransferCategory stands in for transfers, which carry no category of
	// their own.
	TransferCategory = model.Category{ID: "transfer", Name: "Transfer", Icon: "🔁", Color: "#6B7280", Type: model.CategoryTypeExpense}
)

// TransactionWithDetails is a transaction joined with its resolved category
// and accounts for display.
type TransactionWithDetails struct {
	model.Transaction
	Category  model.Category
	Account   model.Account
	ToAccount *model.Account
}

// WithDetails projects every transaction in the state, resolving category,
// account, and destination account references. Dangling references resolve
// to the Unknown placeholders.
func WithDetails(state ledger.State) []TransactionWithDetails {
	out := make([]TransactionWithDetails, 0, len(state.Transactions))
	for _, txn := range state.Transactions {
		detail := TransactionWithDetails{
			Transaction: txn,
			Category:    UnknownCategory,
			Account:     UnknownAccount,
		}
		if txn.IsTransfer() && txn.CategoryID == "" {
			detail.Category = TransferCategory
		} else if cat := state.Category(txn.CategoryID); cat != nil {
			detail.Category = *cat
		}
		if acc := state.Account(txn.AccountID); acc != nil {
			detail.Account = *acc
		}
		if txn.ToAccountID != "" {
			if to := state.Account(txn.ToAccountID); to != nil {
				detail.ToAccount = to
			} else {
				unknown := UnknownAccount
				detail.ToAccount = &unknown
			}
		}
		out = append(out, detail)
	}
	return out
}

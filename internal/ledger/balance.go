package ledger

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/model"
)

// AccountBalance derives the live balance of an account: its stored opening
// balance plus the net effect of every transaction referencing it. Income
// credits the source account, expenses debit it, and a transfer debits the
// source and credits the destination by the same amount. Returns zero if
// the account does not exist; callers needing an existence check must do it
// separately.
func AccountBalance(state State, accountID string) decimal.Decimal {
	acc := state.Account(accountID)
	if acc == nil {
		return decimal.Zero
	}

	balance := acc.Balance
	for _, txn := range state.Transactions {
		if txn.AccountID == accountID {
			switch txn.Type {
			case model.TransactionTypeIncome:
				balance = balance.Add(txn.Amount)
			case model.TransactionTypeExpense:
				balance = balance.Sub(txn.Amount)
			case model.TransactionTypeTransfer:
				balance = balance.Sub(txn.Amount)
			}
		}
		if txn.ToAccountID == accountID && txn.Type == model.TransactionTypeTransfer {
			balance = balance.Add(txn.Amount)
		}
	}

	return balance
}

// TotalBalance derives the portfolio total: the sum of every account's
// balance. Transfers cancel out by construction, so this equals the sum of
// opening balances plus the net of all income and expense transactions.
func TotalBalance(state State) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range state.Accounts {
		total = total.Add(AccountBalance(state, acc.ID))
	}
	return total
}

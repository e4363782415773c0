package ledger

import (
	"fintrack/internal/model"
)

// Apply transitions the state under the given action and returns the new
// state. It is a total function: structurally valid input never fails, and
// update/delete actions with unknown IDs return the state unchanged. The
// input state is never mutated. Validation is deliberately absent here; it
// belongs to the boundary that constructs actions.
func Apply(state State, action Action) State {
	switch a := action.(type) {
	case SetAccounts:
		next := state.Clone()
		next.Accounts = copyAccounts(a.Accounts)
		return next

	case AddAccount:
		next := state.Clone()
		next.Accounts = append(next.Accounts, a.Account)
		return next

	case UpdateAccount:
		next := state.Clone()
		for i := range next.Accounts {
			if next.Accounts[i].ID == a.Account.ID {
				next.Accounts[i] = a.Account
				break
			}
		}
		return next

	case DeleteAccount:
		next := state.Clone()
		next.Accounts = deleteAccountByID(next.Accounts, a.ID)
		return next

	case SetCategories:
		next := state.Clone()
		next.Categories = copyCategories(a.Categories)
		return next

	case AddCategory:
		next := state.Clone()
		next.Categories = append(next.Categories, a.Category)
		return next

	case SetTransactions:
		next := state.Clone()
		next.Transactions = copyTransactions(a.Transactions)
		return next

	case AddTransaction:
		next := state.Clone()
		next.Transactions = append(next.Transactions, a.Transaction)
		return next

	case UpdateTransaction:
		next := state.Clone()
		for i := range next.Transactions {
			if next.Transactions[i].ID == a.Transaction.ID {
				next.Transactions[i] = a.Transaction
				break
			}
		}
		return next

	case DeleteTransaction:
		next := state.Clone()
		next.Transactions = deleteTransactionByID(next.Transactions, a.ID)
		return next

	case ToggleDarkMode:
		next := state.Clone()
		next.DarkMode = !next.DarkMode
		return next

	case LoadData:
		return a.State.Clone()

	default:
		return state
	}
}

func copyAccounts(in []model.Account) []model.Account {
	if in == nil {
		return nil
	}
	out := make([]model.Account, len(in))
	copy(out, in)
	return out
}

func copyCategories(in []model.Category) []model.Category {
	if in == nil {
		return nil
	}
	out := make([]model.Category, len(in))
	copy(out, in)
	return out
}

func copyTransactions(in []model.Transaction) []model.Transaction {
	if in == nil {
		return nil
	}
	out := make([]model.Transaction, len(in))
	copy(out, in)
	return out
}

func deleteAccountByID(accounts []model.Account, id string) []model.Account {
	out := accounts[:0]
	for _, acc := range accounts {
		if acc.ID != id {
			out = append(out, acc)
		}
	}
	return out
}

func deleteTransactionByID(transactions []model.Transaction, id string) []model.Transaction {
	out := transactions[:0]
	for _, txn := range transactions {
		if txn.ID != id {
			out = append(out, txn)
		}
	}
	return out
}

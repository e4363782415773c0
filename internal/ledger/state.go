// Package ledger implements the pure state model at the heart of the
// application: the ledger state, the reducer that transitions it under
// actions, and the balance derivation over the transaction log.
package ledger

import (
	"fintrack/internal/model"
)

// State is the whole ledger state. It is treated as an immutable value:
// the reducer returns a new State and never modifies the one it was given.
type State struct {
	Accounts     []model.Account
	Categories   []model.Category
	Transactions []model.Transaction
	DarkMode     bool
}

// Clone returns a deep copy of the state. Entity structs contain only value
// types, so copying the slices is sufficient.
func (s State) Clone() State {
	out := State{DarkMode: s.DarkMode}
	if s.Accounts != nil {
		out.Accounts = make([]model.Account, len(s.Accounts))
		copy(out.Accounts, s.Accounts)
	}
	if s.Categories != nil {
		out.Categories = make([]model.Category, len(s.Categories))
		copy(out.Categories, s.Categories)
	}
	if s.Transactions != nil {
		out.Transactions = make([]model.Transaction, len(s.Transactions))
		copy(out.Transactions, s.Transactions)
	}
	return out
}

// Account returns the account with the given ID, or nil.
func (s State) Account(id string) *model.Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			acc := s.Accounts[i]
			return &acc
		}
	}
	return nil
}

// Category returns the category with the given ID, or nil.
func (s State) Category(id string) *model.Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			cat := s.Categories[i]
			return &cat
		}
	}
	return nil
}

// Transaction returns the transaction with the given ID, or nil.
func (s State) Transaction(id string) *model.Transaction {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			txn := s.Transactions[i]
			return &txn
		}
	}
	return nil
}

// TransactionsForAccount returns every transaction referencing the account
// as source or destination.
func (s State) TransactionsForAccount(id string) []model.Transaction {
	var out []model.Transaction
	for _, txn := range s.Transactions {
		if txn.AccountID == id || txn.ToAccountID == id {
			out = append(out, txn)
		}
	}
	return out
}

// CategoryUsageCount returns how many transactions reference the category.
func (s State) CategoryUsageCount(id string) int {
	n := 0
	for _, txn := range s.Transactions {
		if txn.CategoryID == id {
			n++
		}
	}
	return n
}

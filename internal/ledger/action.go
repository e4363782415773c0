package ledger

import (
	"fintrack/internal/model"
)

// Action is a state transition request handled by Apply. The set of actions
// is closed; each one is a plain value carrying its payload.
type Action interface {
	isAction()
}

// SetAccounts replaces the account list wholesale.
type SetAccounts struct {
	Accounts []model.Account
}

// AddAccount appends an account. The caller supplies the ID and CreatedAt;
// the reducer does not generate identity.
type AddAccount struct {
	Account model.Account
}

// UpdateAccount replaces the account with a matching ID wholesale. No-op if
// the ID is not found.
type UpdateAccount struct {
	Account model.Account
}

// DeleteAccount removes the account with the given ID. It does not cascade
// to transactions; cascading is composed by the caller from
// DeleteTransaction actions.
type DeleteAccount struct {
	ID string
}

// SetCategories replaces the category list wholesale. Category deletion is
// expressed as SetCategories with the target filtered out by the caller.
type SetCategories struct {
	Categories []model.Category
}

// AddCategory appends a category.
type AddCategory struct {
	Category model.Category
}

// SetTransactions replaces the transaction list wholesale.
type SetTransactions struct {
	Transactions []model.Transaction
}

// AddTransaction appends a transaction.
type AddTransaction struct {
	Transaction model.Transaction
}

// UpdateTransaction replaces the transaction with a matching ID wholesale.
// No-op if the ID is not found.
type UpdateTransaction struct {
	Transaction model.Transaction
}

// DeleteTransaction removes the transaction with the given ID.
type DeleteTransaction struct {
	ID string
}

// ToggleDarkMode flips the display flag.
type ToggleDarkMode struct{}

// LoadData replaces the whole state, bypassing all partial-update logic.
type LoadData struct {
	State State
}

func (SetAccounts) isAction()       {}
func (AddAccount) isAction()        {}
func (UpdateAccount) isAction()     {}
func (DeleteAccount) isAction()     {}
func (SetCategories) isAction()     {}
func (AddCategory) isAction()       {}
func (SetTransactions) isAction()   {}
func (AddTransaction) isAction()    {}
func (UpdateTransaction) isAction() {}
func (DeleteTransaction) isAction() {}
func (ToggleDarkMode) isAction()    {}
func (LoadData) isAction()          {}

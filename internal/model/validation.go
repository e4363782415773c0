package model

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrInvalidAccount     = errors.New("invalid account")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// ValidateAccount checks an account for structural validity.
func ValidateAccount(acc *Account) error {
	if acc == nil {
		return fmt.Errorf("%w: nil", ErrInvalidAccount)
	}
	if strings.TrimSpace(acc.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidAccount)
	}
	if strings.TrimSpace(acc.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidAccount)
	}
	if !ValidAccountType(acc.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidAccount, acc.Type)
	}
	return nil
}

// ValidateCategory checks a category for structural validity.
func ValidateCategory(cat *Category) error {
	if cat == nil {
		return fmt.Errorf("%w: nil", ErrInvalidCategory)
	}
	if strings.TrimSpace(cat.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidCategory)
	}
	if strings.TrimSpace(cat.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCategory)
	}
	if !ValidCategoryType(cat.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidCategory, cat.Type)
	}
	return nil
}

// ValidateTransaction checks a transaction for structural validity and for
// referential integrity against the given accounts and categories. Income
// transactions must use an income category and expense transactions an
// expense category; transfers are exempt from category matching but must
// name a destination account distinct from the source.
func ValidateTransaction(txn *Transaction, accounts []Account, categories []Category) error {
	if txn == nil {
		return fmt.Errorf("%w: nil", ErrInvalidTransaction)
	}
	if strings.TrimSpace(txn.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if !ValidTransactionType(txn.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, txn.Type)
	}
	if !txn.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidTransaction, txn.Amount)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}

	if findAccount(accounts, txn.AccountID) == nil {
		return fmt.Errorf("%w: unknown account %q", ErrInvalidTransaction, txn.AccountID)
	}

	if txn.Type == TransactionTypeTransfer {
		if txn.ToAccountID == "" {
			return fmt.Errorf("%w: transfer requires a destination account", ErrInvalidTransaction)
		}
		if txn.ToAccountID == txn.AccountID {
			return fmt.Errorf("%w: cannot transfer to the same account", ErrInvalidTransaction)
		}
		if findAccount(accounts, txn.ToAccountID) == nil {
			return fmt.Errorf("%w: unknown destination account %q", ErrInvalidTransaction, txn.ToAccountID)
		}
		return nil
	}

	if txn.ToAccountID != "" {
		return fmt.Errorf("%w: destination account is only valid on transfers", ErrInvalidTransaction)
	}

	cat := findCategory(categories, txn.CategoryID)
	if cat == nil {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidTransaction, txn.CategoryID)
	}
	if string(cat.Type) != string(txn.Type) {
		return fmt.Errorf("%w: %s transaction cannot use %s category %q",
			ErrInvalidTransaction, txn.Type, cat.Type, cat.Name)
	}

	return nil
}

func findAccount(accounts []Account, id string) *Account {
	for i := range accounts {
		if accounts[i].ID == id {
			return &accounts[i]
		}
	}
	return nil
}

func findCategory(categories []Category, id string) *Category {
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i]
		}
	}
	return nil
}

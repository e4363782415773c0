package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fintrack/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrInvalidAccount     = errors.New("invalid account")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateAccount checks the fields the schema requires before insert.
func validateAccount(acc *model.Account) error {
	if acc.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidAccount)
	}
	if acc.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidAccount)
	}
	if acc.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing creation time", ErrInvalidAccount)
	}
	return nil
}

// validateCategory checks the fields the schema requires before insert.
func validateCategory(cat *model.Category) error {
	if cat.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidCategory)
	}
	if cat.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCategory)
	}
	return nil
}

// validateTransaction checks the fields the schema requires before insert.
func validateTransaction(txn *model.Transaction) error {
	if txn.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if txn.AccountID == "" {
		return fmt.Errorf("%w: missing account ID", ErrInvalidTransaction)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	return nil
}

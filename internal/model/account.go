package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account for display and reporting purposes.
type AccountType string

// Account type constants.
const (
	AccountTypeCash       AccountType = "cash"
	AccountTypeBank       AccountType = "bank"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
)

// ValidAccountType reports whether t is one of the known account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeCash, AccountTypeBank, AccountTypeCredit,
		AccountTypeSavings, AccountTypeInvestment:
		return true
	}
	return false
}

// Account represents a financial account. Balance is the opening balance
// captured at creation time; the live balance is always derived from the
// transaction log and never written back here.
type Account struct {
	CreatedAt   time.Time       `json:"createdAt"`
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        AccountType     `json:"type"`
	Color       string          `json:"color"`
	Description string          `json:"description,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
}

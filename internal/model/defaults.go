package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategories returns the seed category set used when no data exists,
// including the two reserved transfer leg categories that legacy exports
// reference.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Salary", Icon: "💼", Color: "#10B981", Type: CategoryTypeIncome},
		{ID: "2", Name: "Freelance", Icon: "💻", Color: "#059669", Type: CategoryTypeIncome},
		{ID: "3", Name: "Investment", Icon: "📈", Color: "#047857", Type: CategoryTypeIncome},
		{ID: "4", Name: "Other Income", Icon: "💰", Color: "#065F46", Type: CategoryTypeIncome},

		{ID: "5", Name: "Food & Dining", Icon: "🍽️", Color: "#EF4444", Type: CategoryTypeExpense},
		{ID: "6", Name: "Transportation", Icon: "🚗", Color: "#F97316", Type: CategoryTypeExpense},
		{ID: "7", Name: "Shopping", Icon: "🛍️", Color: "#8B5CF6", Type: CategoryTypeExpense},
		{ID: "8", Name: "Entertainment", Icon: "🎬", Color: "#EC4899", Type: CategoryTypeExpense},
		{ID: "9", Name: "Bills & Utilities", Icon: "⚡", Color: "#6B7280", Type: CategoryTypeExpense},
		{ID: "10", Name: "Healthcare", Icon: "🏥", Color: "#DC2626", Type: CategoryTypeExpense},
		{ID: "11", Name: "Education", Icon: "📚", Color: "#2563EB", Type: CategoryTypeExpense},
		{ID: "12", Name: "Travel", Icon: "✈️", Color: "#0891B2", Type: CategoryTypeExpense},

		{ID: CategoryTransferOut, Name: "Transfer Out", Icon: "↗️", Color: "#6B7280", Type: CategoryTypeExpense},
		{ID: CategoryTransferIn, Name: "Transfer In", Icon: "↙️", Color: "#10B981", Type: CategoryTypeIncome},
	}
}

// DefaultAccounts returns the sample accounts used when no data exists.
func DefaultAccounts(now time.Time) []Account {
	return []Account{
		{ID: "1", Name: "Main Checking", Type: AccountTypeBank, Balance: decimal.NewFromInt(2500), Color: "#2563EB", CreatedAt: now},
		{ID: "2", Name: "Savings", Type: AccountTypeSavings, Balance: decimal.NewFromInt(10000), Color: "#10B981", CreatedAt: now},
		{ID: "3", Name: "Cash Wallet", Type: AccountTypeCash, Balance: decimal.NewFromInt(150), Color: "#F59E0B", CreatedAt: now},
	}
}

package model

// CategoryType indicates whether a category is for income or expense.
type CategoryType string

// Category type constants.
const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Reserved category IDs used by legacy exports that represent a transfer as
// a pair of income/expense transactions.
const (
	CategoryTransferOut = "transfer-out"
	CategoryTransferIn  = "transfer-in"
)

// ValidCategoryType reports whether t is one of the known category types.
func ValidCategoryType(t CategoryType) bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category represents a transaction category. Icon and Color are opaque
// display attributes.
type Category struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Icon  string       `json:"icon"`
	Color string       `json:"color"`
	Type  CategoryType `json:"type"`
}

// IsTransferCategory reports whether id is one of the reserved transfer
// leg categories.
func IsTransferCategory(id string) bool {
	return id == CategoryTransferOut || id == CategoryTransferIn
}

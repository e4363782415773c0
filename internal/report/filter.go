package report

import (
	"sort"
	"strings"
	"time"

	"fintrack/internal/model"
)

// Filter narrows a projected transaction list. Zero-valued fields match
// everything. Search matches case-insensitively against the description,
// category name, and account name.
type Filter struct {
	From       *time.Time
	To         *time.Time
	Type       model.TransactionType
	CategoryID string
	AccountID  string
	Search     string
}

// Apply returns the transactions matching the filter, preserving order.
func (f Filter) Apply(transactions []TransactionWithDetails) []TransactionWithDetails {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]TransactionWithDetails, 0, len(transactions))
	for _, txn := range transactions {
		if f.From != nil && txn.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && txn.Date.After(*f.To) {
			continue
		}
		if f.Type != "" && txn.Type != f.Type {
			continue
		}
		if f.CategoryID != "" && txn.CategoryID != f.CategoryID {
			continue
		}
		if f.AccountID != "" && txn.AccountID != f.AccountID {
			continue
		}
		if search != "" && !matchesSearch(txn, search) {
			continue
		}
		out = append(out, txn)
	}
	return out
}

func matchesSearch(txn TransactionWithDetails, search string) bool {
	return strings.Contains(strings.ToLower(txn.Description), search) ||
		strings.Contains(strings.ToLower(txn.Category.Name), search) ||
		strings.Contains(strings.ToLower(txn.Account.Name), search)
}

// SortField selects the sort key for a transaction list.
type SortField string

// Sort field constants.
const (
	SortByDate     SortField = "date"
	SortByAmount   SortField = "amount"
	SortByCategory SortField = "category"
)

// Sort orders transactions by the given field. Ties are broken by
// transaction ID so the order is deterministic. The input slice is sorted
// in place and returned.
func Sort(transactions []TransactionWithDetails, field SortField, descending bool) []TransactionWithDetails {
	sort.SliceStable(transactions, func(i, j int) bool {
		a, b := transactions[i], transactions[j]
		if descending {
			a, b = b, a
		}

		var less, equal bool
		switch field {
		case SortByAmount:
			cmp := a.Amount.Cmp(b.Amount)
			less, equal = cmp < 0, cmp == 0
		case SortByCategory:
			less = a.Category.Name < b.Category.Name
			equal = a.Category.Name == b.Category.Name
		default:
			less = a.Date.Before(b.Date)
			equal = a.Date.Equal(b.Date)
		}

		if equal {
			return a.Transaction.ID < b.Transaction.ID
		}
		return less
	})
	return transactions
}

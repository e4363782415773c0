package store

import "time"

// Summary describes the data currently held by the store.
type Summary struct {
	OldestTransaction time.Time
	NewestTransaction time.Time
	Accounts          int
	Categories        int
	Transactions      int
}

// Summary returns entity counts and the transaction date span. The
// timestamps are zero when there are no transactions.
func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := Summary{
		Accounts:     len(s.state.Accounts),
		Categories:   len(s.state.Categories),
		Transactions: len(s.state.Transactions),
	}
	for _, txn := range s.state.Transactions {
		if sum.OldestTransaction.IsZero() || txn.Date.Before(sum.OldestTransaction) {
			sum.OldestTransaction = txn.Date
		}
		if txn.Date.After(sum.NewestTransaction) {
			sum.NewestTransaction = txn.Date
		}
	}
	return sum
}

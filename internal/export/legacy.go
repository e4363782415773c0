package export

import (
	"fintrack/internal/model"
)

// collapseLegacyTransfers folds the old dual-transaction transfer
// representation into the canonical one. Older exports recorded a transfer
// as an expense against the reserved transfer-out category plus an income
// against transfer-in, with equal amount, date, and description. Each
// matched pair becomes a single transfer transaction; unmatched legs are
// kept as the plain income/expense rows they are.
func collapseLegacyTransfers(transactions []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(transactions))
	consumed := make(map[int]bool)

	for i, txn := range transactions {
		if consumed[i] {
			continue
		}
		if txn.CategoryID != model.CategoryTransferOut || txn.Type != model.TransactionTypeExpense {
			out = append(out, txn)
			continue
		}

		j := findTransferInLeg(transactions, consumed, i)
		if j < 0 {
			out = append(out, txn)
			continue
		}

		consumed[j] = true
		out = append(out, model.Transaction{
			ID:          txn.ID,
			Type:        model.TransactionTypeTransfer,
			Amount:      txn.Amount,
			AccountID:   txn.AccountID,
			ToAccountID: transactions[j].AccountID,
			Description: txn.Description,
			Date:        txn.Date,
			CreatedAt:   txn.CreatedAt,
		})
	}

	return out
}

func findTransferInLeg(transactions []model.Transaction, consumed map[int]bool, outIdx int) int {
	outLeg := transactions[outIdx]
	for j, candidate := range transactions {
		if j == outIdx || consumed[j] {
			continue
		}
		if candidate.CategoryID != model.CategoryTransferIn || candidate.Type != model.TransactionTypeIncome {
			continue
		}
		if !candidate.Amount.Equal(outLeg.Amount) {
			continue
		}
		if !candidate.Date.Equal(outLeg.Date) {
			continue
		}
		if candidate.Description != outLeg.Description {
			continue
		}
		if candidate.AccountID == outLeg.AccountID {
			continue
		}
		return j
	}
	return -1
}

package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/ledger"
	"fintrack/internal/model"
)

// CategoryTotal is one category's contribution within a breakdown.
type CategoryTotal struct {
	Category model.Category
	Amount   decimal.Decimal
	Count    int
}

// CategoryBreakdown sums transactions of the given type per category within
// the window, largest amount first. From/To are optional.
func CategoryBreakdown(transactions []TransactionWithDetails, typ model.TransactionType, from, to *time.Time) []CategoryTotal {
	filtered := Filter{Type: typ, From: from, To: to}.Apply(transactions)

	totals := make(map[string]*CategoryTotal)
	var order []string
	for _, txn := range filtered {
		entry, ok := totals[txn.Category.ID]
		if !ok {
			entry = &CategoryTotal{Category: txn.Category}
			totals[txn.Category.ID] = entry
			order = append(order, txn.Category.ID)
		}
		entry.Amount = entry.Amount.Add(txn.Amount)
		entry.Count++
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, id := range order {
		out = append(out, *totals[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		cmp := out[i].Amount.Cmp(out[j].Amount)
		if cmp == 0 {
			return out[i].Category.ID < out[j].Category.ID
		}
		return cmp > 0
	})
	return out
}

// PeriodTotals is one calendar period in a trend series.
type PeriodTotals struct {
	Period   string
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
	Count    int
}

// MonthlySeries groups income and expense activity by calendar month
// (YYYY-MM keys), earliest first. Transfers are excluded: they move money
// between accounts without changing the total.
func MonthlySeries(transactions []TransactionWithDetails) []PeriodTotals {
	return periodSeries(transactions, func(d time.Time) string {
		return d.Format("2006-01")
	})
}

// WeeklySeries groups by ISO week (YYYY-Www keys), earliest first.
func WeeklySeries(transactions []TransactionWithDetails) []PeriodTotals {
	return periodSeries(transactions, func(d time.Time) string {
		year, week := d.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	})
}

func periodSeries(transactions []TransactionWithDetails, key func(time.Time) string) []PeriodTotals {
	totals := make(map[string]*PeriodTotals)
	for _, txn := range transactions {
		if txn.Type == model.TransactionTypeTransfer {
			continue
		}
		k := key(txn.Date)
		entry, ok := totals[k]
		if !ok {
			entry = &PeriodTotals{Period: k}
			totals[k] = entry
		}
		switch txn.Type {
		case model.TransactionTypeIncome:
			entry.Income = entry.Income.Add(txn.Amount)
		case model.TransactionTypeExpense:
			entry.Expenses = entry.Expenses.Add(txn.Amount)
		}
		entry.Net = entry.Income.Sub(entry.Expenses)
		entry.Count++
	}

	out := make([]PeriodTotals, 0, len(totals))
	for _, entry := range totals {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// AccountActivity is a per-account rollup of transaction activity.
type AccountActivity struct {
	Account      model.Account
	Income       decimal.Decimal
	Expenses     decimal.Decimal
	TransfersIn  decimal.Decimal
	TransfersOut decimal.Decimal
	Balance      decimal.Decimal
	Count        int
}

// AccountsActivity rolls up income, expenses, transfers, transaction count,
// and current balance for every account in the state.
func AccountsActivity(state ledger.State) []AccountActivity {
	out := make([]AccountActivity, 0, len(state.Accounts))
	for _, acc := range state.Accounts {
		activity := AccountActivity{
			Account: acc,
			Balance: ledger.AccountBalance(state, acc.ID),
		}
		for _, txn := range state.Transactions {
			switch {
			case txn.AccountID == acc.ID && txn.Type == model.TransactionTypeIncome:
				activity.Income = activity.Income.Add(txn.Amount)
			case txn.AccountID == acc.ID && txn.Type == model.TransactionTypeExpense:
				activity.Expenses = activity.Expenses.Add(txn.Amount)
			case txn.AccountID == acc.ID && txn.Type == model.TransactionTypeTransfer:
				activity.TransfersOut = activity.TransfersOut.Add(txn.Amount)
			case txn.ToAccountID == acc.ID && txn.Type == model.TransactionTypeTransfer:
				activity.TransfersIn = activity.TransfersIn.Add(txn.Amount)
			default:
				continue
			}
			activity.Count++
		}
		out = append(out, activity)
	}
	return out
}

// Totals is the income/expense/net summary of a transaction list.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// Summarize computes the totals of an already-filtered transaction list.
func Summarize(transactions []TransactionWithDetails) Totals {
	var t Totals
	for _, txn := range transactions {
		switch txn.Type {
		case model.TransactionTypeIncome:
			t.Income = t.Income.Add(txn.Amount)
		case model.TransactionTypeExpense:
			t.Expenses = t.Expenses.Add(txn.Amount)
		}
	}
	t.Net = t.Income.Sub(t.Expenses)
	return t
}

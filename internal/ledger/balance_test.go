package ledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/model"
)

func balanceState(transactions ...model.Transaction) State {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return State{
		Accounts: []model.Account{
			{ID: "1", Name: "Checking", Type: model.AccountTypeBank, Balance: decimal.NewFromInt(100), CreatedAt: created},
			{ID: "2", Name: "Savings", Type: model.AccountTypeSavings, Balance: decimal.Zero, CreatedAt: created},
		},
		Categories: []model.Category{
			{ID: "cat-salary", Name: "Salary", Type: model.CategoryTypeIncome},
			{ID: "cat-food", Name: "Food", Type: model.CategoryTypeExpense},
		},
		Transactions: transactions,
	}
}

func txn(id string, typ model.TransactionType, amount int64, accountID, toAccountID string) model.Transaction {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	categoryID := "cat-food"
	if typ == model.TransactionTypeIncome {
		categoryID = "cat-salary"
	}
	return model.Transaction{
		ID:          id,
		Type:        typ,
		Amount:      decimal.NewFromInt(amount),
		CategoryID:  categoryID,
		AccountID:   accountID,
		ToAccountID: toAccountID,
		Date:        date,
		CreatedAt:   date,
	}
}

func TestAccountBalance(t *testing.T) {
	tests := []struct {
		name         string
		transactions []model.Transaction
		accountID    string
		want         int64
	}{
		{
			name:      "no transactions returns opening balance",
			accountID: "1",
			want:      100,
		},
		{
			name: "expense reduces balance",
			transactions: []model.Transaction{
				txn("t1", model.TransactionTypeExpense, 30, "1", ""),
			},
			accountID: "1",
			want:      70,
		},
		{
			name: "income increases balance",
			transactions: []model.Transaction{
				txn("t1", model.TransactionTypeIncome, 1000, "1", ""),
			},
			accountID: "1",
			want:      1100,
		},
		{
			name: "transfer debits source",
			transactions: []model.Transaction{
				txn("t1", model.TransactionTypeTransfer, 40, "1", "2"),
			},
			accountID: "1",
			want:      60,
		},
		{
			name: "transfer credits destination",
			transactions: []model.Transaction{
				txn("t1", model.TransactionTypeTransfer, 40, "1", "2"),
			},
			accountID: "2",
			want:      40,
		},
		{
			name: "mixed activity",
			transactions: []model.Transaction{
				txn("t1", model.TransactionTypeIncome, 500, "1", ""),
				txn("t2", model.TransactionTypeExpense, 120, "1", ""),
				txn("t3", model.TransactionTypeTransfer, 80, "1", "2"),
				txn("t4", model.TransactionTypeExpense, 10, "2", ""),
			},
			accountID: "1",
			want:      400,
		},
		{
			name:      "unknown account returns zero",
			accountID: "ghost",
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := balanceState(tt.transactions...)
			got := AccountBalance(state, tt.accountID)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("AccountBalance(%s) = %s, want %d", tt.accountID, got, tt.want)
			}
		})
	}
}

func TestTransferConservation(t *testing.T) {
	before := balanceState()
	after := Apply(before, AddTransaction{
		Transaction: txn("t1", model.TransactionTypeTransfer, 40, "1", "2"),
	})

	srcBefore := AccountBalance(before, "1")
	srcAfter := AccountBalance(after, "1")
	if !srcBefore.Sub(srcAfter).Equal(decimal.NewFromInt(40)) {
		t.Errorf("source decreased by %s, want 40", srcBefore.Sub(srcAfter))
	}

	dstBefore := AccountBalance(before, "2")
	dstAfter := AccountBalance(after, "2")
	if !dstAfter.Sub(dstBefore).Equal(decimal.NewFromInt(40)) {
		t.Errorf("destination increased by %s, want 40", dstAfter.Sub(dstBefore))
	}

	if !TotalBalance(before).Equal(TotalBalance(after)) {
		t.Errorf("total balance changed across transfer: %s -> %s",
			TotalBalance(before), TotalBalance(after))
	}
}

func TestTotalBalance_Additivity(t *testing.T) {
	state := balanceState(
		txn("t1", model.TransactionTypeIncome, 500, "1", ""),
		txn("t2", model.TransactionTypeExpense, 120, "2", ""),
		txn("t3", model.TransactionTypeTransfer, 80, "1", "2"),
	)

	sum := decimal.Zero
	for _, acc := range state.Accounts {
		sum = sum.Add(AccountBalance(state, acc.ID))
	}

	if !TotalBalance(state).Equal(sum) {
		t.Errorf("TotalBalance = %s, sum of account balances = %s", TotalBalance(state), sum)
	}

	// Opening balances plus net income/expense; transfers cancel.
	want := decimal.NewFromInt(100 + 500 - 120)
	if !TotalBalance(state).Equal(want) {
		t.Errorf("TotalBalance = %s, want %s", TotalBalance(state), want)
	}
}

func TestAccountBalance_OrderIndependence(t *testing.T) {
	transactions := []model.Transaction{
		txn("t1", model.TransactionTypeIncome, 500, "1", ""),
		txn("t2", model.TransactionTypeExpense, 123, "1", ""),
		txn("t3", model.TransactionTypeTransfer, 80, "1", "2"),
		txn("t4", model.TransactionTypeExpense, 7, "2", ""),
		txn("t5", model.TransactionTypeTransfer, 15, "2", "1"),
	}

	want := AccountBalance(balanceState(transactions...), "1")

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.Transaction, len(transactions))
		copy(shuffled, transactions)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := AccountBalance(balanceState(shuffled...), "1")
		if !got.Equal(want) {
			t.Fatalf("permutation %d: AccountBalance = %s, want %s", i, got, want)
		}
	}
}

func TestAccountBalance_DecimalPrecision(t *testing.T) {
	// 0.1 added ten times must be exactly 1, which binary floats get wrong.
	dime := decimal.RequireFromString("0.10")
	var transactions []model.Transaction
	for i := 0; i < 10; i++ {
		tx := txn(string(rune('a'+i)), model.TransactionTypeExpense, 0, "1", "")
		tx.Amount = dime
		transactions = append(transactions, tx)
	}

	got := AccountBalance(balanceState(transactions...), "1")
	if !got.Equal(decimal.NewFromInt(99)) {
		t.Errorf("AccountBalance = %s, want 99", got)
	}
}

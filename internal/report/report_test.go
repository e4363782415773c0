package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/ledger"
	"fintrack/internal/model"
)

func testState() ledger.State {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return ledger.State{
		Accounts: []model.Account{
			{ID: "acc1", Name: "Checking", Type: model.AccountTypeBank, Balance: decimal.NewFromInt(100), CreatedAt: created},
			{ID: "acc2", Name: "Savings", Type: model.AccountTypeSavings, Balance: decimal.Zero, CreatedAt: created},
		},
		Categories: []model.Category{
			{ID: "cat-salary", Name: "Salary", Type: model.CategoryTypeIncome},
			{ID: "cat-food", Name: "Food", Type: model.CategoryTypeExpense},
			{ID: "cat-rent", Name: "Rent", Type: model.CategoryTypeExpense},
		},
	}
}

func detail(id string, typ model.TransactionType, amount int64, categoryID, accountID string, date time.Time, desc string) model.Transaction {
	return model.Transaction{
		ID:          id,
		Type:        typ,
		Amount:      decimal.NewFromInt(amount),
		CategoryID:  categoryID,
		AccountID:   accountID,
		Date:        date,
		CreatedAt:   date,
		Description: desc,
	}
}

func TestWithDetails(t *testing.T) {
	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("resolves references", func(t *testing.T) {
		state := testState()
		state.Transactions = []model.Transaction{
			detail("t1", model.TransactionTypeExpense, 30, "cat-food", "acc1", jan, "groceries"),
			{ID: "t2", Type: model.TransactionTypeTransfer, Amount: decimal.NewFromInt(40),
				AccountID: "acc1", ToAccountID: "acc2", Date: jan, CreatedAt: jan},
		}

		details := WithDetails(state)
		if len(details) != 2 {
			t.Fatalf("len(details) = %d, want 2", len(details))
		}
		if details[0].Category.Name != "Food" || details[0].Account.Name != "Checking" {
			t.Errorf("t1 resolved to %s/%s", details[0].Category.Name, details[0].Account.Name)
		}
		if details[1].ToAccount == nil || details[1].ToAccount.Name != "Savings" {
			t.Errorf("t2 destination not resolved: %+v", details[1].ToAccount)
		}
	})

	t.Run("dangling references fall back to placeholders", func(t *testing.T) {
		state := testState()
		state.Transactions = []model.Transaction{
			detail("t1", model.TransactionTypeExpense, 30, "deleted-cat", "deleted-acc", jan, ""),
			detail("t2", model.TransactionTypeExpense, 10, "cat-food", "acc1", jan, "fine"),
		}

		details := WithDetails(state)
		if len(details) != 2 {
			t.Fatalf("projection dropped rows: len = %d, want 2", len(details))
		}
		if details[0].Category.ID != UnknownCategory.ID {
			t.Errorf("dangling category resolved to %q, want placeholder", details[0].Category.ID)
		}
		if details[0].Account.ID != UnknownAccount.ID {
			t.Errorf("dangling account resolved to %q, want placeholder", details[0].Account.ID)
		}
		if details[1].Category.Name != "Food" {
			t.Errorf("healthy row affected by corrupt sibling: %+v", details[1])
		}
	})
}

func TestFilter(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	state := testState()
	state.Transactions = []model.Transaction{
		detail("t1", model.TransactionTypeIncome, 1000, "cat-salary", "acc1", jan, "paycheck"),
		detail("t2", model.TransactionTypeExpense, 50, "cat-food", "acc1", feb, "groceries"),
		detail("t3", model.TransactionTypeExpense, 700, "cat-rent", "acc2", mar, "march rent"),
	}
	details := WithDetails(state)

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{"no filter matches all", Filter{}, []string{"t1", "t2", "t3"}},
		{"by type", Filter{Type: model.TransactionTypeExpense}, []string{"t2", "t3"}},
		{"by category", Filter{CategoryID: "cat-rent"}, []string{"t3"}},
		{"by account", Filter{AccountID: "acc1"}, []string{"t1", "t2"}},
		{"by date range", Filter{From: &feb, To: &feb}, []string{"t2"}},
		{"search description", Filter{Search: "groc"}, []string{"t2"}},
		{"search category name", Filter{Search: "rent"}, []string{"t3"}},
		{"search account name case-insensitive", Filter{Search: "SAVINGS"}, []string{"t3"}},
		{"search no match", Filter{Search: "yacht"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(details)
			var ids []string
			for _, txn := range got {
				ids = append(ids, txn.Transaction.ID)
			}
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("got ids %v, want %v", ids, tt.wantIDs)
			}
			for i := range ids {
				if ids[i] != tt.wantIDs[i] {
					t.Errorf("got ids %v, want %v", ids, tt.wantIDs)
					break
				}
			}
		})
	}
}

func TestSort(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	later := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	state := testState()
	state.Transactions = []model.Transaction{
		detail("t2", model.TransactionTypeExpense, 50, "cat-food", "acc1", date, ""),
		detail("t1", model.TransactionTypeExpense, 50, "cat-food", "acc1", date, ""),
		detail("t3", model.TransactionTypeExpense, 700, "cat-rent", "acc2", later, ""),
	}

	t.Run("date ascending with ID tiebreak", func(t *testing.T) {
		got := Sort(WithDetails(state), SortByDate, false)
		wantOrder := []string{"t1", "t2", "t3"}
		for i, want := range wantOrder {
			if got[i].Transaction.ID != want {
				t.Fatalf("position %d = %s, want %s", i, got[i].Transaction.ID, want)
			}
		}
	})

	t.Run("amount descending", func(t *testing.T) {
		got := Sort(WithDetails(state), SortByAmount, true)
		if got[0].Transaction.ID != "t3" {
			t.Errorf("largest amount first = %s, want t3", got[0].Transaction.ID)
		}
	})

	t.Run("category name", func(t *testing.T) {
		got := Sort(WithDetails(state), SortByCategory, false)
		if got[0].Category.Name != "Food" || got[2].Category.Name != "Rent" {
			t.Errorf("category order wrong: %s..%s", got[0].Category.Name, got[2].Category.Name)
		}
	})
}

func TestCategoryBreakdown(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	state := testState()
	state.Transactions = []model.Transaction{
		detail("t1", model.TransactionTypeExpense, 50, "cat-food", "acc1", jan, ""),
		detail("t2", model.TransactionTypeExpense, 30, "cat-food", "acc1", jan, ""),
		detail("t3", model.TransactionTypeExpense, 700, "cat-rent", "acc2", jan, ""),
		detail("t4", model.TransactionTypeIncome, 1000, "cat-salary", "acc1", jan, ""),
	}

	breakdown := CategoryBreakdown(WithDetails(state), model.TransactionTypeExpense, nil, nil)

	if len(breakdown) != 2 {
		t.Fatalf("len(breakdown) = %d, want 2", len(breakdown))
	}
	if breakdown[0].Category.Name != "Rent" || !breakdown[0].Amount.Equal(decimal.NewFromInt(700)) {
		t.Errorf("largest category = %s %s, want Rent 700", breakdown[0].Category.Name, breakdown[0].Amount)
	}
	if breakdown[1].Count != 2 || !breakdown[1].Amount.Equal(decimal.NewFromInt(80)) {
		t.Errorf("food rollup = %d txns %s, want 2 txns 80", breakdown[1].Count, breakdown[1].Amount)
	}
}

func TestMonthlySeries(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	state := testState()
	state.Transactions = []model.Transaction{
		detail("t1", model.TransactionTypeIncome, 1000, "cat-salary", "acc1", jan, ""),
		detail("t2", model.TransactionTypeExpense, 400, "cat-rent", "acc1", jan, ""),
		detail("t3", model.TransactionTypeExpense, 100, "cat-food", "acc1", feb, ""),
		{ID: "t4", Type: model.TransactionTypeTransfer, Amount: decimal.NewFromInt(50),
			AccountID: "acc1", ToAccountID: "acc2", Date: feb, CreatedAt: feb},
	}

	series := MonthlySeries(WithDetails(state))

	if len(series) != 2 {
		t.Fatalf("len(series) = %d, want 2", len(series))
	}
	if series[0].Period != "2024-01" || series[1].Period != "2024-02" {
		t.Fatalf("periods = %s, %s", series[0].Period, series[1].Period)
	}
	if !series[0].Net.Equal(decimal.NewFromInt(600)) {
		t.Errorf("january net = %s, want 600", series[0].Net)
	}
	// The transfer contributes to no month.
	if series[1].Count != 1 {
		t.Errorf("february count = %d, want 1 (transfer excluded)", series[1].Count)
	}
}

func TestAccountsActivity(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	state := testState()
	state.Transactions = []model.Transaction{
		detail("t1", model.TransactionTypeIncome, 1000, "cat-salary", "acc1", jan, ""),
		detail("t2", model.TransactionTypeExpense, 200, "cat-food", "acc1", jan, ""),
		{ID: "t3", Type: model.TransactionTypeTransfer, Amount: decimal.NewFromInt(300),
			AccountID: "acc1", ToAccountID: "acc2", Date: jan, CreatedAt: jan},
	}

	activity := AccountsActivity(state)
	if len(activity) != 2 {
		t.Fatalf("len(activity) = %d, want 2", len(activity))
	}

	checking := activity[0]
	if !checking.Income.Equal(decimal.NewFromInt(1000)) ||
		!checking.Expenses.Equal(decimal.NewFromInt(200)) ||
		!checking.TransfersOut.Equal(decimal.NewFromInt(300)) ||
		checking.Count != 3 {
		t.Errorf("checking activity = %+v", checking)
	}
	if !checking.Balance.Equal(decimal.NewFromInt(600)) {
		t.Errorf("checking balance = %s, want 600", checking.Balance)
	}

	savings := activity[1]
	if !savings.TransfersIn.Equal(decimal.NewFromInt(300)) || savings.Count != 1 {
		t.Errorf("savings activity = %+v", savings)
	}
}

func TestSummarize(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	state := testState()
	state.Transactions = []model.Transaction{
		detail("t1", model.TransactionTypeIncome, 1000, "cat-salary", "acc1", jan, ""),
		detail("t2", model.TransactionTypeExpense, 250, "cat-food", "acc1", jan, ""),
	}

	totals := Summarize(WithDetails(state))
	if !totals.Income.Equal(decimal.NewFromInt(1000)) ||
		!totals.Expenses.Equal(decimal.NewFromInt(250)) ||
		!totals.Net.Equal(decimal.NewFromInt(750)) {
		t.Errorf("totals = %+v", totals)
	}
}

package ledger

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/model"
)

func testState() State {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return State{
		Accounts: []model.Account{
			{ID: "acc1", Name: "Checking", Type: model.AccountTypeBank, Balance: decimal.NewFromInt(100), CreatedAt: created},
			{ID: "acc2", Name: "Savings", Type: model.AccountTypeSavings, Balance: decimal.Zero, CreatedAt: created},
		},
		Categories: []model.Category{
			{ID: "cat-salary", Name: "Salary", Type: model.CategoryTypeIncome},
			{ID: "cat-food", Name: "Food", Type: model.CategoryTypeExpense},
		},
		Transactions: []model.Transaction{
			{ID: "txn1", Type: model.TransactionTypeExpense, Amount: decimal.NewFromInt(30),
				CategoryID: "cat-food", AccountID: "acc1", Date: created, CreatedAt: created},
		},
	}
}

func TestApply_Accounts(t *testing.T) {
	created := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("AddAccount appends", func(t *testing.T) {
		state := testState()
		acc := model.Account{ID: "acc3", Name: "Wallet", Type: model.AccountTypeCash, Balance: decimal.NewFromInt(50), CreatedAt: created}

		next := Apply(state, AddAccount{Account: acc})

		if len(next.Accounts) != 3 {
			t.Fatalf("Accounts length = %d, want 3", len(next.Accounts))
		}
		if next.Accounts[2].ID != "acc3" {
			t.Errorf("appended account ID = %s, want acc3", next.Accounts[2].ID)
		}
		if len(state.Accounts) != 2 {
			t.Errorf("input state mutated: Accounts length = %d, want 2", len(state.Accounts))
		}
	})

	t.Run("UpdateAccount replaces wholesale", func(t *testing.T) {
		state := testState()
		updated := state.Accounts[0]
		updated.Name = "Main Checking"
		updated.Balance = decimal.NewFromInt(250)

		next := Apply(state, UpdateAccount{Account: updated})

		if got := next.Account("acc1"); got == nil || got.Name != "Main Checking" {
			t.Errorf("Account(acc1) = %+v, want updated name", got)
		}
		if state.Accounts[0].Name != "Checking" {
			t.Errorf("input state mutated: account name = %s", state.Accounts[0].Name)
		}
	})

	t.Run("UpdateAccount unknown ID is a no-op", func(t *testing.T) {
		state := testState()
		next := Apply(state, UpdateAccount{Account: model.Account{ID: "ghost", Name: "Ghost", Type: model.AccountTypeCash}})

		if !reflect.DeepEqual(state, next) {
			t.Errorf("state changed on unknown-ID update")
		}
	})

	t.Run("DeleteAccount removes only the account", func(t *testing.T) {
		state := testState()
		next := Apply(state, DeleteAccount{ID: "acc1"})

		if next.Account("acc1") != nil {
			t.Error("account acc1 still present after delete")
		}
		// The reducer never cascades; orphaned transactions are the
		// caller's responsibility.
		if len(next.Transactions) != 1 {
			t.Errorf("Transactions length = %d, want 1", len(next.Transactions))
		}
	})

	t.Run("DeleteAccount unknown ID is a no-op", func(t *testing.T) {
		state := testState()
		next := Apply(state, DeleteAccount{ID: "ghost"})

		if !reflect.DeepEqual(state, next) {
			t.Errorf("state changed on unknown-ID delete")
		}
	})

	t.Run("SetAccounts replaces the list", func(t *testing.T) {
		state := testState()
		next := Apply(state, SetAccounts{Accounts: nil})

		if len(next.Accounts) != 0 {
			t.Errorf("Accounts length = %d, want 0", len(next.Accounts))
		}
		if len(state.Accounts) != 2 {
			t.Errorf("input state mutated")
		}
	})
}

func TestApply_Transactions(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("AddTransaction appends", func(t *testing.T) {
		state := testState()
		txn := model.Transaction{ID: "txn2", Type: model.TransactionTypeIncome, Amount: decimal.NewFromInt(1000),
			CategoryID: "cat-salary", AccountID: "acc1", Date: date, CreatedAt: date}

		next := Apply(state, AddTransaction{Transaction: txn})

		if len(next.Transactions) != 2 {
			t.Fatalf("Transactions length = %d, want 2", len(next.Transactions))
		}
		if len(state.Transactions) != 1 {
			t.Errorf("input state mutated")
		}
	})

	t.Run("UpdateTransaction replaces wholesale", func(t *testing.T) {
		state := testState()
		updated := state.Transactions[0]
		updated.Amount = decimal.NewFromInt(45)

		next := Apply(state, UpdateTransaction{Transaction: updated})

		if got := next.Transaction("txn1"); got == nil || !got.Amount.Equal(decimal.NewFromInt(45)) {
			t.Errorf("Transaction(txn1) = %+v, want amount 45", got)
		}
	})

	t.Run("UpdateTransaction unknown ID is a no-op", func(t *testing.T) {
		state := testState()
		next := Apply(state, UpdateTransaction{Transaction: model.Transaction{ID: "ghost"}})

		if !reflect.DeepEqual(state, next) {
			t.Errorf("state changed on unknown-ID update")
		}
	})

	t.Run("DeleteTransaction removes", func(t *testing.T) {
		state := testState()
		next := Apply(state, DeleteTransaction{ID: "txn1"})

		if len(next.Transactions) != 0 {
			t.Errorf("Transactions length = %d, want 0", len(next.Transactions))
		}
	})

	t.Run("DeleteTransaction unknown ID is a no-op", func(t *testing.T) {
		state := testState()
		next := Apply(state, DeleteTransaction{ID: "ghost"})

		if !reflect.DeepEqual(state, next) {
			t.Errorf("state changed on unknown-ID delete")
		}
	})
}

func TestApply_Misc(t *testing.T) {
	t.Run("ToggleDarkMode flips the flag", func(t *testing.T) {
		state := testState()

		next := Apply(state, ToggleDarkMode{})
		if !next.DarkMode {
			t.Error("DarkMode = false after toggle, want true")
		}

		next = Apply(next, ToggleDarkMode{})
		if next.DarkMode {
			t.Error("DarkMode = true after second toggle, want false")
		}
	})

	t.Run("LoadData replaces the whole state", func(t *testing.T) {
		state := testState()
		replacement := State{DarkMode: true}

		next := Apply(state, LoadData{State: replacement})

		if len(next.Accounts) != 0 || len(next.Transactions) != 0 || !next.DarkMode {
			t.Errorf("LoadData did not fully replace state: %+v", next)
		}
	})

	t.Run("AddCategory appends", func(t *testing.T) {
		state := testState()
		next := Apply(state, AddCategory{Category: model.Category{ID: "cat-x", Name: "Misc", Type: model.CategoryTypeExpense}})

		if len(next.Categories) != 3 {
			t.Errorf("Categories length = %d, want 3", len(next.Categories))
		}
	})

	t.Run("SetCategories replaces the list", func(t *testing.T) {
		state := testState()
		next := Apply(state, SetCategories{Categories: []model.Category{
			{ID: "only", Name: "Only", Type: model.CategoryTypeExpense},
		}})

		if len(next.Categories) != 1 || next.Categories[0].ID != "only" {
			t.Errorf("Categories = %+v, want single 'only'", next.Categories)
		}
	})
}

// Package store hosts the ledger core for an application. A Store owns a
// single state value behind a mutex, forms the validation boundary in front
// of the pure reducer, generates entity identity and timestamps, and
// composes the compound operations (cascading account deletion, the
// category in-use check, transfers) out of simple reducer actions.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fintrack/internal/common"
	"fintrack/internal/ledger"
	"fintrack/internal/model"
)

// Store owns a ledger state and serializes mutations. All failure happens
// here, at action-construction time; the reducer underneath never fails.
type Store struct {
	now   func() time.Time
	newID func() string
	state ledger.State
	mu    sync.RWMutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides identity generation, for tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates a store around the given initial state.
func New(initial ledger.State, opts ...Option) *Store {
	s := &Store{
		state: initial.Clone(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a deep copy of the current state.
func (s *Store) State() ledger.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// AccountInput carries the caller-settable account fields.
type AccountInput struct {
	Name        string
	Type        model.AccountType
	Color       string
	Description string
	Balance     decimal.Decimal
}

// AddAccount validates the input, assigns identity, and appends the account.
func (s *Store) AddAccount(input AccountInput) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := model.Account{
		ID:          s.newID(),
		Name:        input.Name,
		Type:        input.Type,
		Color:       input.Color,
		Description: input.Description,
		Balance:     input.Balance,
		CreatedAt:   s.now(),
	}
	if err := model.ValidateAccount(&acc); err != nil {
		return model.Account{}, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	s.state = ledger.Apply(s.state, ledger.AddAccount{Account: acc})
	return acc, nil
}

// UpdateAccount replaces an existing account wholesale. ID and CreatedAt
// are immutable and taken from the stored account.
func (s *Store) UpdateAccount(id string, input AccountInput) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.state.Account(id)
	if existing == nil {
		return model.Account{}, fmt.Errorf("account %q: %w", id, common.ErrNotFound)
	}

	acc := model.Account{
		ID:          existing.ID,
		Name:        input.Name,
		Type:        input.Type,
		Color:       input.Color,
		Description: input.Description,
		Balance:     input.Balance,
		CreatedAt:   existing.CreatedAt,
	}
	if err := model.ValidateAccount(&acc); err != nil {
		return model.Account{}, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	s.state = ledger.Apply(s.state, ledger.UpdateAccount{Account: acc})
	return acc, nil
}

// DeleteAccount removes an account and cascades to every transaction that
// references it as source or destination. The cascade is composed from
// individual DeleteTransaction actions under one lock, so callers observe
// it as a single atomic operation. Returns how many transactions were
// removed.
func (s *Store) DeleteAccount(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Account(id) == nil {
		return 0, fmt.Errorf("account %q: %w", id, common.ErrNotFound)
	}

	referencing := s.state.TransactionsForAccount(id)
	next := s.state
	for _, txn := range referencing {
		next = ledger.Apply(next, ledger.DeleteTransaction{ID: txn.ID})
	}
	next = ledger.Apply(next, ledger.DeleteAccount{ID: id})

	s.state = next
	return len(referencing), nil
}

// CategoryInput carries the caller-settable category fields.
type CategoryInput struct {
	Name  string
	Icon  string
	Color string
	Type  model.CategoryType
}

// AddCategory validates the input, assigns identity, and appends the category.
func (s *Store) AddCategory(input CategoryInput) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat := model.Category{
		ID:    s.newID(),
		Name:  input.Name,
		Icon:  input.Icon,
		Color: input.Color,
		Type:  input.Type,
	}
	if err := model.ValidateCategory(&cat); err != nil {
		return model.Category{}, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	s.state = ledger.Apply(s.state, ledger.AddCategory{Category: cat})
	return cat, nil
}

// UpdateCategory replaces an existing category wholesale, keeping its ID.
func (s *Store) UpdateCategory(id string, input CategoryInput) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.state.Category(id)
	if existing == nil {
		return model.Category{}, fmt.Errorf("category %q: %w", id, common.ErrNotFound)
	}

	cat := model.Category{
		ID:    existing.ID,
		Name:  input.Name,
		Icon:  input.Icon,
		Color: input.Color,
		Type:  input.Type,
	}
	if err := model.ValidateCategory(&cat); err != nil {
		return model.Category{}, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	categories := make([]model.Category, 0, len(s.state.Categories))
	for _, c := range s.state.Categories {
		if c.ID == id {
			c = cat
		}
		categories = append(categories, c)
	}
	s.state = ledger.Apply(s.state, ledger.SetCategories{Categories: categories})
	return cat, nil
}

// DeleteCategory removes a category. Deletion is refused while any
// transaction still references the category, so every stored transaction
// keeps a resolvable category.
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Category(id) == nil {
		return fmt.Errorf("category %q: %w", id, common.ErrNotFound)
	}
	if n := s.state.CategoryUsageCount(id); n > 0 {
		return fmt.Errorf("category %q used by %d transactions: %w", id, n, common.ErrCategoryInUse)
	}

	categories := make([]model.Category, 0, len(s.state.Categories))
	for _, c := range s.state.Categories {
		if c.ID != id {
			categories = append(categories, c)
		}
	}
	s.state = ledger.Apply(s.state, ledger.SetCategories{Categories: categories})
	return nil
}

// TransactionInput carries the caller-settable transaction fields.
type TransactionInput struct {
	Type        model.TransactionType
	Amount      decimal.Decimal
	CategoryID  string
	AccountID   string
	ToAccountID string
	Description string
	Date        time.Time
}

// AddTransaction validates the input against the current accounts and
// categories, assigns identity, and appends the transaction.
func (s *Store) AddTransaction(input TransactionInput) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn := s.buildTransaction(s.newID(), s.now(), input)
	if err := model.ValidateTransaction(&txn, s.state.Accounts, s.state.Categories); err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	s.state = ledger.Apply(s.state, ledger.AddTransaction{Transaction: txn})
	return txn, nil
}

// UpdateTransaction replaces an existing transaction wholesale. ID and
// CreatedAt are immutable.
func (s *Store) UpdateTransaction(id string, input TransactionInput) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.state.Transaction(id)
	if existing == nil {
		return model.Transaction{}, fmt.Errorf("transaction %q: %w", id, common.ErrNotFound)
	}

	txn := s.buildTransaction(existing.ID, existing.CreatedAt, input)
	if err := model.ValidateTransaction(&txn, s.state.Accounts, s.state.Categories); err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	s.state = ledger.Apply(s.state, ledger.UpdateTransaction{Transaction: txn})
	return txn, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Transaction(id) == nil {
		return fmt.Errorf("transaction %q: %w", id, common.ErrNotFound)
	}

	s.state = ledger.Apply(s.state, ledger.DeleteTransaction{ID: id})
	return nil
}

// Transfer records a movement of amount between two accounts as a single
// transfer transaction, the canonical representation.
func (s *Store) Transfer(fromID, toID string, amount decimal.Decimal, date time.Time, description string) (model.Transaction, error) {
	return s.AddTransaction(TransactionInput{
		Type:        model.TransactionTypeTransfer,
		Amount:      amount,
		AccountID:   fromID,
		ToAccountID: toID,
		Description: description,
		Date:        date,
	})
}

// ToggleDarkMode flips the display flag and returns the new value.
func (s *Store) ToggleDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = ledger.Apply(s.state, ledger.ToggleDarkMode{})
	return s.state.DarkMode
}

// Load replaces the whole state, as used by import and the initial-load
// path. The caller is responsible for having validated the payload.
func (s *Store) Load(state ledger.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = ledger.Apply(s.state, ledger.LoadData{State: state})
}

// ResetDefaults clears everything and seeds the default categories and
// sample accounts.
func (s *Store) ResetDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := ledger.Apply(s.state, ledger.SetTransactions{Transactions: nil})
	next = ledger.Apply(next, ledger.SetAccounts{Accounts: model.DefaultAccounts(s.now())})
	next = ledger.Apply(next, ledger.SetCategories{Categories: model.DefaultCategories()})
	s.state = next
}

func (s *Store) buildTransaction(id string, createdAt time.Time, input TransactionInput) model.Transaction {
	return model.Transaction{
		ID:          id,
		Type:        input.Type,
		Amount:      input.Amount,
		CategoryID:  input.CategoryID,
		AccountID:   input.AccountID,
		ToAccountID: input.ToAccountID,
		Description: input.Description,
		Date:        input.Date,
		CreatedAt:   createdAt,
	}
}

// Package storage persists the ledger state as a whole-state snapshot in a
// local SQLite database. Saving replaces every row from the in-memory
// state in one transaction; loading rebuilds the state from scratch. The
// database is never the source of truth for derived values: balances are
// recomputed from the transaction log after every load.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/ledger"
	"fintrack/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements snapshot persistence using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite store instance.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveState replaces the stored snapshot with the given state in a single
// transaction.
func (s *SQLiteStore) SaveState(ctx context.Context, state ledger.State) (err error) {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"transactions", "accounts", "categories"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i := range state.Accounts {
		acc := state.Accounts[i]
		if err = validateAccount(&acc); err != nil {
			return fmt.Errorf("account at index %d: %w", i, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO accounts (id, name, type, balance, color, description, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			acc.ID, acc.Name, string(acc.Type), acc.Balance.String(), acc.Color, acc.Description, acc.CreatedAt.UTC())
		if err != nil {
			return fmt.Errorf("failed to insert account %s: %w", acc.ID, err)
		}
	}

	for i := range state.Categories {
		cat := state.Categories[i]
		if err = validateCategory(&cat); err != nil {
			return fmt.Errorf("category at index %d: %w", i, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO categories (id, name, icon, color, type)
			VALUES (?, ?, ?, ?, ?)`,
			cat.ID, cat.Name, cat.Icon, cat.Color, string(cat.Type))
		if err != nil {
			return fmt.Errorf("failed to insert category %s: %w", cat.ID, err)
		}
	}

	for i := range state.Transactions {
		txn := state.Transactions[i]
		if err = validateTransaction(&txn); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO transactions (id, type, amount, category_id, account_id, to_account_id, description, date, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			txn.ID, string(txn.Type), txn.Amount.String(), txn.CategoryID, txn.AccountID,
			nullableString(txn.ToAccountID), txn.Description, txn.Date.UTC(), txn.CreatedAt.UTC())
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}
	}

	if err = s.setSettingTx(ctx, tx, "dark_mode", boolSetting(state.DarkMode)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	slog.Debug("saved state snapshot",
		"accounts", len(state.Accounts),
		"categories", len(state.Categories),
		"transactions", len(state.Transactions))
	return nil
}

// LoadState rebuilds the ledger state from the stored snapshot. A fresh
// database yields an empty state.
func (s *SQLiteStore) LoadState(ctx context.Context) (ledger.State, error) {
	if err := validateContext(ctx); err != nil {
		return ledger.State{}, err
	}

	var state ledger.State

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, type, balance, color, description, created_at
		FROM accounts ORDER BY created_at, id`)
	if err != nil {
		return ledger.State{}, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var acc model.Account
		var accType, balance string
		if err := rows.Scan(&acc.ID, &acc.Name, &accType, &balance, &acc.Color, &acc.Description, &acc.CreatedAt); err != nil {
			return ledger.State{}, fmt.Errorf("failed to scan account: %w", err)
		}
		acc.Type = model.AccountType(accType)
		if acc.Balance, err = decimal.NewFromString(balance); err != nil {
			return ledger.State{}, fmt.Errorf("invalid stored balance for account %s: %w", acc.ID, err)
		}
		state.Accounts = append(state.Accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return ledger.State{}, fmt.Errorf("error iterating accounts: %w", err)
	}

	catRows, err := s.db.QueryContext(ctx, `
		SELECT id, name, icon, color, type
		FROM categories ORDER BY rowid`)
	if err != nil {
		return ledger.State{}, fmt.Errorf("failed to query categories: %w", err)
	}
	defer catRows.Close()

	for catRows.Next() {
		var cat model.Category
		var catType string
		if err := catRows.Scan(&cat.ID, &cat.Name, &cat.Icon, &cat.Color, &catType); err != nil {
			return ledger.State{}, fmt.Errorf("failed to scan category: %w", err)
		}
		cat.Type = model.CategoryType(catType)
		state.Categories = append(state.Categories, cat)
	}
	if err := catRows.Err(); err != nil {
		return ledger.State{}, fmt.Errorf("error iterating categories: %w", err)
	}

	txnRows, err := s.db.QueryContext(ctx, `
		SELECT id, type, amount, category_id, account_id, to_account_id, description, date, created_at
		FROM transactions ORDER BY date, id`)
	if err != nil {
		return ledger.State{}, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer txnRows.Close()

	for txnRows.Next() {
		var txn model.Transaction
		var txnType, amount string
		var toAccount sql.NullString
		if err := txnRows.Scan(&txn.ID, &txnType, &amount, &txn.CategoryID, &txn.AccountID,
			&toAccount, &txn.Description, &txn.Date, &txn.CreatedAt); err != nil {
			return ledger.State{}, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Type = model.TransactionType(txnType)
		if txn.Amount, err = decimal.NewFromString(amount); err != nil {
			return ledger.State{}, fmt.Errorf("invalid stored amount for transaction %s: %w", txn.ID, err)
		}
		if toAccount.Valid {
			txn.ToAccountID = toAccount.String
		}
		state.Transactions = append(state.Transactions, txn)
	}
	if err := txnRows.Err(); err != nil {
		return ledger.State{}, fmt.Errorf("error iterating transactions: %w", err)
	}

	darkMode, err := s.getSetting(ctx, "dark_mode")
	if err != nil {
		return ledger.State{}, err
	}
	state.DarkMode = darkMode == "1"

	slog.Debug("loaded state snapshot",
		"accounts", len(state.Accounts),
		"categories", len(state.Categories),
		"transactions", len(state.Transactions))
	return state, nil
}

func (s *SQLiteStore) setSettingTx(ctx context.Context, tx *sql.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) getSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query setting %s: %w", key, err)
	}
	return value, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolSetting(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

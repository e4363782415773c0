package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"fintrack/internal/config"
	"fintrack/internal/ledger"
	"fintrack/internal/storage"
	"fintrack/internal/store"
)

// initStorage opens the SQLite store with proper path expansion and runs
// migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/fintrack/fintrack.db"
	}
	dbPath = config.ExpandPath(dbPath)

	db, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// openLedger loads the persisted state into a store. First run seeds the
// default categories and sample accounts.
func openLedger(ctx context.Context) (*store.Store, *storage.SQLiteStore, error) {
	db, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	state, err := db.LoadState(ctx)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to load state: %w", err)
	}

	ledgerStore := store.New(state)
	if firstRun(state) {
		ledgerStore.ResetDefaults()
		if err := db.SaveState(ctx, ledgerStore.State()); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to seed default data: %w", err)
		}
	}

	return ledgerStore, db, nil
}

// save persists the store's current state.
func save(ctx context.Context, ledgerStore *store.Store, db *storage.SQLiteStore) error {
	if err := db.SaveState(ctx, ledgerStore.State()); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

func firstRun(state ledger.State) bool {
	return len(state.Accounts) == 0 && len(state.Categories) == 0 && len(state.Transactions) == 0
}

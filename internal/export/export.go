// Package export converts between the in-memory ledger state and the
// external JSON representation used for backups, and writes transaction
// views out as CSV. Import validates and normalizes payloads before they
// reach the reducer; a malformed payload is rejected whole, never partially
// applied.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/common"
	"fintrack/internal/ledger"
	"fintrack/internal/model"
)

// FormatVersion tags exported payloads.
const FormatVersion = "1.0.0"

func init() {
	// Amounts serialize as bare JSON numbers, matching the payloads the
	// application has always produced.
	decimal.MarshalJSONWithoutQuotes = true
}

// Payload is the external representation of the whole ledger state.
type Payload struct {
	ExportDate   time.Time           `json:"exportDate"`
	Version      string              `json:"version"`
	Accounts     []model.Account     `json:"accounts"`
	Categories   []model.Category    `json:"categories"`
	Transactions []model.Transaction `json:"transactions"`
	DarkMode     bool                `json:"darkMode"`
}

// Export serializes the state with an export timestamp and format version.
// The result round-trips through Import.
func Export(state ledger.State, now time.Time) ([]byte, error) {
	payload := Payload{
		ExportDate:   now.UTC(),
		Version:      FormatVersion,
		Accounts:     state.Accounts,
		Categories:   state.Categories,
		Transactions: state.Transactions,
		DarkMode:     state.DarkMode,
	}
	if payload.Accounts == nil {
		payload.Accounts = []model.Account{}
	}
	if payload.Categories == nil {
		payload.Categories = []model.Category{}
	}
	if payload.Transactions == nil {
		payload.Transactions = []model.Transaction{}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export payload: %w", err)
	}
	return data, nil
}

// rawPayload defers entity decoding so that structural problems can be
// reported as import errors rather than partial zero values.
type rawPayload struct {
	Accounts     json.RawMessage `json:"accounts"`
	Categories   json.RawMessage `json:"categories"`
	Transactions json.RawMessage `json:"transactions"`
	DarkMode     *bool           `json:"darkMode"`
}

// Import parses and validates an external payload and returns the
// normalized state ready to hand to LoadData. Each of accounts, categories,
// and transactions must be present and list-shaped or the whole import
// fails. darkMode defaults to false when absent. Legacy transfer leg pairs
// are collapsed into canonical transfer transactions.
func Import(data []byte) (ledger.State, error) {
	var raw rawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return ledger.State{}, fmt.Errorf("%w: %w", common.ErrInvalidImport, err)
	}

	state := ledger.State{}
	if err := decodeList(raw.Accounts, "accounts", &state.Accounts); err != nil {
		return ledger.State{}, err
	}
	if err := decodeList(raw.Categories, "categories", &state.Categories); err != nil {
		return ledger.State{}, err
	}
	if err := decodeList(raw.Transactions, "transactions", &state.Transactions); err != nil {
		return ledger.State{}, err
	}
	if raw.DarkMode != nil {
		state.DarkMode = *raw.DarkMode
	}

	for i := range state.Accounts {
		if err := model.ValidateAccount(&state.Accounts[i]); err != nil {
			return ledger.State{}, fmt.Errorf("%w: account %d: %w", common.ErrInvalidImport, i, err)
		}
	}
	for i := range state.Categories {
		if err := model.ValidateCategory(&state.Categories[i]); err != nil {
			return ledger.State{}, fmt.Errorf("%w: category %d: %w", common.ErrInvalidImport, i, err)
		}
	}

	state.Transactions = collapseLegacyTransfers(state.Transactions)

	for i := range state.Transactions {
		if err := model.ValidateTransaction(&state.Transactions[i], state.Accounts, state.Categories); err != nil {
			return ledger.State{}, fmt.Errorf("%w: transaction %d: %w", common.ErrInvalidImport, i, err)
		}
	}

	return state, nil
}

func decodeList(raw json.RawMessage, field string, out any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return fmt.Errorf("%w: missing %s", common.ErrInvalidImport, field)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s is not a valid list: %w", common.ErrInvalidImport, field, err)
	}
	return nil
}

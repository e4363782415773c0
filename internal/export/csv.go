package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"fintrack/internal/report"
)

// csvHeader matches the columns the application has always exported.
var csvHeader = []string{"Date", "Type", "Amount", "Category", "Account", "To Account", "Description"}

// WriteCSV writes one row per transaction view. The To Account column is
// blank unless the transaction is a transfer.
func WriteCSV(w io.Writer, transactions []report.TransactionWithDetails) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range transactions {
		toAccount := ""
		if txn.IsTransfer() && txn.ToAccount != nil {
			toAccount = txn.ToAccount.Name
		}
		row := []string{
			txn.Date.Format("2006-01-02"),
			string(txn.Type),
			txn.Amount.StringFixed(2),
			txn.Category.Name,
			txn.Account.Name,
			toAccount,
			txn.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

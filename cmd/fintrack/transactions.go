package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"fintrack/internal/cli"
	"fintrack/internal/export"
	"fintrack/internal/model"
	"fintrack/internal/report"
	"fintrack/internal/store"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"txn"},
		Short:   "Manage transactions",
		Long:    `List, add, update, and delete income and expense transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(updateTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

type transactionFilterFlags struct {
	from       string
	to         string
	txnType    string
	categoryID string
	accountID  string
	search     string
	sortBy     string
	descending bool
}

func (f *transactionFilterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "only transactions on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "only transactions on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&f.txnType, "type", "t", "", "filter by type (income, expense, transfer)")
	cmd.Flags().StringVarP(&f.categoryID, "category", "c", "", "filter by category id")
	cmd.Flags().StringVarP(&f.accountID, "account", "a", "", "filter by account id")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "search description, category, and account names")
	cmd.Flags().StringVar(&f.sortBy, "sort", "date", "sort field (date, amount, category)")
	cmd.Flags().BoolVar(&f.descending, "desc", false, "sort in descending order")
}

func (f *transactionFilterFlags) build() (report.Filter, error) {
	var filter report.Filter

	if f.from != "" {
		from, err := parseDate(f.from)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if f.to != "" {
		to, err := parseDate(f.to)
		if err != nil {
			return filter, err
		}
		// Inclusive upper bound: extend to the end of the day.
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}

	filter.Type = model.TransactionType(f.txnType)
	filter.CategoryID = f.categoryID
	filter.AccountID = f.accountID
	filter.Search = f.search

	return filter, nil
}

func listTransactionsCmd() *cobra.Command {
	var (
		filters transactionFilterFlags
		asCSV   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `Display transactions with their category and account names.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			filter, err := filters.build()
			if err != nil {
				return err
			}

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			detailed := report.WithDetails(ledgerStore.State())
			detailed = filter.Apply(detailed)
			detailed = report.Sort(detailed, report.SortField(filters.sortBy), filters.descending)

			if asCSV {
				return export.WriteCSV(os.Stdout, detailed)
			}

			if len(detailed) == 0 {
				fmt.Println(cli.InfoStyle.Render("No matching transactions."))
				return nil
			}

			printTransactionTable(detailed)
			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().BoolVar(&asCSV, "csv", false, "write CSV to stdout")

	return cmd
}

func printTransactionTable(transactions []report.TransactionWithDetails) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Date"),
		cli.HeaderStyle.Render("Type"),
		cli.HeaderStyle.Render("Amount"),
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Account"),
		cli.HeaderStyle.Render("Description"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 10),
		strings.Repeat("-", 8),
		strings.Repeat("-", 10),
		strings.Repeat("-", 16),
		strings.Repeat("-", 16),
		strings.Repeat("-", 30))

	for _, txn := range transactions {
		account := txn.Account.Name
		if txn.ToAccount != nil {
			account = account + " → " + txn.ToAccount.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			txn.Date.Format("2006-01-02"),
			txn.Type,
			cli.FormatSignedAmount(txn.Amount, txn.Type == model.TransactionTypeIncome),
			txn.Category.Name,
			account,
			txn.Description)
	}
}

func addTransactionCmd() *cobra.Command {
	var (
		txnType     string
		categoryID  string
		accountID   string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Add a transaction",
		Long:  `Record an income or expense transaction. Amounts are always positive; the type determines the direction.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			when := time.Now()
			if date != "" {
				when, err = parseDate(date)
				if err != nil {
					return err
				}
			}

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			txn, err := ledgerStore.AddTransaction(store.TransactionInput{
				Type:        model.TransactionType(txnType),
				Amount:      amount,
				CategoryID:  categoryID,
				AccountID:   accountID,
				Description: description,
				Date:        when,
			})
			if err != nil {
				return err
			}

			if err := save(ctx, ledgerStore, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %s (%s)",
				txn.Type, cli.FormatAmount(txn.Amount), txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txnType, "type", "t", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVarP(&categoryID, "category", "c", "", "category id")
	cmd.Flags().StringVarP(&accountID, "account", "a", "", "account id")
	cmd.Flags().StringVarP(&description, "description", "d", "", "description")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD, defaults to today)")

	return cmd
}

func updateTransactionCmd() *cobra.Command {
	var (
		txnType     string
		categoryID  string
		accountID   string
		toAccountID string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "update <id> <amount>",
		Short: "Update a transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			when, err := parseDate(date)
			if err != nil {
				return err
			}

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			txn, err := ledgerStore.UpdateTransaction(args[0], store.TransactionInput{
				Type:        model.TransactionType(txnType),
				Amount:      amount,
				CategoryID:  categoryID,
				AccountID:   accountID,
				ToAccountID: toAccountID,
				Description: description,
				Date:        when,
			})
			if err != nil {
				return err
			}

			if err := save(ctx, ledgerStore, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction %s", txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txnType, "type", "t", "expense", "transaction type (income, expense, transfer)")
	cmd.Flags().StringVarP(&categoryID, "category", "c", "", "category id")
	cmd.Flags().StringVarP(&accountID, "account", "a", "", "account id")
	cmd.Flags().StringVar(&toAccountID, "to-account", "", "destination account id (transfers only)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "description")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := ledgerStore.DeleteTransaction(args[0]); err != nil {
				return err
			}

			if err := save(ctx, ledgerStore, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Deleted transaction"))
			return nil
		},
	}
}

func parseDate(raw string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", raw, err)
	}
	return parsed, nil
}

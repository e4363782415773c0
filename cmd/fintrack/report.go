package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fintrack/internal/cli"
	"fintrack/internal/model"
	"fintrack/internal/report"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Spending and income reports",
		Long:  `Summaries, per-category breakdowns, period trends, and per-account activity.`,
	}

	cmd.AddCommand(reportSummaryCmd())
	cmd.AddCommand(reportCategoriesCmd())
	cmd.AddCommand(reportTrendCmd())
	cmd.AddCommand(reportAccountsCmd())

	return cmd
}

func reportSummaryCmd() *cobra.Command {
	var filters transactionFilterFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Income, expense, and net totals",
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

			detailed := filter.Apply(report.WithDetails(ledgerStore.State()))
			totals := report.Summarize(detailed)

			fmt.Println(cli.FormatTitle("Summary"))
			fmt.Printf("  Income:   %s\n", cli.AmountPositiveStyle.Render(cli.FormatAmount(totals.Income)))
			fmt.Printf("  Expenses: %s\n", cli.AmountNegativeStyle.Render(cli.FormatAmount(totals.Expenses)))
			fmt.Printf("  Net:      %s\n", styledAmount(totals.Net))
			fmt.Printf("  Transactions: %d\n", len(detailed))
			return nil
		},
	}

	filters.register(cmd)
	return cmd
}

func reportCategoriesCmd() *cobra.Command {
	var (
		filters transactionFilterFlags
		txnType string
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Per-category breakdown",
		Long:  `Sum transactions per category within the window, largest first.`,
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
			breakdown := report.CategoryBreakdown(detailed, model.TransactionType(txnType), filter.From, filter.To)

			if len(breakdown) == 0 {
				fmt.Println(cli.InfoStyle.Render("No matching transactions."))
				return nil
			}

			fmt.Println(cli.FormatTitle("By category"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Count"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 12),
				strings.Repeat("-", 6))
			for _, entry := range breakdown {
				name := entry.Category.Name
				if entry.Category.Icon != "" {
					name = entry.Category.Icon + " " + name
				}
				fmt.Fprintf(w, "%s\t%s\t%d\n", name, cli.FormatAmount(entry.Amount), entry.Count)
			}
			return w.Flush()
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVar(&txnType, "breakdown-type", "expense", "transaction type to break down (income, expense)")

	return cmd
}

func reportTrendCmd() *cobra.Command {
	var weekly bool

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Income and expense trend over time",
		Long:  `Group activity by calendar month, or by ISO week with --weekly. Transfers are excluded.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			detailed := report.WithDetails(ledgerStore.State())

			var series []report.PeriodTotals
			if weekly {
				series = report.WeeklySeries(detailed)
			} else {
				series = report.MonthlySeries(detailed)
			}

			if len(series) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions recorded yet."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Trend"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Period"),
				cli.HeaderStyle.Render("Income"),
				cli.HeaderStyle.Render("Expenses"),
				cli.HeaderStyle.Render("Net"),
				cli.HeaderStyle.Render("Count"))
			for _, period := range series {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
					period.Period,
					cli.FormatAmount(period.Income),
					cli.FormatAmount(period.Expenses),
					cli.FormatAmount(period.Net),
					period.Count)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&weekly, "weekly", false, "group by ISO week instead of month")

	return cmd
}

func reportAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Per-account activity",
		Long:  `Roll up income, expenses, transfers, and the current balance for each account.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			activity := report.AccountsActivity(ledgerStore.State())
			if len(activity) == 0 {
				fmt.Println(cli.InfoStyle.Render("No accounts found."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Account activity"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Account"),
				cli.HeaderStyle.Render("Income"),
				cli.HeaderStyle.Render("Expenses"),
				cli.HeaderStyle.Render("In"),
				cli.HeaderStyle.Render("Out"),
				cli.HeaderStyle.Render("Balance"),
				cli.HeaderStyle.Render("Count"))
			for _, entry := range activity {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
					entry.Account.Name,
					cli.FormatAmount(entry.Income),
					cli.FormatAmount(entry.Expenses),
					cli.FormatAmount(entry.TransfersIn),
					cli.FormatAmount(entry.TransfersOut),
					styledAmount(entry.Balance),
					entry.Count)
			}
			return w.Flush()
		},
	}
}

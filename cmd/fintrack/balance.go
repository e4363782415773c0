package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fintrack/internal/cli"
	"fintrack/internal/ledger"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance [account-id]",
		Short: "Show account balances",
		Long:  `Show the derived balance of every account, or a single account when an id is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			state := ledgerStore.State()

			if len(args) == 1 {
				account := state.Account(args[0])
				if account == nil {
					return fmt.Errorf("account %q not found", args[0])
				}
				balance := ledger.AccountBalance(state, account.ID)
				fmt.Printf("%s: %s\n", cli.BoldStyle.Render(account.Name), styledAmount(balance))
				return nil
			}

			fmt.Println(cli.FormatTitle("Balances"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\n",
				cli.HeaderStyle.Render("Account"),
				cli.HeaderStyle.Render("Balance"))
			fmt.Fprintf(w, "%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 12))
			for _, account := range state.Accounts {
				fmt.Fprintf(w, "%s\t%s\n",
					account.Name,
					styledAmount(ledger.AccountBalance(state, account.ID)))
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to flush output: %w", err)
			}

			fmt.Printf("\n%s %s\n", cli.BoldStyle.Render("Total:"), styledAmount(ledger.TotalBalance(state)))
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"fintrack/internal/cli"
	"fintrack/internal/ledger"
	"fintrack/internal/model"
	"fintrack/internal/store"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts",
		Long:  `List, add, update, and delete the accounts transactions are recorded against.`,
	}

	cmd.AddCommand(listAccountsCmd())
	cmd.AddCommand(addAccountCmd())
	cmd.AddCommand(updateAccountCmd())
	cmd.AddCommand(deleteAccountCmd())

	return cmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Long:  `Display all accounts with their types and current balances.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			state := ledgerStore.State()
			if len(state.Accounts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No accounts found. Use 'fintrack accounts add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Balance"),
				cli.HeaderStyle.Render("Description"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 10),
				strings.Repeat("-", 12),
				strings.Repeat("-", 30))

			for _, account := range state.Accounts {
				balance := ledger.AccountBalance(state, account.ID)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					account.Name,
					account.Type,
					styledAmount(balance),
					account.Description)
			}

			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to flush output: %w", err)
			}

			total := ledger.TotalBalance(state)
			fmt.Printf("\n%s %s\n", cli.BoldStyle.Render("Total:"), styledAmount(total))

			return nil
		},
	}
}

func addAccountCmd() *cobra.Command {
	var (
		accountType string
		color       string
		description string
		balance     string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new account",
		Long:  `Create a new account. The opening balance defaults to zero.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			opening, err := parseAmount(balance)
			if err != nil {
				return err
			}

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			account, err := ledgerStore.AddAccount(accountInput(args[0], accountType, color, description, opening))
			if err != nil {
				return err
			}

			if err := save(ctx, ledgerStore, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added account %q (%s)", account.Name, account.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&accountType, "type", "t", "bank", "account type (cash, bank, credit, savings, investment)")
	cmd.Flags().StringVarP(&color, "color", "c", "#2563EB", "display color")
	cmd.Flags().StringVarP(&description, "description", "d", "", "account description")
	cmd.Flags().StringVarP(&balance, "balance", "b", "0", "opening balance")

	return cmd
}

func updateAccountCmd() *cobra.Command {
	var (
		accountType string
		color       string
		description string
		balance     string
	)

	cmd := &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Update an account",
		Long:  `Update an account's name, type, color, description, or opening balance.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			opening, err := parseAmount(balance)
			if err != nil {
				return err
			}

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			account, err := ledgerStore.UpdateAccount(args[0], accountInput(args[1], accountType, color, description, opening))
			if err != nil {
				return err
			}

			if err := save(ctx, ledgerStore, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated account %q", account.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&accountType, "type", "t", "bank", "account type (cash, bank, credit, savings, investment)")
	cmd.Flags().StringVarP(&color, "color", "c", "#2563EB", "display color")
	cmd.Flags().StringVarP(&description, "description", "d", "", "account description")
	cmd.Flags().StringVarP(&balance, "balance", "b", "0", "opening balance")

	return cmd
}

func deleteAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Long:  `Delete an account. Transactions recorded against it are removed as well.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			removed, err := ledgerStore.DeleteAccount(args[0])
			if err != nil {
				return err
			}

			if err := save(ctx, ledgerStore, db); err != nil {
				return err
			}

			message := "Deleted account"
			if removed > 0 {
				message = fmt.Sprintf("Deleted account and %d transaction(s)", removed)
			}
			fmt.Println(cli.FormatSuccess(message))
			return nil
		},
	}
}

func accountInput(name, accountType, color, description string, balance decimal.Decimal) store.AccountInput {
	return store.AccountInput{
		Name:        name,
		Type:        model.AccountType(accountType),
		Color:       color,
		Description: description,
		Balance:     balance,
	}
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return amount, nil
}

func styledAmount(amount decimal.Decimal) string {
	formatted := cli.FormatAmount(amount)
	if amount.IsNegative() {
		return cli.AmountNegativeStyle.Render(formatted)
	}
	return cli.AmountPositiveStyle.Render(formatted)
}

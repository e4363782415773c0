package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fintrack/internal/cli"
)

func transferCmd() *cobra.Command {
	var (
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "transfer <from-account> <to-account> <amount>",
		Short: "Transfer between accounts",
		Long:  `Move money between two accounts. A transfer debits the source and credits the destination without touching income or expense totals.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[2])
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

			txn, err := ledgerStore.Transfer(args[0], args[1], amount, when, description)
			if err != nil {
				return err
			}

			if err := save(ctx, ledgerStore, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transferred %s (%s)", cli.FormatAmount(txn.Amount), txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "description")
	cmd.Flags().StringVar(&date, "date", "", "transfer date (YYYY-MM-DD, defaults to today)")

	return cmd
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"fintrack/internal/cli"
	"fintrack/internal/export"
	"fintrack/internal/ledger"
	"fintrack/internal/store"
)

func dataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Export, import, and reset ledger data",
		Long:  `Move the whole ledger in and out as JSON, or reset it to the default accounts and categories.`,
	}

	cmd.AddCommand(exportDataCmd())
	cmd.AddCommand(importDataCmd())
	cmd.AddCommand(resetDataCmd())

	return cmd
}

func exportDataCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as JSON",
		Long:  `Write the full ledger state to a versioned JSON file, or to stdout when no output path is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			payload, err := export.Export(ledgerStore.State(), time.Now())
			if err != nil {
				return fmt.Errorf("failed to export state: %w", err)
			}

			if output == "" {
				fmt.Println(string(payload))
				return nil
			}

			if err := os.WriteFile(output, payload, 0o600); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}

			summary := ledgerStore.Summary()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d accounts, %d categories, %d transactions to %s",
				summary.Accounts, summary.Categories, summary.Transactions, output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to stdout)")

	return cmd
}

func importDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a ledger JSON file",
		Long:  `Replace the current ledger with the contents of an export file. The file is validated before anything is overwritten.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}

			bar := importProgressBar(3)

			state, err := export.Import(data)
			if err != nil {
				return err
			}
			_ = bar.Add(1)

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			ledgerStore.Load(state)
			_ = bar.Add(1)

			if err := save(ctx, ledgerStore, db); err != nil {
				return err
			}
			_ = bar.Add(1)

			summary := ledgerStore.Summary()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d accounts, %d categories, %d transactions",
				summary.Accounts, summary.Categories, summary.Transactions)))
			if summary.Transactions > 0 {
				fmt.Printf("  Date range: %s to %s\n",
					summary.OldestTransaction.Format("2006-01-02"),
					summary.NewestTransaction.Format("2006-01-02"))
			}
			return nil
		},
	}

	return cmd
}

func importProgressBar(steps int) *progressbar.ProgressBar {
	return progressbar.NewOptions(steps,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Importing ledger...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}

func resetDataCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the ledger to defaults",
		Long:  `Delete all transactions and restore the default accounts and categories.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				fmt.Print(cli.FormatWarning("This deletes all data. Type 'yes' to continue: "))
				var answer string
				if _, err := fmt.Scanln(&answer); err != nil || answer != "yes" {
					fmt.Println(cli.InfoStyle.Render("Aborted."))
					return nil
				}
			}

			db, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			ledgerStore := store.New(ledger.State{})
			ledgerStore.ResetDefaults()

			if err := save(ctx, ledgerStore, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Ledger reset to defaults"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}

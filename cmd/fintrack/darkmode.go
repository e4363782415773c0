package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fintrack/internal/cli"
)

func darkModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dark-mode",
		Short: "Toggle the dark mode preference",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			enabled := ledgerStore.ToggleDarkMode()

			if err := save(ctx, ledgerStore, db); err != nil {
				return err
			}

			if enabled {
				fmt.Println(cli.FormatSuccess("Dark mode enabled"))
			} else {
				fmt.Println(cli.FormatSuccess("Dark mode disabled"))
			}
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fintrack/internal/cli"
	"fintrack/internal/model"
	"fintrack/internal/store"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List, add, update, and delete the income and expense categories transactions are tagged with.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	var categoryType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Long:  `Display all categories, optionally filtered by type.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			state := ledgerStore.State()
			if len(state.Categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'fintrack categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("In use"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 12),
				strings.Repeat("-", 20),
				strings.Repeat("-", 8),
				strings.Repeat("-", 6))

			for _, cat := range state.Categories {
				if categoryType != "" && string(cat.Type) != categoryType {
					continue
				}
				name := cat.Name
				if cat.Icon != "" {
					name = cat.Icon + " " + name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
					cat.ID, name, cat.Type, state.CategoryUsageCount(cat.ID))
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&categoryType, "type", "t", "", "filter by type (income, expense)")

	return cmd
}

func addCategoryCmd() *cobra.Command {
	var (
		categoryType string
		icon         string
		color        string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			cat, err := ledgerStore.AddCategory(store.CategoryInput{
				Name:  args[0],
				Icon:  icon,
				Color: color,
				Type:  model.CategoryType(categoryType),
			})
			if err != nil {
				return err
			}

			if err := save(ctx, ledgerStore, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added category %q (%s)", cat.Name, cat.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryType, "type", "t", "expense", "category type (income, expense)")
	cmd.Flags().StringVarP(&icon, "icon", "i", "", "display icon")
	cmd.Flags().StringVarP(&color, "color", "c", "#6B7280", "display color")

	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var (
		categoryType string
		icon         string
		color        string
	)

	cmd := &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Update a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			cat, err := ledgerStore.UpdateCategory(args[0], store.CategoryInput{
				Name:  args[1],
				Icon:  icon,
				Color: color,
				Type:  model.CategoryType(categoryType),
			})
			if err != nil {
				return err
			}

			if err := save(ctx, ledgerStore, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated category %q", cat.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryType, "type", "t", "expense", "category type (income, expense)")
	cmd.Flags().StringVarP(&icon, "icon", "i", "", "display icon")
	cmd.Flags().StringVarP(&color, "color", "c", "#6B7280", "display color")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long:  `Delete a category. Fails if any transaction still references it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerStore, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := ledgerStore.DeleteCategory(args[0]); err != nil {
				return err
			}

			if err := save(ctx, ledgerStore, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Deleted category"))
			return nil
		},
	}
}

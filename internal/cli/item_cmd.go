package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkovari/costline/internal/cli/formatter"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage budget line items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemSetQtyCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var project, catalog, quantity string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a catalog item to a project's budget",
		Long: `Add a catalog item to a project's budget. The new line item copies the
catalog defaults, gets the next ordinal number, and its costs and duration
are computed immediately.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			catalogID, err := resolveCatalogItemID(ctx, app, catalog)
			if err != nil {
				return err
			}
			qty, err := parseDecFlag("quantity", quantity)
			if err != nil {
				return err
			}

			b, err := app.Items.CreateFromCatalog(ctx, projectID, catalogID, qty)
			if err != nil {
				return err
			}

			fmt.Printf("Added item %s %s (row total %s)\n",
				b.OrdinalLabel, b.Description, formatter.Money(b.RowTotal()))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().StringVar(&catalog, "catalog", "", "Catalog item code")
	cmd.Flags().StringVar(&quantity, "quantity", "", "Quantity")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("catalog")
	_ = cmd.MarkFlagRequired("quantity")

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's budget line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			items, err := app.Items.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No budget line items.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatItemTable(items))
			return nil
		},
	}
}

func newItemSetQtyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-qty ITEM_ID QUANTITY",
		Short: "Change an item's quantity and recompute its costs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := parseDecFlag("quantity", args[1])
			if err != nil {
				return err
			}
			if err := app.Items.UpdateQuantity(context.Background(), args[0], qty); err != nil {
				return err
			}
			fmt.Println("Quantity updated.")
			return nil
		},
	}
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ITEM_ID",
		Short: "Remove a budget line item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Items.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Item removed.")
			return nil
		},
	}
}

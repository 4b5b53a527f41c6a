package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkovari/costline/internal/cli/formatter"
	"github.com/mkovari/costline/internal/domain"
	"github.com/mkovari/costline/internal/service"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the item catalog",
	}

	cmd.AddCommand(
		newCatalogAddCmd(app),
		newCatalogListCmd(app),
		newCatalogShowCmd(app),
		newCatalogComponentCmd(app),
	)

	return cmd
}

func newCatalogAddCmd(app *App) *cobra.Command {
	var code, description, unit, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a catalog item",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.CatalogItem{
				Code:        code,
				Description: description,
				Unit:        unit,
				Category:    category,
			}
			if err := app.Catalog.Create(context.Background(), c); err != nil {
				return err
			}
			fmt.Printf("Created catalog item %s\n", c.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Unique item number, e.g. 21-003-001")
	cmd.Flags().StringVar(&description, "description", "", "Item description")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit of measure, e.g. m2")
	cmd.Flags().StringVar(&category, "category", "", "Trade category")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Catalog.List(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("Catalog is empty.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatCatalogList(items))
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show CODE",
		Short: "Show a catalog item and its build-up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCatalogItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Catalog.GetByID(ctx, id)
			if err != nil {
				return err
			}
			buildUp, err := app.Catalog.BuildUp(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatCatalogDetail(formatter.CatalogDetailData{
				Item:       c,
				Materials:  componentRows(buildUp.Materials),
				Operations: componentRows(buildUp.Labor),
				Machines:   componentRows(buildUp.Machines),
			}))
			return nil
		},
	}
}

func componentRows(components []service.ResolvedComponent) []formatter.CatalogComponentRow {
	rows := make([]formatter.CatalogComponentRow, 0, len(components))
	for _, c := range components {
		rows = append(rows, formatter.CatalogComponentRow{
			Name:   c.Name,
			Amount: c.Amount.String(),
			Cost:   formatter.Money(c.Cost),
		})
	}
	return rows
}

func newCatalogComponentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "component",
		Short: "Manage a catalog item's component build-up",
	}
	cmd.AddCommand(
		newComponentAddCmd(app),
		newComponentRemoveCmd(app),
	)
	return cmd
}

func newComponentAddCmd(app *App) *cobra.Command {
	var kind, resourceID, amount string

	cmd := &cobra.Command{
		Use:   "add CODE",
		Short: "Add a component row and re-roll the item's unit costs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCatalogItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			qty, err := parseDecFlag("amount", amount)
			if err != nil {
				return err
			}

			switch kind {
			case "material":
				err = app.Catalog.AddMaterialComponent(ctx, &domain.MaterialComponent{
					CatalogItemID: id, MaterialID: resourceID, Amount: qty,
				})
			case "labor":
				err = app.Catalog.AddLaborComponent(ctx, &domain.LaborComponent{
					CatalogItemID: id, OperationID: resourceID, Hours: qty,
				})
			case "machine":
				err = app.Catalog.AddMachineComponent(ctx, &domain.MachineComponent{
					CatalogItemID: id, MachineID: resourceID, Amount: qty,
				})
			default:
				return fmt.Errorf("invalid --kind %q (material, labor or machine)", kind)
			}
			if err != nil {
				return err
			}
			fmt.Println("Component added.")
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Component kind: material, labor or machine")
	cmd.Flags().StringVar(&resourceID, "resource", "", "Resource ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount per unit (hours for labor)")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("resource")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newComponentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CODE COMPONENT_ID",
		Short: "Remove a component row and re-roll the item's unit costs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCatalogItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Catalog.RemoveComponent(ctx, id, args[1]); err != nil {
				return err
			}
			fmt.Println("Component removed.")
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkovari/costline/internal/cli/formatter"
	"github.com/mkovari/costline/internal/domain"
)

func newResourceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Manage priced resources (materials, operations, machines)",
	}

	cmd.AddCommand(
		newResourceAddCmd(app),
		newResourceListCmd(app),
	)

	return cmd
}

func newResourceAddCmd(app *App) *cobra.Command {
	var kind, name, unit, price string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			amount, err := parseDecFlag("price", price)
			if err != nil {
				return err
			}

			switch kind {
			case "material":
				err = app.Resources.CreateMaterial(ctx, &domain.Material{Name: name, Unit: unit, Price: amount})
			case "operation":
				err = app.Resources.CreateOperation(ctx, &domain.Operation{Name: name, HourlyRate: amount})
			case "machine":
				err = app.Resources.CreateMachine(ctx, &domain.Machine{Name: name, Price: amount})
			default:
				return fmt.Errorf("invalid --kind %q (material, operation or machine)", kind)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Created %s %s\n", kind, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Resource kind: material, operation or machine")
	cmd.Flags().StringVar(&name, "name", "", "Resource name")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit of measure (materials only)")
	cmd.Flags().StringVar(&price, "price", "", "Unit price (hourly rate for operations)")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newResourceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			materials, err := app.Resources.ListMaterials(ctx)
			if err != nil {
				return err
			}
			operations, err := app.Resources.ListOperations(ctx)
			if err != nil {
				return err
			}
			machines, err := app.Resources.ListMachines(ctx)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(materials)+len(operations)+len(machines))
			for _, m := range materials {
				rows = append(rows, []string{formatter.TruncID(m.ID), "material", m.Name, m.Unit, formatter.Money(m.Price)})
			}
			for _, o := range operations {
				rows = append(rows, []string{formatter.TruncID(o.ID), "operation", o.Name, "h", formatter.Money(o.HourlyRate)})
			}
			for _, m := range machines {
				rows = append(rows, []string{formatter.TruncID(m.ID), "machine", m.Name, "", formatter.Money(m.Price)})
			}
			if len(rows) == 0 {
				fmt.Println("No resources found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"ID", "KIND", "NAME", "UNIT", "PRICE"}, rows))
			return nil
		},
	}
}

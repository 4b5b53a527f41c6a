package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkovari/costline/internal/cli/formatter"
	"github.com/mkovari/costline/internal/domain"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, client, location, start, rate, hoursPerDay string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			p := &domain.Project{
				Name:     name,
				Client:   client,
				Location: location,
			}
			if start != "" {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				p.StartDate = &startDate
			}
			if rate != "" {
				if p.HourlyRate, err = parseDecFlag("rate", rate); err != nil {
					return err
				}
			}
			if hoursPerDay != "" {
				if p.HoursPerDay, err = parseDecFlag("hours-per-day", hoursPerDay); err != nil {
					return err
				}
			}

			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&location, "location", "", "Site location")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rate, "rate", "", "Labor hourly rate")
	cmd.Flags().StringVar(&hoursPerDay, "hours-per-day", "", "Working hours per day")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show project details and budget totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			items, err := app.Items.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatProjectDetail(p, items))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, client, location, start, end, status, rate, hoursPerDay string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project",
		Long: `Update a project's master data. Changing the hourly rate or the
working hours per day recomputes every budget line item of the project.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("client") {
				p.Client = client
			}
			if cmd.Flags().Changed("location") {
				p.Location = location
			}
			if cmd.Flags().Changed("status") {
				if !domain.ValidProjectStatuses[status] {
					return fmt.Errorf("invalid status %q", status)
				}
				p.Status = domain.ProjectStatus(status)
			}
			if cmd.Flags().Changed("start") {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				p.StartDate = &startDate
			}
			if cmd.Flags().Changed("end") {
				endDate, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				p.EndDate = &endDate
			}
			if cmd.Flags().Changed("rate") {
				if p.HourlyRate, err = parseDecFlag("rate", rate); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("hours-per-day") {
				if p.HoursPerDay, err = parseDecFlag("hours-per-day", hoursPerDay); err != nil {
					return err
				}
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Updated project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&location, "location", "", "Site location")
	cmd.Flags().StringVar(&status, "status", "", "Pipeline status")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rate, "rate", "", "Labor hourly rate")
	cmd.Flags().StringVar(&hoursPerDay, "hours-per-day", "", "Working hours per day")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Flag a project for deletion",
		Long: `Flag a project for deletion. The project disappears from the global
timeline but keeps its data until an administrator confirms the removal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.RequestDeletion(ctx, projectID); err != nil {
				return err
			}
			fmt.Println("Project flagged for deletion.")
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkovari/costline/internal/cli/formatter"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show computed timelines",
	}

	cmd.AddCommand(
		newScheduleShowCmd(app),
		newScheduleGlobalCmd(app),
	)

	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROJECT",
		Short: "Show one project's timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			payload, err := app.Schedule.ProjectTimeline(ctx, projectID, time.Now().UTC())
			if err != nil {
				return err
			}
			if len(payload.Data) == 0 {
				fmt.Println("Nothing to schedule.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatTimeline(payload))
			return nil
		},
	}
}

func newScheduleGlobalCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "global",
		Short: "Show the all-projects timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := app.Schedule.GlobalTimeline(context.Background(), time.Now().UTC())
			if err != nil {
				return err
			}
			if len(payload.Data) == 0 {
				fmt.Println("Nothing to schedule.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatTimeline(payload))
			return nil
		},
	}
}

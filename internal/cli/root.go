// Package cli wires the cobra command tree. Every command talks to the
// service layer only; nothing here touches the database directly.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkovari/costline/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Catalog   service.CatalogService
	Resources service.ResourceService
	Items     service.LineItemService
	Schedule  service.ScheduleService
}

// NewRootCmd creates the top-level "costline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "costline",
		Short: "Construction budget and schedule engine",
	}

	root.AddCommand(
		newProjectCmd(app),
		newCatalogCmd(app),
		newResourceCmd(app),
		newItemCmd(app),
		newScheduleCmd(app),
		newServeCmd(app),
	)

	return root
}

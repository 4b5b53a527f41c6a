package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/mkovari/costline/internal/cli"
	"github.com/mkovari/costline/internal/db"
	"github.com/mkovari/costline/internal/repository"
	"github.com/mkovari/costline/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.costline/costline.db
	dbPath := os.Getenv("COSTLINE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".costline", "costline.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Plain output when stdout is piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	catalogRepo := repository.NewSQLiteCatalogItemRepo(database)
	resourceRepo := repository.NewSQLiteResourceRepo(database)
	itemRepo := repository.NewSQLiteLineItemRepo(database)
	linkRepo := repository.NewSQLiteLinkRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Optional use-case logging to stderr.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("COSTLINE_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Projects:  service.NewProjectService(projectRepo, uow, observer),
		Catalog:   service.NewCatalogService(catalogRepo, resourceRepo, uow, observer),
		Resources: service.NewResourceService(resourceRepo),
		Items:     service.NewLineItemService(itemRepo, projectRepo, catalogRepo, uow, observer),
		Schedule:  service.NewScheduleService(projectRepo, itemRepo, linkRepo, catalogRepo, uow, observer),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

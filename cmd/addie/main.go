package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/addie/internal/cli"
	"github.com/alexanderramin/addie/internal/config"
	"github.com/alexanderramin/addie/internal/db"
	"github.com/alexanderramin/addie/internal/repository"
	"github.com/alexanderramin/addie/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open report database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Content lives for one invocation; reports persist.
	content := repository.NewContentStore()
	reports := repository.NewSQLiteReportRepo(database, db.NewSQLiteUnitOfWork(database))

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogRuns {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		QA:     service.NewQAService(content, reports, observer),
		Import: service.NewImportService(content),
		Config: cfg,
	}

	// Styled text on a terminal, JSON when piped.
	app.IsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

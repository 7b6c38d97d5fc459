package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/agendadesk/internal/cli"
	"github.com/alexanderramin/agendadesk/internal/config"
	"github.com/alexanderramin/agendadesk/internal/db"
	"github.com/alexanderramin/agendadesk/internal/repository"
	"github.com/alexanderramin/agendadesk/internal/service"
	"github.com/alexanderramin/agendadesk/internal/source"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs go to the rotating file when configured, otherwise to stderr.
	// The TUI mutes stderr logging while it owns the terminal.
	terminal := config.NewTerminalWriter(os.Stderr)
	logger, logCloser := cfg.NewLogger(terminal)
	defer logCloser.Close()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and services
	datasetRepo := repository.NewSQLiteDatasetRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	useCaseObserver := service.NewSlogUseCaseObserver(logger)
	fetchObserver := source.NewLogObserver(logger)

	snCfg := source.ServiceNowConfig{
		Instance: cfg.ServiceNow.Instance,
		Table:    cfg.ServiceNow.Table,
		Query:    cfg.ServiceNow.Query,
		Timeout:  cfg.ServiceNowTimeout(),
	}

	app := &cli.App{
		Agenda: service.NewAgendaService(useCaseObserver),
		Import: service.NewImportService(datasetRepo, uow, useCaseObserver),
		Sources: func(name, file string) (source.Source, error) {
			return source.ForName(name, source.Options{
				File:       file,
				ServiceNow: snCfg,
				Observer:   fetchObserver,
				Mirror:     datasetRepo,
			})
		},
		DefaultSource: cfg.SourceName(),
		DefaultFile:   cfg.File,
		ReorderDelay:  cfg.ReorderDelay(),
		QuietTerminal: terminal.Mute,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

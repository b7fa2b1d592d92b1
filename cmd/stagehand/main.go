package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/stagehand/internal/cli"
	"github.com/alexanderramin/stagehand/internal/config"
	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/alexanderramin/stagehand/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	locationRepo := repository.NewSQLiteLocationRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	phaseRepo := repository.NewSQLitePhaseRepo(database)
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	allocationRepo := repository.NewSQLiteAllocationRepo(database)
	capacityRepo := repository.NewSQLiteCapacityRepo(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	timelineSvc := service.NewTimelineService(service.TimelineRepos{
		Locations:   locationRepo,
		Events:      eventRepo,
		Phases:      phaseRepo,
		Tasks:       taskRepo,
		Allocations: allocationRepo,
		Capacities:  capacityRepo,
	}, service.TimelineOptions{Location: loc, Workers: cfg.Workers}, observers...)

	app := &cli.App{
		Locations:  service.NewLocationService(locationRepo),
		Events:     service.NewEventService(eventRepo, locationRepo, observers...),
		Phases:     service.NewPhaseService(phaseRepo, eventRepo),
		Tasks:      service.NewTaskService(taskRepo, categoryRepo, allocationRepo, eventRepo),
		Capacities: service.NewCapacityService(capacityRepo, eventRepo),
		Timeline:   timelineSvc,
		Import:     service.NewImportService(db.NewSQLiteUnitOfWork(database), observers...),
		Config:     cfg,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

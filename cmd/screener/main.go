package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/mindcheck/screener/internal/cli"
	"github.com/mindcheck/screener/internal/config"
	"github.com/mindcheck/screener/internal/db"
	"github.com/mindcheck/screener/internal/repository"
	"github.com/mindcheck/screener/internal/service"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{}

	// Detect interactive terminal for the questionnaire and pager.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.Setup = func(configPath string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err := config.NewLogger(cfg.Log)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		zap.ReplaceGlobals(logger)
		if cfg.File != "" {
			logger.Debug("loaded config", zap.String("file", cfg.File))
		}

		// Open database
		database, err = db.OpenDB(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		repo := repository.NewSQLiteScreeningRepo(database)
		uow := db.NewSQLiteUnitOfWork(database)

		app.Config = cfg
		app.Logger = logger
		app.Screenings = service.NewScreeningService(repo, uow, service.NewZapUseCaseObserver(logger))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd(app)
	err := rootCmd.ExecuteContext(ctx)
	if app.Logger != nil {
		_ = app.Logger.Sync()
	}
	return err
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-faster/errors"
	"github.com/playwright-community/playwright-go"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	internalcli "github.com/planittesting/jupiter-e2e/internal/cli"
	"github.com/planittesting/jupiter-e2e/internal/config"
	"github.com/planittesting/jupiter-e2e/internal/database"
	"github.com/planittesting/jupiter-e2e/internal/logger"
	"github.com/planittesting/jupiter-e2e/internal/repository"
	"github.com/planittesting/jupiter-e2e/internal/services"
)

var version = "0.1.0"

// feedbackStore picks Postgres when POSTGRES_HOSTNAME is set and memory
// otherwise. The returned func releases the store.
func feedbackStore(ctx context.Context, log *zap.Logger) (services.FeedbackRepository, func(), error) {
	if !config.PostgresConfigured(os.Getenv) {
		log.Info("storing feedback in memory")
		return repository.NewMemoryFeedbackRepository(), func() {}, nil
	}

	pgConfig, err := config.LoadPostgresConfig(os.Getenv)
	if err != nil {
		return nil, nil, err
	}

	db, err := database.Open(ctx, pgConfig)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := database.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, nil, errors.Wrap(err, "failed to run database migrations")
	}

	log.Info("storing feedback in postgres", zap.String("host", pgConfig.Host), zap.String("database", pgConfig.Database))
	return repository.NewFeedbackRepository(db), func() { db.Close() }, nil
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the local Jupiter Toys replica",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Usage:   "port to listen on",
				EnvVars: []string{"PORT"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}
			if c.IsSet("port") {
				cfg.Port = c.String("port")
			}

			log, err := logger.New(cfg.Environment, cfg.LogLevel)
			if err != nil {
				return errors.Wrap(err, "create logger")
			}
			defer log.Sync()

			repo, closeStore, err := feedbackStore(c.Context, log)
			if err != nil {
				return err
			}
			defer closeStore()

			deps, err := internalcli.BuildSiteDependencies(cfg, repo, log)
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install the Playwright driver and the browsers the suite runs on",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "suite YAML file",
				EnvVars: []string{"E2E_CONFIG"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadSuiteConfig(c.String("config"))
			if err != nil {
				return err
			}

			if err := playwright.Install(&playwright.RunOptions{Browsers: cfg.Browsers}); err != nil {
				return errors.Wrap(err, "install playwright")
			}
			fmt.Fprintf(c.App.Writer, "installed playwright for %v\n", cfg.Browsers)
			return nil
		},
	}
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	app := &cli.App{
		Name:    "jupiter",
		Usage:   "Jupiter Toys replica site and browser suite tooling",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
			InstallCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Costwise: a terminal house construction cost estimator.
//
// Rooms are priced from a catalog of floor and wall materials plus a
// construction system factor, with a configurable markup policy layered
// on top of the base cost.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/costwise/costwise/internal/catalog"
	"github.com/costwise/costwise/internal/config"
	"github.com/costwise/costwise/internal/database"
	"github.com/costwise/costwise/internal/models"
	"github.com/costwise/costwise/internal/pricing"
	"github.com/costwise/costwise/internal/repository"
	"github.com/costwise/costwise/internal/services/estimate"
	"github.com/costwise/costwise/internal/tui"
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		houseName   = flag.String("house", "", "Name of the house to open (overrides config)")
		migrateOnly = flag.Bool("migrate-only", false, "Run migrations and exit")
		seedOnly    = flag.Bool("seed", false, "Seed the material catalog and exit")
		showVersion = flag.Bool("version", false, "Show version and exit")
		debugMode   = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("costwise version %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		slog.Info("received shutdown signal", "signal", sig)
		cancel()

		time.AfterFunc(10*time.Second, func() {
			slog.Error("forced shutdown after timeout")
			os.Exit(1)
		})
	}()

	if err := run(ctx, *configPath, *houseName, *migrateOnly, *seedOnly, *debugMode); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, houseName string, migrateOnly, seedOnly, debugMode bool) error {
	cfg, cfgPath, err := config.Load(configPath, true)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if err := setupLogging(cfg, debugMode); err != nil {
		return err
	}

	slog.Info("costwise starting",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cfgPath,
	)

	db, err := database.Open(cfg.Database.Path, &cfg.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		slog.Info("closing database")
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	migrator, err := database.NewMigrator(db)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}

	result, err := migrator.Up(ctx)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	if len(result.Applied) > 0 {
		slog.Info("applied migrations",
			"count", len(result.Applied),
			"to_version", result.TargetVersion,
		)
	}

	if migrateOnly {
		slog.Info("migrations complete, exiting")
		return nil
	}

	markup := pricing.Markup{
		TaxRate:    cfg.Pricing.TaxRate,
		AdminRate:  cfg.Pricing.AdminRate,
		ProfitRate: cfg.Pricing.ProfitRate,
	}
	svc := estimate.NewService(db.DB, catalog.Default(), markup)

	if seedOnly {
		if err := svc.SeedCatalog(ctx); err != nil {
			return fmt.Errorf("seeding catalog: %w", err)
		}
		slog.Info("catalog seeded")
		return nil
	}

	if houseName == "" {
		houseName = cfg.Project.DefaultHouseName
	}
	house, err := openHouse(ctx, svc, houseName)
	if err != nil {
		return err
	}

	tui.Version = Version
	tui.BuildTime = BuildTime

	slog.Info("starting TUI",
		"house", house.Name,
		"rooms", len(house.Rooms),
	)

	if err := tui.Run(ctx, svc, cfg, house); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	slog.Info("costwise shutdown complete")
	return nil
}

// setupLogging configures the default slog logger: JSON to the configured
// log file, or text to stderr when no file is set.
func setupLogging(cfg *config.Config, debugMode bool) error {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	} else {
		switch cfg.Logging.Level {
		case config.LogLevelDebug:
			logLevel = slog.LevelDebug
		case config.LogLevelWarn:
			logLevel = slog.LevelWarn
		case config.LogLevelError:
			logLevel = slog.LevelError
		}
	}

	logPath, err := config.EnsureLogDir(cfg)
	if err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	var handler slog.Handler
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		handler = slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// openHouse loads the named house, creating a fresh one if it does not
// exist yet.
func openHouse(ctx context.Context, svc *estimate.Service, name string) (*models.House, error) {
	house, err := svc.LoadHouse(ctx, name)
	if err == nil {
		slog.Info("loaded house", "name", name, "rooms", len(house.Rooms))
		return house, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		slog.Info("creating new house", "name", name)
		return svc.NewHouse(name), nil
	}
	return nil, fmt.Errorf("loading house %q: %w", name, err)
}

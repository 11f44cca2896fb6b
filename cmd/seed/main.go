// Command seed resets the bookstore database to a fresh randomized sample
// state. It takes no flags or arguments; quantities and value ranges come
// from config.toml (or BOOKSTORE_ env vars) with built-in defaults.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bookstore/backend/internal/infrastructure/config"
	"github.com/bookstore/backend/internal/infrastructure/logger"
	"github.com/bookstore/backend/internal/infrastructure/persistence"
	"github.com/bookstore/backend/internal/seeder"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if err := run(cfg, log); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	log.Info("Connected to database", zap.String("path", cfg.Database.Path))

	s := seeder.New(db, seeder.NewGenerator(&cfg.Seed), &cfg.Seed, log)
	return s.Run(context.Background())
}

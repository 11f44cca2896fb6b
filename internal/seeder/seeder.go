package seeder

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bookstore/backend/internal/infrastructure/config"
	"github.com/bookstore/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder resets the bookstore sample data to a fresh randomized state.
// It is the sole writer of book and salesperson records.
type Seeder struct {
	db     *persistence.Database
	gen    *Generator
	cfg    *config.SeedConfig
	logger *zap.Logger
	out    io.Writer
}

// New creates a Seeder. Progress lines are written to stdout.
func New(db *persistence.Database, gen *Generator, cfg *config.SeedConfig, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		gen:    gen,
		cfg:    cfg,
		logger: logger,
		out:    os.Stdout,
	}
}

// Run discards all existing book and salesperson records and repopulates
// both tables with freshly generated ones, one bulk insert per kind. The
// whole reset runs in a single transaction; a failure anywhere rolls back
// to the previous state.
func (s *Seeder) Run(ctx context.Context) error {
	books := s.gen.Books(s.cfg.Books)
	people := s.gen.Salespeople(s.cfg.Salespeople)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		bookRepo := persistence.NewGormBookRepository(tx)
		personRepo := persistence.NewGormSalespersonRepository(tx)

		fmt.Fprintln(s.out, "Seeding books...")
		if err := bookRepo.DeleteAll(ctx); err != nil {
			return err
		}
		if err := bookRepo.CreateBatch(ctx, books); err != nil {
			return err
		}

		fmt.Fprintln(s.out, "Seeding salespeople...")
		if err := personRepo.DeleteAll(ctx); err != nil {
			return err
		}
		return personRepo.CreateBatch(ctx, people)
	})
	if err != nil {
		return fmt.Errorf("seed run failed: %w", err)
	}

	s.logger.Info("Sample data reset",
		zap.Int("books", len(books)),
		zap.Int("salespeople", len(people)),
	)
	return nil
}

package seeder

import (
	"bytes"
	"context"
	"testing"

	"github.com/bookstore/backend/internal/infrastructure/config"
	"github.com/bookstore/backend/internal/infrastructure/persistence"
	"github.com/bookstore/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupSeederTest(t *testing.T, cfg *config.SeedConfig) (*Seeder, *persistence.Database, *bytes.Buffer) {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Path:         ":memory:",
		BusyTimeout:  1000,
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.DB.AutoMigrate(&models.BookModel{}, &models.SalespersonModel{}))

	out := &bytes.Buffer{}
	s := New(db, NewGeneratorWithSeed(cfg, 11), cfg, zap.NewNop())
	s.out = out
	return s, db, out
}

func TestSeederRun(t *testing.T) {
	cfg := testSeedConfig()
	s, db, out := setupSeederTest(t, cfg)
	ctx := context.Background()

	require.NoError(t, s.Run(ctx))

	bookRepo := persistence.NewGormBookRepository(db.DB)
	personRepo := persistence.NewGormSalespersonRepository(db.DB)

	t.Run("leaves exactly the configured counts", func(t *testing.T) {
		books, err := bookRepo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(50), books)

		people, err := personRepo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(20), people)
	})

	t.Run("prints a progress line per kind", func(t *testing.T) {
		assert.Contains(t, out.String(), "Seeding books...")
		assert.Contains(t, out.String(), "Seeding salespeople...")
	})

	t.Run("fills every field from the generator ranges", func(t *testing.T) {
		books, err := bookRepo.FindAll(ctx)
		require.NoError(t, err)

		for _, b := range books {
			assert.NotEmpty(t, b.Title)
			assert.NotEmpty(t, b.Author)
			assert.NotEmpty(t, b.Publisher)
			assert.False(t, b.PublishDate.IsZero())
			assert.GreaterOrEqual(t, b.Cost, cfg.CostMin)
			assert.LessOrEqual(t, b.Cost, cfg.CostMax)
		}

		people, err := personRepo.FindAll(ctx)
		require.NoError(t, err)

		for _, p := range people {
			assert.NotEmpty(t, p.Name)
			assert.False(t, p.Birthday.IsZero())
			assert.False(t, p.LastClockedIn.IsZero())
			assert.False(t, p.LastClockedOut.IsZero())
		}
	})

	t.Run("ids are unique per table", func(t *testing.T) {
		books, err := bookRepo.FindAll(ctx)
		require.NoError(t, err)

		ids := make(map[int64]bool, len(books))
		for _, b := range books {
			assert.False(t, ids[b.ID], "duplicate book id %d", b.ID)
			ids[b.ID] = true
		}
	})

	t.Run("running again discards prior rows and keeps counts stable", func(t *testing.T) {
		first, err := bookRepo.FindAll(ctx)
		require.NoError(t, err)

		require.NoError(t, s.Run(ctx))

		books, err := bookRepo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(50), books)

		people, err := personRepo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(20), people)

		// No residual rows: the previous randomized content is gone.
		second, err := bookRepo.FindAll(ctx)
		require.NoError(t, err)
		firstTitles := make([]string, len(first))
		secondTitles := make([]string, len(second))
		for i := range first {
			firstTitles[i] = first[i].Title
			secondTitles[i] = second[i].Title
		}
		assert.NotEqual(t, firstTitles, secondTitles)
	})
}

func TestSeederRunConfiguredQuantities(t *testing.T) {
	cfg := &config.SeedConfig{Books: 3, Salespeople: 2, CostMin: 5, CostMax: 35}
	s, db, _ := setupSeederTest(t, cfg)
	ctx := context.Background()

	require.NoError(t, s.Run(ctx))

	books, err := persistence.NewGormBookRepository(db.DB).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), books)

	people, err := persistence.NewGormSalespersonRepository(db.DB).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), people)
}

func TestSeederRunMissingSchema(t *testing.T) {
	// No AutoMigrate: the delete hits a missing table and the run must fail.
	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Path:         ":memory:",
		BusyTimeout:  1000,
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	defer db.Close()

	cfg := testSeedConfig()
	s := New(db, NewGeneratorWithSeed(cfg, 11), cfg, zap.NewNop())
	s.out = &bytes.Buffer{}

	err = s.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "seed run failed")
}

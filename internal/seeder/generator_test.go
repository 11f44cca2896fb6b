package seeder

import (
	"testing"
	"time"

	"github.com/bookstore/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeedConfig() *config.SeedConfig {
	return &config.SeedConfig{
		Books:       50,
		Salespeople: 20,
		CostMin:     5,
		CostMax:     35,
	}
}

func TestGeneratorBook(t *testing.T) {
	gen := NewGeneratorWithSeed(testSeedConfig(), 11)

	t.Run("populates every field", func(t *testing.T) {
		b := gen.Book()

		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.Author)
		assert.NotEmpty(t, b.Publisher)
		assert.False(t, b.PublishDate.IsZero())
		assert.Zero(t, b.ID, "id assignment belongs to storage")
	})

	t.Run("cost stays within the configured range", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			b := gen.Book()
			assert.GreaterOrEqual(t, b.Cost, 5)
			assert.LessOrEqual(t, b.Cost, 35)
		}
	})

	t.Run("honors a narrow cost range", func(t *testing.T) {
		narrow := NewGeneratorWithSeed(&config.SeedConfig{CostMin: 7, CostMax: 7}, 11)
		for i := 0; i < 10; i++ {
			assert.Equal(t, 7, narrow.Book().Cost)
		}
	})
}

func TestGeneratorSalesperson(t *testing.T) {
	gen := NewGeneratorWithSeed(testSeedConfig(), 11)

	s := gen.Salesperson()

	assert.NotEmpty(t, s.Name)
	assert.False(t, s.Birthday.IsZero())
	assert.False(t, s.LastClockedIn.IsZero())
	assert.False(t, s.LastClockedOut.IsZero())

	now := time.Now()
	assert.True(t, s.Birthday.Before(now.AddDate(-18, 0, 1)))
	assert.True(t, s.Birthday.After(now.AddDate(-65, 0, -1)))
}

func TestGeneratorBatch(t *testing.T) {
	gen := NewGeneratorWithSeed(testSeedConfig(), 11)

	books := gen.Books(50)
	require.Len(t, books, 50)

	people := gen.Salespeople(20)
	require.Len(t, people, 20)

	assert.Empty(t, gen.Books(0))
}

// Package seeder resets the bookstore database to a fresh randomized
// sample state for manual inspection and development.
package seeder

import (
	"time"

	"github.com/bookstore/backend/internal/domain/bookstore"
	"github.com/bookstore/backend/internal/infrastructure/config"
	"github.com/brianvoe/gofakeit/v7"
)

// Generator produces randomized bookstore records using gofakeit.
type Generator struct {
	faker *gofakeit.Faker
	cfg   *config.SeedConfig
}

// NewGenerator creates a generator with a random seed.
func NewGenerator(cfg *config.SeedConfig) *Generator {
	return &Generator{faker: gofakeit.New(0), cfg: cfg}
}

// NewGeneratorWithSeed creates a generator with a fixed seed for
// reproducible output.
func NewGeneratorWithSeed(cfg *config.SeedConfig, seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed), cfg: cfg}
}

// Book generates a single randomized book. The cost is uniform in
// [CostMin, CostMax] inclusive.
func (g *Generator) Book() bookstore.Book {
	return bookstore.Book{
		Title:       g.faker.BookTitle(),
		Author:      g.faker.BookAuthor(),
		Publisher:   g.faker.Company(),
		PublishDate: g.faker.DateRange(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), time.Now()),
		Cost:        g.faker.Number(g.cfg.CostMin, g.cfg.CostMax),
	}
}

// Salesperson generates a single randomized salesperson. The two shift
// punches are drawn independently; a clock-out may precede the clock-in.
func (g *Generator) Salesperson() bookstore.Salesperson {
	now := time.Now()
	return bookstore.Salesperson{
		Name:           g.faker.Name(),
		Birthday:       g.faker.DateRange(now.AddDate(-65, 0, 0), now.AddDate(-18, 0, 0)),
		LastClockedIn:  g.faker.DateRange(now.AddDate(0, -1, 0), now),
		LastClockedOut: g.faker.DateRange(now.AddDate(0, -1, 0), now),
	}
}

// Books generates n randomized books.
func (g *Generator) Books(n int) []bookstore.Book {
	books := make([]bookstore.Book, n)
	for i := range books {
		books[i] = g.Book()
	}
	return books
}

// Salespeople generates n randomized salespeople.
func (g *Generator) Salespeople(n int) []bookstore.Salesperson {
	people := make([]bookstore.Salesperson, n)
	for i := range people {
		people[i] = g.Salesperson()
	}
	return people
}

// Package bookstore contains the domain entities of the bookstore:
// the record kinds the persistence layer stores and the seeder fills.
package bookstore

import (
	"fmt"
	"time"
)

// Book is a single title carried by the store.
// IDs are assigned by the storage backend on insert.
type Book struct {
	ID          int64
	Title       string
	Author      string
	Publisher   string
	PublishDate time.Time
	Cost        int
}

// Label returns a short human-readable summary for diagnostics.
func (b *Book) Label() string {
	return fmt.Sprintf("%q by %s (%s)", b.Title, b.Author, b.Publisher)
}

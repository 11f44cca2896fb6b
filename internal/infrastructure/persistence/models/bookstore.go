// Package models contains the persistence models mapping domain entities
// to their storage tables.
package models

import (
	"time"

	"github.com/bookstore/backend/internal/domain/bookstore"
)

// BookModel is the persistence model for the Book domain entity.
type BookModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:text"`
	Author      string    `gorm:"type:text"`
	Publisher   string    `gorm:"type:text"`
	PublishDate time.Time `gorm:"column:publish_date"`
	Cost        int
}

// TableName returns the table name for GORM
func (BookModel) TableName() string {
	return "books"
}

// ToDomain converts the persistence model to a domain Book entity.
func (m *BookModel) ToDomain() *bookstore.Book {
	return &bookstore.Book{
		ID:          m.ID,
		Title:       m.Title,
		Author:      m.Author,
		Publisher:   m.Publisher,
		PublishDate: m.PublishDate,
		Cost:        m.Cost,
	}
}

// FromDomain populates the persistence model from a domain Book entity.
func (m *BookModel) FromDomain(b *bookstore.Book) {
	m.ID = b.ID
	m.Title = b.Title
	m.Author = b.Author
	m.Publisher = b.Publisher
	m.PublishDate = b.PublishDate
	m.Cost = b.Cost
}

// BookModelFromDomain creates a new persistence model from a domain Book entity.
func BookModelFromDomain(b *bookstore.Book) *BookModel {
	m := &BookModel{}
	m.FromDomain(b)
	return m
}

// SalespersonModel is the persistence model for the Salesperson domain entity.
type SalespersonModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Name           string    `gorm:"type:text"`
	Birthday       time.Time `gorm:"column:birthday"`
	LastClockedIn  time.Time `gorm:"column:last_clocked_in"`
	LastClockedOut time.Time `gorm:"column:last_clocked_out"`
}

// TableName returns the table name for GORM
func (SalespersonModel) TableName() string {
	return "salespeople"
}

// ToDomain converts the persistence model to a domain Salesperson entity.
func (m *SalespersonModel) ToDomain() *bookstore.Salesperson {
	return &bookstore.Salesperson{
		ID:             m.ID,
		Name:           m.Name,
		Birthday:       m.Birthday,
		LastClockedIn:  m.LastClockedIn,
		LastClockedOut: m.LastClockedOut,
	}
}

// FromDomain populates the persistence model from a domain Salesperson entity.
func (m *SalespersonModel) FromDomain(s *bookstore.Salesperson) {
	m.ID = s.ID
	m.Name = s.Name
	m.Birthday = s.Birthday
	m.LastClockedIn = s.LastClockedIn
	m.LastClockedOut = s.LastClockedOut
}

// SalespersonModelFromDomain creates a new persistence model from a domain Salesperson entity.
func SalespersonModelFromDomain(s *bookstore.Salesperson) *SalespersonModel {
	m := &SalespersonModel{}
	m.FromDomain(s)
	return m
}

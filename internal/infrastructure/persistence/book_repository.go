package persistence

import (
	"context"
	"fmt"

	"github.com/bookstore/backend/internal/domain/bookstore"
	"github.com/bookstore/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormBookRepository implements book storage using GORM
type GormBookRepository struct {
	db *gorm.DB
}

// NewGormBookRepository creates a new GormBookRepository
func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// DeleteAll removes every book record
func (r *GormBookRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.BookModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete books: %w", result.Error)
	}
	return nil
}

// CreateBatch persists the given books in a single bulk insert.
// Storage-assigned IDs are written back to the slice elements.
func (r *GormBookRepository) CreateBatch(ctx context.Context, books []bookstore.Book) error {
	if len(books) == 0 {
		return nil
	}

	rows := make([]models.BookModel, len(books))
	for i := range books {
		rows[i].FromDomain(&books[i])
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert books: %w", err)
	}

	for i := range rows {
		books[i].ID = rows[i].ID
	}
	return nil
}

// Count returns the number of book records
func (r *GormBookRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BookModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

// FindAll returns every book record ordered by id
func (r *GormBookRepository) FindAll(ctx context.Context) ([]bookstore.Book, error) {
	var rows []models.BookModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	books := make([]bookstore.Book, len(rows))
	for i := range rows {
		books[i] = *rows[i].ToDomain()
	}
	return books, nil
}

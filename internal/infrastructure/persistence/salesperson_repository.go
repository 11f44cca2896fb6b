package persistence

import (
	"context"
	"fmt"

	"github.com/bookstore/backend/internal/domain/bookstore"
	"github.com/bookstore/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSalespersonRepository implements salesperson storage using GORM
type GormSalespersonRepository struct {
	db *gorm.DB
}

// NewGormSalespersonRepository creates a new GormSalespersonRepository
func NewGormSalespersonRepository(db *gorm.DB) *GormSalespersonRepository {
	return &GormSalespersonRepository{db: db}
}

// DeleteAll removes every salesperson record
func (r *GormSalespersonRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.SalespersonModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete salespeople: %w", result.Error)
	}
	return nil
}

// CreateBatch persists the given salespeople in a single bulk insert.
// Storage-assigned IDs are written back to the slice elements.
func (r *GormSalespersonRepository) CreateBatch(ctx context.Context, people []bookstore.Salesperson) error {
	if len(people) == 0 {
		return nil
	}

	rows := make([]models.SalespersonModel, len(people))
	for i := range people {
		rows[i].FromDomain(&people[i])
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert salespeople: %w", err)
	}

	for i := range rows {
		people[i].ID = rows[i].ID
	}
	return nil
}

// Count returns the number of salesperson records
func (r *GormSalespersonRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SalespersonModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count salespeople: %w", err)
	}
	return count, nil
}

// FindAll returns every salesperson record ordered by id
func (r *GormSalespersonRepository) FindAll(ctx context.Context) ([]bookstore.Salesperson, error) {
	var rows []models.SalespersonModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list salespeople: %w", err)
	}

	people := make([]bookstore.Salesperson, len(rows))
	for i := range rows {
		people[i] = *rows[i].ToDomain()
	}
	return people, nil
}

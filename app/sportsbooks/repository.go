package sportsbooks

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/wagerlog/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new sportsbook repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) visible(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Where("user_id IS NULL OR user_id = ?", userID)
}

// ListVisible returns the global catalog plus the user's private entries
func (r *repository) ListVisible(ctx context.Context, userID uuid.UUID) ([]models.Sportsbook, error) {
	var books []models.Sportsbook
	err := r.visible(ctx, userID).Order("name ASC").Order("id ASC").Find(&books).Error
	return books, err
}

// GetVisible returns a sportsbook the user is allowed to reference
func (r *repository) GetVisible(ctx context.Context, userID, id uuid.UUID) (*models.Sportsbook, error) {
	var book models.Sportsbook
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("user_id IS NULL OR user_id = ?", userID).
		First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Create creates a new sportsbook
func (r *repository) Create(ctx context.Context, book *models.Sportsbook) error {
	return r.db.WithContext(ctx).Create(book).Error
}

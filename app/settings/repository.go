package settings

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/joefazee/wagerlog/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new settings repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// GetByUserID returns the settings row with its default book
func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	var s models.UserSettings
	err := r.db.WithContext(ctx).Preload("DefaultBook").Where("user_id = ?", userID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert inserts the row or overwrites base unit and default book
func (r *repository) Upsert(ctx context.Context, s *models.UserSettings) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"base_unit", "default_book_id", "updated_at"}),
		}).
		Create(s).Error
}

package settings

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/models"
)

// Repository defines the interface for settings data access
type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error)
	Upsert(ctx context.Context, settings *models.UserSettings) error
}

// BookVerifier resolves sportsbooks the user may reference
type BookVerifier interface {
	GetVisible(ctx context.Context, userID, id uuid.UUID) (*models.Sportsbook, error)
}

// Service defines the interface for settings business logic
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*SettingsResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *UpdateSettingsRequest) (*SettingsResponse, error)
}

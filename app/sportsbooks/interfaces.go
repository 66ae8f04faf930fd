package sportsbooks

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/models"
)

// Repository defines the interface for sportsbook data access
type Repository interface {
	ListVisible(ctx context.Context, userID uuid.UUID) ([]models.Sportsbook, error)
	GetVisible(ctx context.Context, userID, id uuid.UUID) (*models.Sportsbook, error)
	Create(ctx context.Context, book *models.Sportsbook) error
}

// Service defines the interface for sportsbook business logic
type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]SportsbookResponse, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*SportsbookResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *CreateSportsbookRequest) (*SportsbookResponse, error)
}

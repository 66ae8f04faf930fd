package imports

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/joefazee/wagerlog/models"
)

// BetWriter persists a batch of imported bets atomically
type BetWriter interface {
	CreateBatch(ctx context.Context, bets []models.Bet) error
}

// SettingsReader loads the owner's base unit
type SettingsReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error)
}

// Service defines the interface for CSV import business logic
type Service interface {
	Preview(ctx context.Context, userID uuid.UUID, provider string, file io.Reader) (*ImportResponse, error)
	Commit(ctx context.Context, userID uuid.UUID, provider string, file io.Reader) (*ImportResponse, error)
}

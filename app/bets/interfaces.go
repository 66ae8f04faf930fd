package bets

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/models"
)

// Repository defines the interface for bet data access
type Repository interface {
	Create(ctx context.Context, bet *models.Bet) error
	CreateBatch(ctx context.Context, bets []models.Bet) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Bet, error)
	List(ctx context.Context, userID uuid.UUID, q ListQuery) ([]models.Bet, int64, error)
	Update(ctx context.Context, bet *models.Bet) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// SettingsReader loads the owner's base unit
type SettingsReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error)
}

// SportsbookReader resolves sportsbooks the owner may reference
type SportsbookReader interface {
	GetVisible(ctx context.Context, userID, id uuid.UUID) (*models.Sportsbook, error)
}

// LeaderboardInvalidator is told the placement times of bets that changed
type LeaderboardInvalidator interface {
	BetsChanged(ctx context.Context, userID uuid.UUID, placedAt ...time.Time)
}

// Service defines the interface for bet business logic
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreateBetRequest) (*BetResponse, error)
	List(ctx context.Context, userID uuid.UUID, filters *BetFilters) (*BetListResponse, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*BetResponse, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *UpdateBetRequest) (*BetResponse, error)
	Settle(ctx context.Context, userID, id uuid.UUID, req *SettleBetRequest) (*BetResponse, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

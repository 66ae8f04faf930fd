package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/models"
)

// Repository fetches immutable bet snapshots for aggregation
type Repository interface {
	Snapshot(ctx context.Context, q Query) ([]models.Bet, error)
	MemberBets(ctx context.Context, userIDs []uuid.UUID, month Month) (map[uuid.UUID][]models.Bet, error)
}

// SettingsReader loads the owner's base unit for the bankroll baseline
type SettingsReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error)
}

// Service defines the interface for per-user reports
type Service interface {
	KPIs(ctx context.Context, q Query) (*KPISummary, error)
	Breakdown(ctx context.Context, q Query, dim Dimension) ([]BreakdownEntry, error)
	Bankroll(ctx context.Context, q Query) ([]BankrollPoint, error)
}

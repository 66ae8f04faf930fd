package analytics

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

// NewRepository creates a new analytics repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// Snapshot returns the owner's bets in range, oldest first
func (r *repository) Snapshot(ctx context.Context, q Query) ([]models.Bet, error) {
	query := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", q.UserID)

	if q.Range.From != nil {
		query = query.Where("placed_at >= ?", *q.Range.From)
	}
	if q.Range.To != nil {
		query = query.Where("placed_at <= ?", *q.Range.To)
	}

	var bets []models.Bet
	err := query.Order("placed_at ASC").Order("id ASC").Find(&bets).Error
	return bets, err
}

// MemberBets returns the bets each user placed during month
func (r *repository) MemberBets(ctx context.Context, userIDs []uuid.UUID, month Month) (map[uuid.UUID][]models.Bet, error) {
	result := make(map[uuid.UUID][]models.Bet, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var bets []models.Bet
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Where("placed_at >= ? AND placed_at < ?", month.Start(), month.End()).
		Order("placed_at ASC").
		Order("id ASC").
		Find(&bets).Error
	if err != nil {
		return nil, err
	}

	for i := range bets {
		result[bets[i].UserID] = append(result[bets[i].UserID], bets[i])
	}
	return result, nil
}

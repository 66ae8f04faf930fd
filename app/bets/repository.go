package bets

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/joefazee/wagerlog/models"
)

const insertBatchSize = 500

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new bet repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// Create inserts a single bet
func (r *repository) Create(ctx context.Context, bet *models.Bet) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(bet).Error
}

// CreateBatch inserts every bet in one transaction
func (r *repository) CreateBatch(ctx context.Context, bets []models.Bet) error {
	if len(bets) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).CreateInBatches(&bets, insertBatchSize).Error
	})
}

// GetByID returns an owned bet with its sportsbook
func (r *repository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Bet, error) {
	var bet models.Bet
	err := r.db.WithContext(ctx).
		Preload("Book").
		Where("id = ? AND user_id = ?", id, userID).
		First(&bet).Error
	if err != nil {
		return nil, err
	}
	return &bet, nil
}

// List returns one page of owned bets, newest first, plus the total match count
func (r *repository) List(ctx context.Context, userID uuid.UUID, q ListQuery) ([]models.Bet, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Bet{}).Where("user_id = ?", userID)

	if q.Status != nil {
		query = query.Where("status = ?", *q.Status)
	}
	if q.Sport != nil {
		query = query.Where("sport = ?", *q.Sport)
	}
	if q.Market != nil {
		query = query.Where("market_type = ?", *q.Market)
	}
	if q.BookID != nil {
		query = query.Where("book_id = ?", *q.BookID)
	}
	if q.Range.From != nil {
		query = query.Where("placed_at >= ?", *q.Range.From)
	}
	if q.Range.To != nil {
		query = query.Where("placed_at <= ?", *q.Range.To)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("(bet_name ILIKE ? OR team_or_player ILIKE ?)", pattern, pattern)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bets []models.Bet
	err := query.Session(&gorm.Session{}).
		Preload("Book").
		Order("placed_at DESC").
		Order("id DESC").
		Limit(q.PerPage).
		Offset(q.Offset()).
		Find(&bets).Error
	return bets, total, err
}

// Update saves every column of an existing bet
func (r *repository) Update(ctx context.Context, bet *models.Bet) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(bet).Error
}

// Delete removes an owned bet
func (r *repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Bet{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

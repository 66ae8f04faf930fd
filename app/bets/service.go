package bets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/joefazee/wagerlog/internal/logger"
	"github.com/joefazee/wagerlog/internal/metrics"
	"github.com/joefazee/wagerlog/internal/sanitizer"
	"github.com/joefazee/wagerlog/models"
)

// SourceAPI labels bets entered through the bets endpoints
const SourceAPI = "api"

// service implements the Service interface
type service struct {
	repo         Repository
	settings     SettingsReader
	books        SportsbookReader
	leaderboards LeaderboardInvalidator
	sanitizer    sanitizer.HTMLStripperer
	metrics      *metrics.Recorder
	logger       logger.Logger
}

// NewService creates a new bet service. leaderboards may be nil.
func NewService(
	repo Repository,
	settings SettingsReader,
	books SportsbookReader,
	leaderboards LeaderboardInvalidator,
	sanitizer sanitizer.HTMLStripperer,
	recorder *metrics.Recorder,
	log logger.Logger,
) Service {
	return &service{
		repo:         repo,
		settings:     settings,
		books:        books,
		leaderboards: leaderboards,
		sanitizer:    sanitizer,
		metrics:      recorder,
		logger:       log,
	}
}

// Create records a pending bet sized in the owner's units
func (s *service) Create(ctx context.Context, userID uuid.UUID, req *CreateBetRequest) (*BetResponse, error) {
	bet := &models.Bet{
		UserID:              userID,
		BetName:             s.sanitizer.StripHTML(req.BetName),
		Sport:               req.Sport,
		League:              sanitizer.StripHTMLPtr(s.sanitizer, req.League),
		MarketType:          req.MarketType,
		TeamOrPlayer:        sanitizer.StripHTMLPtr(s.sanitizer, req.TeamOrPlayer),
		OddsAmerican:        req.OddsAmerican,
		Stake:               req.Stake,
		Status:              models.BetStatusPending,
		PlacedAt:            time.Now().UTC(),
		EventDate:           req.EventDate,
		ClosingOddsAmerican: req.ClosingOddsAmerican,
		Notes:               sanitizer.StripHTMLPtr(s.sanitizer, req.Notes),
		ParlayGroupID:       req.ParlayGroupID,
	}
	if err := bet.Validate(); err != nil {
		return nil, err
	}

	baseUnit, err := s.baseUnit(ctx, userID)
	if err != nil {
		return nil, err
	}
	bet.Units = ComputeUnits(bet.Stake, baseUnit)

	if err := s.attachBook(ctx, bet, req.BookID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, bet); err != nil {
		return nil, fmt.Errorf("failed to create bet: %w", err)
	}
	s.metrics.BetCreated(SourceAPI)
	s.changed(ctx, userID, bet)

	return ToBetResponse(bet), nil
}

// List returns one page of the owner's bets
func (s *service) List(ctx context.Context, userID uuid.UUID, filters *BetFilters) (*BetListResponse, error) {
	q, err := filters.ToQuery()
	if err != nil {
		return nil, err
	}

	bets, total, err := s.repo.List(ctx, userID, q)
	if err != nil {
		return nil, err
	}

	return &BetListResponse{
		Bets:    ToBetResponseList(bets),
		Total:   total,
		Page:    q.Page,
		PerPage: q.PerPage,
	}, nil
}

// Get returns one owned bet
func (s *service) Get(ctx context.Context, userID, id uuid.UUID) (*BetResponse, error) {
	bet, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToBetResponse(bet), nil
}

// Update applies a partial update, rederiving units and profit where needed
func (s *service) Update(ctx context.Context, userID, id uuid.UUID, req *UpdateBetRequest) (*BetResponse, error) {
	bet, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.BetName != nil {
		bet.BetName = s.sanitizer.StripHTML(*req.BetName)
	}
	if req.Sport != nil {
		bet.Sport = *req.Sport
	}
	if req.League != nil {
		bet.League = sanitizer.StripHTMLPtr(s.sanitizer, req.League)
	}
	if req.MarketType != nil {
		bet.MarketType = *req.MarketType
	}
	if req.TeamOrPlayer != nil {
		bet.TeamOrPlayer = sanitizer.StripHTMLPtr(s.sanitizer, req.TeamOrPlayer)
	}
	if req.EventDate != nil {
		bet.EventDate = req.EventDate
	}
	if req.ClosingOddsAmerican != nil {
		bet.ClosingOddsAmerican = req.ClosingOddsAmerican
	}
	if req.Notes != nil {
		bet.Notes = sanitizer.StripHTMLPtr(s.sanitizer, req.Notes)
	}

	pricingChanged := false
	if req.OddsAmerican != nil && *req.OddsAmerican != bet.OddsAmerican {
		bet.OddsAmerican = *req.OddsAmerican
		pricingChanged = true
	}
	if req.Stake != nil && !req.Stake.Equal(bet.Stake) {
		bet.Stake = *req.Stake
		pricingChanged = true

		if models.ValidateStake(bet.Stake) == nil {
			baseUnit, err := s.baseUnit(ctx, userID)
			if err != nil {
				return nil, err
			}
			bet.Units = ComputeUnits(bet.Stake, baseUnit)
		}
	}

	if pricingChanged {
		recomputeProfit(bet)
	}
	if err := bet.Validate(); err != nil {
		return nil, err
	}

	if req.BookID != nil {
		if err := s.attachBook(ctx, bet, req.BookID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, bet); err != nil {
		return nil, fmt.Errorf("failed to update bet: %w", err)
	}
	s.changed(ctx, userID, bet)
	return ToBetResponse(bet), nil
}

// Settle moves the bet to a terminal status and stores its profit
func (s *service) Settle(ctx context.Context, userID, id uuid.UUID, req *SettleBetRequest) (*BetResponse, error) {
	if err := ValidateSettlement(req.Status, req.CashoutAmount); err != nil {
		return nil, err
	}

	bet, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	previous := bet.Status
	if err := ApplySettlement(bet, req.Status, req.CashoutAmount); err != nil {
		return nil, err
	}
	if err := bet.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, bet); err != nil {
		return nil, fmt.Errorf("failed to settle bet: %w", err)
	}
	s.changed(ctx, userID, bet)

	s.metrics.BetSettled(string(bet.Status))
	s.logger.Info("bet settled", map[string]interface{}{
		"bet_id":          bet.ID.String(),
		"user_id":         userID.String(),
		"status":          string(bet.Status),
		"previous_status": string(previous),
		"result_profit":   bet.Profit().StringFixed(2),
	})

	return ToBetResponse(bet), nil
}

// Delete removes an owned bet
func (s *service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	bet, err := s.load(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrRecordNotFound
		}
		return err
	}
	s.changed(ctx, userID, bet)
	return nil
}

// changed tells cached group leaderboards the bet's month moved
func (s *service) changed(ctx context.Context, userID uuid.UUID, bet *models.Bet) {
	if s.leaderboards == nil {
		return
	}
	s.leaderboards.BetsChanged(ctx, userID, bet.PlacedAt)
}

func (s *service) load(ctx context.Context, userID, id uuid.UUID) (*models.Bet, error) {
	bet, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return bet, nil
}

// baseUnit fails with ErrBaseUnitNotConfigured when the owner has no settings row
func (s *service) baseUnit(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	settings, err := s.settings.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, models.ErrBaseUnitNotConfigured
		}
		return decimal.Zero, err
	}
	return settings.BaseUnit, nil
}

func (s *service) attachBook(ctx context.Context, bet *models.Bet, bookID *uuid.UUID) error {
	if bookID == nil {
		return nil
	}
	book, err := s.books.GetVisible(ctx, bet.UserID, *bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrUnknownSportsbook
		}
		return err
	}
	bet.BookID = &book.ID
	bet.Book = book
	return nil
}

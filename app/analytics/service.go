package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// service implements the Service interface
type service struct {
	repo     Repository
	settings SettingsReader
}

// NewService creates a new analytics service
func NewService(repo Repository, settings SettingsReader) Service {
	return &service{
		repo:     repo,
		settings: settings,
	}
}

// KPIs summarizes the owner's bets in range
func (s *service) KPIs(ctx context.Context, q Query) (*KPISummary, error) {
	bets, err := s.repo.Snapshot(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to load bets: %w", err)
	}
	summary := SummarizeKPIs(bets)
	return &summary, nil
}

// Breakdown groups the owner's bets in range by dim
func (s *service) Breakdown(ctx context.Context, q Query, dim Dimension) ([]BreakdownEntry, error) {
	bets, err := s.repo.Snapshot(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to load bets: %w", err)
	}
	return BreakdownBy(bets, dim), nil
}

// Bankroll returns the cumulative profit series for the owner's bets in range
func (s *service) Bankroll(ctx context.Context, q Query) ([]BankrollPoint, error) {
	start, err := s.startingBankroll(ctx, q)
	if err != nil {
		return nil, err
	}

	bets, err := s.repo.Snapshot(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to load bets: %w", err)
	}
	return BankrollCurve(bets, start), nil
}

func (s *service) startingBankroll(ctx context.Context, q Query) (decimal.Decimal, error) {
	settings, err := s.settings.GetByUserID(ctx, q.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, fmt.Errorf("failed to load settings: %w", err)
	}
	// a nil settings row falls back to the fixed baseline
	return settings.StartingBankroll(), nil
}

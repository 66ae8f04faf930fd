package imports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/joefazee/wagerlog/app/bets"
	"github.com/joefazee/wagerlog/internal/logger"
	"github.com/joefazee/wagerlog/internal/metrics"
	"github.com/joefazee/wagerlog/internal/sanitizer"
	"github.com/joefazee/wagerlog/models"
)

// SourceImport labels bets created from an upload
const SourceImport = "import"

// service implements the Service interface
type service struct {
	bets         BetWriter
	settings     SettingsReader
	leaderboards bets.LeaderboardInvalidator
	sanitizer    sanitizer.HTMLStripperer
	maxRows      int
	metrics      *metrics.Recorder
	logger       logger.Logger
	now          func() time.Time
}

// NewService creates a new import service. maxRows of zero disables the row cap
// and leaderboards may be nil.
func NewService(
	betWriter BetWriter,
	settings SettingsReader,
	leaderboards bets.LeaderboardInvalidator,
	sanitizer sanitizer.HTMLStripperer,
	maxRows int,
	recorder *metrics.Recorder,
	log logger.Logger,
) Service {
	return &service{
		bets:         betWriter,
		settings:     settings,
		leaderboards: leaderboards,
		sanitizer:    sanitizer,
		maxRows:      maxRows,
		metrics:      recorder,
		logger:       log,
		now:          time.Now,
	}
}

// Preview partitions an upload without writing anything
func (s *service) Preview(ctx context.Context, userID uuid.UUID, provider string, file io.Reader) (*ImportResponse, error) {
	profile, p, _, err := s.partition(userID, file, provider)
	if err != nil {
		return nil, err
	}
	return newImportResponse(profile.Name, p), nil
}

// Commit stores every valid row of an upload in one transaction
func (s *service) Commit(ctx context.Context, userID uuid.UUID, provider string, file io.Reader) (*ImportResponse, error) {
	profile, p, batch, err := s.partition(userID, file, provider)
	if err != nil {
		return nil, err
	}

	resp := newImportResponse(profile.Name, p)
	resp.Committed = true
	if len(batch) == 0 {
		return resp, nil
	}

	settings, err := s.settings.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrBaseUnitNotConfigured
		}
		return nil, err
	}
	for i := range batch {
		batch[i].Units = bets.ComputeUnits(batch[i].Stake, settings.BaseUnit)
	}

	if err := s.bets.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to import bets: %w", err)
	}
	resp.Imported = len(batch)

	if s.leaderboards != nil {
		placed := make([]time.Time, len(batch))
		for i := range batch {
			placed[i] = batch[i].PlacedAt
		}
		s.leaderboards.BetsChanged(ctx, userID, placed...)
	}

	s.metrics.BetsCreated(SourceImport, len(batch))
	s.metrics.ImportRows("valid", len(p.Valid))
	s.metrics.ImportRows("invalid", len(p.Invalid))
	s.logger.Info("import committed", map[string]interface{}{
		"user_id":  userID.String(),
		"provider": profile.Name,
		"imported": len(batch),
		"rejected": len(p.Invalid),
	})

	return resp, nil
}

// partition decodes and normalizes an upload, then drafts a bet per accepted
// row. Rows the bet record refuses move to the rejected list.
func (s *service) partition(userID uuid.UUID, file io.Reader, provider string) (*Profile, Partition, []models.Bet, error) {
	profile, err := LookupProfile(provider)
	if err != nil {
		return nil, Partition{}, nil, err
	}
	sheet, err := ReadCSV(file, s.maxRows)
	if err != nil {
		return nil, Partition{}, nil, err
	}
	normalized := NewNormalizer(profile, s.now).PartitionSheet(sheet)

	p := Partition{Invalid: normalized.Invalid}
	drafts := make([]models.Bet, 0, len(normalized.Valid))
	for _, row := range normalized.Valid {
		bet, err := s.draft(userID, row.CanonicalRow)
		if err != nil {
			p.Invalid = append(p.Invalid, row.reject(err))
			continue
		}
		p.Valid = append(p.Valid, row)
		drafts = append(drafts, *bet)
	}
	sortByLine(p.Invalid)
	return profile, p, drafts, nil
}

// draft builds the stored form of a row. Units are filled in at commit.
func (s *service) draft(userID uuid.UUID, row CanonicalRow) (*models.Bet, error) {
	name := strings.TrimSpace(s.sanitizer.StripHTML(row.BetName))
	if name == "" {
		name = genericColumns[FieldBetName].Fallback
	}

	bet := &models.Bet{
		UserID:       userID,
		BetName:      name,
		Sport:        row.Sport,
		League:       sanitizer.StripHTMLPtr(s.sanitizer, row.League),
		MarketType:   row.MarketType,
		TeamOrPlayer: sanitizer.StripHTMLPtr(s.sanitizer, row.TeamOrPlayer),
		OddsAmerican: row.OddsAmerican,
		Stake:        row.Stake,
		Status:       models.BetStatusPending,
		PlacedAt:     row.PlacedAt,
		Notes:        sanitizer.StripHTMLPtr(s.sanitizer, row.Notes),
	}
	if row.Status.IsTerminal() {
		if err := bets.ApplySettlement(bet, row.Status, row.CashoutAmount); err != nil {
			return nil, err
		}
	}
	if err := bet.Validate(); err != nil {
		return nil, err
	}
	return bet, nil
}

// previewProfit is nil for rows that are still pending
func previewProfit(row CanonicalRow) *decimal.Decimal {
	if !row.Status.IsTerminal() {
		return nil
	}
	profit := bets.ComputeProfit(row.OddsAmerican, row.Stake, row.Status, row.CashoutAmount).Round(4)
	return &profit
}

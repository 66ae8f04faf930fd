package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/models"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Snapshot(ctx context.Context, q Query) ([]models.Bet, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bet), args.Error(1)
}

func (m *MockRepository) MemberBets(ctx context.Context, userIDs []uuid.UUID, month Month) (map[uuid.UUID][]models.Bet, error) {
	args := m.Called(ctx, userIDs, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID][]models.Bet), args.Error(1)
}

type MockSettingsReader struct {
	mock.Mock
}

func (m *MockSettingsReader) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSettings), args.Error(1)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) KPIs(ctx context.Context, q Query) (*KPISummary, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*KPISummary), args.Error(1)
}

func (m *MockService) Breakdown(ctx context.Context, q Query, dim Dimension) ([]BreakdownEntry, error) {
	args := m.Called(ctx, q, dim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BreakdownEntry), args.Error(1)
}

func (m *MockService) Bankroll(ctx context.Context, q Query) ([]BankrollPoint, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BankrollPoint), args.Error(1)
}

package bets

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/models"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, bet *models.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockRepository) CreateBatch(ctx context.Context, bets []models.Bet) error {
	args := m.Called(ctx, bets)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Bet, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, userID uuid.UUID, q ListQuery) ([]models.Bet, int64, error) {
	args := m.Called(ctx, userID, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Bet), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) Update(ctx context.Context, bet *models.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
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

type MockSportsbookReader struct {
	mock.Mock
}

func (m *MockSportsbookReader) GetVisible(ctx context.Context, userID, id uuid.UUID) (*models.Sportsbook, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sportsbook), args.Error(1)
}

type MockLeaderboardInvalidator struct {
	mock.Mock
}

func (m *MockLeaderboardInvalidator) BetsChanged(ctx context.Context, userID uuid.UUID, placedAt ...time.Time) {
	m.Called(ctx, userID, placedAt)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userID uuid.UUID, req *CreateBetRequest) (*BetResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BetResponse), args.Error(1)
}

func (m *MockService) List(ctx context.Context, userID uuid.UUID, filters *BetFilters) (*BetListResponse, error) {
	args := m.Called(ctx, userID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BetListResponse), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, userID, id uuid.UUID) (*BetResponse, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BetResponse), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, userID, id uuid.UUID, req *UpdateBetRequest) (*BetResponse, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BetResponse), args.Error(1)
}

func (m *MockService) Settle(ctx context.Context, userID, id uuid.UUID, req *SettleBetRequest) (*BetResponse, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BetResponse), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

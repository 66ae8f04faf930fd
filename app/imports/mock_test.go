package imports

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/models"
	"github.com/stretchr/testify/mock"
)

type MockBetWriter struct {
	mock.Mock
}

func (m *MockBetWriter) CreateBatch(ctx context.Context, bets []models.Bet) error {
	args := m.Called(ctx, bets)
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

type MockLeaderboardInvalidator struct {
	mock.Mock
}

func (m *MockLeaderboardInvalidator) BetsChanged(ctx context.Context, userID uuid.UUID, placedAt ...time.Time) {
	m.Called(ctx, userID, placedAt)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) Preview(ctx context.Context, userID uuid.UUID, provider string, file io.Reader) (*ImportResponse, error) {
	args := m.Called(ctx, userID, provider, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ImportResponse), args.Error(1)
}

func (m *MockService) Commit(ctx context.Context, userID uuid.UUID, provider string, file io.Reader) (*ImportResponse, error) {
	args := m.Called(ctx, userID, provider, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ImportResponse), args.Error(1)
}

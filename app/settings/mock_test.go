package settings

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/models"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSettings), args.Error(1)
}

func (m *MockRepository) Upsert(ctx context.Context, s *models.UserSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockBookVerifier struct {
	mock.Mock
}

func (m *MockBookVerifier) GetVisible(ctx context.Context, userID, id uuid.UUID) (*models.Sportsbook, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sportsbook), args.Error(1)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, userID uuid.UUID) (*SettingsResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SettingsResponse), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, userID uuid.UUID, req *UpdateSettingsRequest) (*SettingsResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SettingsResponse), args.Error(1)
}

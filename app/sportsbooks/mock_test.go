package sportsbooks

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/models"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListVisible(ctx context.Context, userID uuid.UUID) ([]models.Sportsbook, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Sportsbook), args.Error(1)
}

func (m *MockRepository) GetVisible(ctx context.Context, userID, id uuid.UUID) (*models.Sportsbook, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sportsbook), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, book *models.Sportsbook) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, userID uuid.UUID) ([]SportsbookResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SportsbookResponse), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, userID, id uuid.UUID) (*SportsbookResponse, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SportsbookResponse), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, userID uuid.UUID, req *CreateSportsbookRequest) (*SportsbookResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SportsbookResponse), args.Error(1)
}

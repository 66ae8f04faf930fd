package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/wagerlog/models"
)

// service implements the Service interface
type service struct {
	repo  Repository
	books BookVerifier
}

// NewService creates a new settings service
func NewService(repo Repository, books BookVerifier) Service {
	return &service{
		repo:  repo,
		books: books,
	}
}

// Get returns the caller's settings
func (s *service) Get(ctx context.Context, userID uuid.UUID) (*SettingsResponse, error) {
	settings, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return ToSettingsResponse(settings), nil
}

// Update applies the provided fields on top of the stored row, or the defaults for a new one
func (s *service) Update(ctx context.Context, userID uuid.UUID, req *UpdateSettingsRequest) (*SettingsResponse, error) {
	settings, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		settings = &models.UserSettings{UserID: userID, BaseUnit: models.DefaultBaseUnit}
	}

	if req.BaseUnit != nil {
		settings.BaseUnit = *req.BaseUnit
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if req.DefaultBookID != nil {
		book, err := s.books.GetVisible(ctx, userID, *req.DefaultBookID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrUnknownSportsbook
			}
			return nil, err
		}
		settings.DefaultBookID = &book.ID
		settings.DefaultBook = book
	}

	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return ToSettingsResponse(settings), nil
}

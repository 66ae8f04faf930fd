package sportsbooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/wagerlog/internal/sanitizer"
	"github.com/joefazee/wagerlog/internal/validator"
	"github.com/joefazee/wagerlog/models"
)

const maxNameLength = 100

// service implements the Service interface
type service struct {
	repo      Repository
	sanitizer sanitizer.HTMLStripperer
}

// NewService creates a new sportsbook service
func NewService(repo Repository, sanitizer sanitizer.HTMLStripperer) Service {
	return &service{
		repo:      repo,
		sanitizer: sanitizer,
	}
}

// List returns every sportsbook visible to the user
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]SportsbookResponse, error) {
	books, err := s.repo.ListVisible(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToSportsbookResponseList(books), nil
}

// Get returns a global or owned sportsbook
func (s *service) Get(ctx context.Context, userID, id uuid.UUID) (*SportsbookResponse, error) {
	book, err := s.repo.GetVisible(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return ToSportsbookResponse(book), nil
}

// Create adds a private sportsbook owned by the user
func (s *service) Create(ctx context.Context, userID uuid.UUID, req *CreateSportsbookRequest) (*SportsbookResponse, error) {
	name := s.sanitizer.StripHTML(req.Name)
	if !validator.NotBlank(name) || !validator.MaxRunes(name, maxNameLength) {
		return nil, models.ErrInvalidSportsbookName
	}

	book := &models.Sportsbook{
		UserID: &userID,
		Name:   name,
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create sportsbook: %w", err)
	}
	return ToSportsbookResponse(book), nil
}

package sportsbooks

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/internal/sanitizer"
	"github.com/joefazee/wagerlog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestService_List(t *testing.T) {
	mockRepo := new(MockRepository)
	srvc := NewService(mockRepo, sanitizer.NewHTMLStripper())
	ctx := context.Background()
	userID := uuid.New()

	books := []models.Sportsbook{
		{ID: uuid.New(), Name: "DraftKings"},
		{ID: uuid.New(), Name: "Local", UserID: &userID},
	}
	mockRepo.On("ListVisible", ctx, userID).Return(books, nil)

	result, err := srvc.List(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.True(t, result[0].IsGlobal)
	assert.False(t, result[1].IsGlobal)
	mockRepo.AssertExpectations(t)
}

func TestService_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		srvc := NewService(mockRepo, sanitizer.NewHTMLStripper())
		ctx := context.Background()
		userID, id := uuid.New(), uuid.New()

		mockRepo.On("GetVisible", ctx, userID, id).Return(&models.Sportsbook{ID: id, Name: "FanDuel"}, nil)

		result, err := srvc.Get(ctx, userID, id)

		assert.NoError(t, err)
		assert.Equal(t, "FanDuel", result.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		srvc := NewService(mockRepo, sanitizer.NewHTMLStripper())
		ctx := context.Background()
		userID, id := uuid.New(), uuid.New()

		mockRepo.On("GetVisible", ctx, userID, id).Return(nil, gorm.ErrRecordNotFound)

		result, err := srvc.Get(ctx, userID, id)

		assert.ErrorIs(t, err, models.ErrRecordNotFound)
		assert.Nil(t, result)
	})
}

func TestService_Create(t *testing.T) {
	t.Run("Sanitizes and owns the entry", func(t *testing.T) {
		mockRepo := new(MockRepository)
		srvc := NewService(mockRepo, sanitizer.NewHTMLStripper())
		ctx := context.Background()
		userID := uuid.New()

		mockRepo.On("Create", ctx, mock.MatchedBy(func(b *models.Sportsbook) bool {
			return b.Name == "Corner Shop" && b.UserID != nil && *b.UserID == userID
		})).Return(nil)

		result, err := srvc.Create(ctx, userID, &CreateSportsbookRequest{Name: "  <b>Corner Shop</b> "})

		assert.NoError(t, err)
		assert.Equal(t, "Corner Shop", result.Name)
		assert.False(t, result.IsGlobal)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Rejects names that are blank after sanitizing", func(t *testing.T) {
		mockRepo := new(MockRepository)
		srvc := NewService(mockRepo, sanitizer.NewHTMLStripper())

		_, err := srvc.Create(context.Background(), uuid.New(), &CreateSportsbookRequest{Name: "<script></script>"})

		assert.ErrorIs(t, err, models.ErrInvalidSportsbookName)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Rejects long names", func(t *testing.T) {
		srvc := NewService(new(MockRepository), sanitizer.NewHTMLStripper())

		_, err := srvc.Create(context.Background(), uuid.New(), &CreateSportsbookRequest{Name: strings.Repeat("x", 101)})

		assert.ErrorIs(t, err, models.ErrInvalidSportsbookName)
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		srvc := NewService(mockRepo, sanitizer.NewHTMLStripper())
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := srvc.Create(context.Background(), uuid.New(), &CreateSportsbookRequest{Name: "Shop"})

		assert.ErrorIs(t, err, assert.AnError)
	})
}

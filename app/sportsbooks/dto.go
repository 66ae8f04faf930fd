package sportsbooks

import (
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/models"
)

// CreateSportsbookRequest represents the request to add a private sportsbook
type CreateSportsbookRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// SportsbookResponse represents the response for sportsbook data
type SportsbookResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsGlobal  bool      `json:"is_global"`
	CreatedAt time.Time `json:"created_at"`
}

// ToSportsbookResponse converts a models.Sportsbook to SportsbookResponse
func ToSportsbookResponse(book *models.Sportsbook) *SportsbookResponse {
	return &SportsbookResponse{
		ID:        book.ID,
		Name:      book.Name,
		IsGlobal:  book.IsGlobal(),
		CreatedAt: book.CreatedAt,
	}
}

// ToSportsbookResponseList converts a slice of models.Sportsbook to a slice of SportsbookResponse
func ToSportsbookResponseList(books []models.Sportsbook) []SportsbookResponse {
	responses := make([]SportsbookResponse, len(books))
	for i := range books {
		responses[i] = *ToSportsbookResponse(&books[i])
	}
	return responses
}

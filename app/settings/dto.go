package settings

import (
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/models"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest carries the fields to change; omitted fields keep their value
type UpdateSettingsRequest struct {
	BaseUnit      *decimal.Decimal `json:"base_unit,omitempty" swaggertype:"string"`
	DefaultBookID *uuid.UUID       `json:"default_book_id,omitempty"`
}

// SettingsResponse represents the response for user settings
type SettingsResponse struct {
	UserID           uuid.UUID       `json:"user_id"`
	BaseUnit         decimal.Decimal `json:"base_unit" swaggertype:"string"`
	DefaultBookID    *uuid.UUID      `json:"default_book_id,omitempty"`
	DefaultBookName  *string         `json:"default_book_name,omitempty"`
	StartingBankroll decimal.Decimal `json:"starting_bankroll" swaggertype:"string"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToSettingsResponse converts a models.UserSettings to SettingsResponse
func ToSettingsResponse(s *models.UserSettings) *SettingsResponse {
	res := &SettingsResponse{
		UserID:           s.UserID,
		BaseUnit:         s.BaseUnit,
		DefaultBookID:    s.DefaultBookID,
		StartingBankroll: s.StartingBankroll(),
		UpdatedAt:        s.UpdatedAt,
	}
	if s.DefaultBook != nil {
		name := s.DefaultBook.Name
		res.DefaultBookName = &name
	}
	return res
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// BankrollBaseUnitMultiple is how many base units make up a starting bankroll
	BankrollBaseUnitMultiple = 20
)

var (
	DefaultBaseUnit          = decimal.NewFromInt(50)
	FallbackStartingBankroll = decimal.NewFromInt(1000)
)

// UserSettings holds per-user betting preferences
type UserSettings struct {
	UserID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	BaseUnit      decimal.Decimal `gorm:"type:decimal(20,2);not null;default:50;check:base_unit > 0" json:"base_unit"`
	DefaultBookID *uuid.UUID      `gorm:"type:uuid" json:"default_book_id,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	DefaultBook *Sportsbook `gorm:"foreignKey:DefaultBookID" json:"default_book,omitempty"`
}

// TableName specifies the table name for UserSettings model
func (*UserSettings) TableName() string {
	return "user_settings"
}

// Validate checks the settings are usable for units computation
func (s *UserSettings) Validate() error {
	if ValidateStake(s.BaseUnit) != nil {
		return ErrInvalidBaseUnit
	}
	return nil
}

// StartingBankroll is the bankroll baseline used by the bankroll curve
func (s *UserSettings) StartingBankroll() decimal.Decimal {
	if s == nil || !s.BaseUnit.IsPositive() {
		return FallbackStartingBankroll
	}
	return s.BaseUnit.Mul(decimal.NewFromInt(BankrollBaseUnitMultiple))
}

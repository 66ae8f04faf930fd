package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnknownBookName labels bets that have no resolvable sportsbook
const UnknownBookName = "Unknown"

// Sportsbook is a bookmaker. Entries without an owner form the shared catalog.
type Sportsbook struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for Sportsbook model
func (*Sportsbook) TableName() string {
	return "sportsbooks"
}

// BeforeCreate sets up the model before creation
func (s *Sportsbook) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// IsGlobal reports whether the sportsbook belongs to the shared catalog
func (s *Sportsbook) IsGlobal() bool {
	return s.UserID == nil
}

// VisibleTo reports whether userID may reference this sportsbook
func (s *Sportsbook) VisibleTo(userID uuid.UUID) bool {
	return s.IsGlobal() || *s.UserID == userID
}

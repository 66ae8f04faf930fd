package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the read-only projection of an account owned by the identity service
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;unique" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for User model
func (*User) TableName() string {
	return "users"
}

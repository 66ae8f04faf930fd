package security

import (
	"time"

	"github.com/google/uuid"
)

const (
	TokenScopeAccess = "access"
)

// Maker makes a new token
type Maker interface {

	// CreateToken creates a new token for a specific user and duration
	CreateToken(userID uuid.UUID, duration time.Duration, version int64, scope string) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not
	VerifyToken(token string) (*Payload, error)
}

// Config holds token settings shared by the API and the token CLI
type Config struct {
	SymmetricKey string        `env:"SYMMETRIC_KEY" validate:"len=32"`
	AccessTTL    time.Duration `env:"ACCESS_TOKEN_TTL" env-default:"24h"`
}

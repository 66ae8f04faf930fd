package groups

import (
	"crypto/rand"
	"encoding/base64"
)

const (
	inviteCodeBytes    = 6
	inviteCodeAttempts = 5
)

// CodeGenerator returns a candidate invite code
type CodeGenerator func() (string, error)

// GenerateInviteCode returns 8 url-safe characters from 6 random bytes
func GenerateInviteCode() (string, error) {
	b := make([]byte, inviteCodeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/internal/security"
	"github.com/stretchr/testify/mock"
)

type MockTokenMaker struct {
	mock.Mock
}

func (m *MockTokenMaker) CreateToken(userID uuid.UUID, duration time.Duration, version int64, scope string) (string, *security.Payload, error) {
	args := m.Called(userID, duration, version, scope)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*security.Payload), args.Error(2)
}

func (m *MockTokenMaker) VerifyToken(token string) (*security.Payload, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.Payload), args.Error(1)
}

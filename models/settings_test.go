package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUserSettings(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		s := UserSettings{}
		assert.Equal(t, "user_settings", s.TableName())
	})

	t.Run("Validate", func(t *testing.T) {
		s := UserSettings{BaseUnit: decimal.NewFromInt(25)}
		assert.NoError(t, s.Validate())

		s.BaseUnit = decimal.Zero
		assert.ErrorIs(t, s.Validate(), ErrInvalidBaseUnit)

		s.BaseUnit = decimal.RequireFromString("0.001")
		assert.ErrorIs(t, s.Validate(), ErrInvalidBaseUnit)
	})

	t.Run("StartingBankroll", func(t *testing.T) {
		s := &UserSettings{BaseUnit: decimal.NewFromInt(50)}
		assert.True(t, decimal.NewFromInt(1000).Equal(s.StartingBankroll()))

		s.BaseUnit = decimal.NewFromInt(25)
		assert.True(t, decimal.NewFromInt(500).Equal(s.StartingBankroll()))

		var missing *UserSettings
		assert.True(t, FallbackStartingBankroll.Equal(missing.StartingBankroll()))
	})
}

func TestSportsbook_VisibleTo(t *testing.T) {
	owner := uuid.New()
	global := Sportsbook{Name: "DraftKings"}
	private := Sportsbook{Name: "Local Shop", UserID: &owner}

	assert.True(t, global.IsGlobal())
	assert.True(t, global.VisibleTo(uuid.New()))
	assert.False(t, private.IsGlobal())
	assert.True(t, private.VisibleTo(owner))
	assert.False(t, private.VisibleTo(uuid.New()))
}

func TestGroup(t *testing.T) {
	owner := uuid.New()
	g := Group{OwnerID: owner}
	assert.NoError(t, g.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.True(t, g.IsOwner(owner))
	assert.False(t, g.IsOwner(uuid.New()))

	m := GroupMember{}
	assert.NoError(t, m.BeforeCreate(nil))
	assert.False(t, m.JoinedAt.IsZero())
	assert.Equal(t, "", m.Email())

	m.User = &User{Email: "a@example.com"}
	assert.Equal(t, "a@example.com", m.Email())
}

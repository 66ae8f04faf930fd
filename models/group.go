package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Group is a set of users compared on a shared leaderboard
type Group struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(50);not null" json:"name"`
	Description *string   `gorm:"type:varchar(200)" json:"description,omitempty"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	InviteCode  string    `gorm:"type:varchar(16);not null;uniqueIndex" json:"invite_code"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Members []GroupMember `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

// TableName specifies the table name for Group model
func (*Group) TableName() string {
	return "groups"
}

// BeforeCreate sets up the model before creation
func (g *Group) BeforeCreate(_ *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// IsOwner reports whether userID owns the group
func (g *Group) IsOwner(userID uuid.UUID) bool {
	return g.OwnerID == userID
}

// GroupMember joins a user to a group
type GroupMember struct {
	GroupID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"group_id"`
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"user_id"`
	JoinedAt time.Time `gorm:"type:timestamptz;not null" json:"joined_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for GroupMember model
func (*GroupMember) TableName() string {
	return "group_members"
}

// BeforeCreate sets up the model before creation
func (m *GroupMember) BeforeCreate(_ *gorm.DB) error {
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now().UTC()
	}
	return nil
}

// Email returns the member's email when the user row is loaded
func (m *GroupMember) Email() string {
	if m.User == nil {
		return ""
	}
	return m.User.Email
}

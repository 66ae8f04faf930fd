package groups

import (
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/wagerlog/app/analytics"
	"github.com/joefazee/wagerlog/models"
)

// GroupSummary is a group with its member count
type GroupSummary struct {
	Group       models.Group
	MemberCount int64
}

// Repository defines the interface for group data access
type Repository interface {
	Create(ctx context.Context, group *models.Group) error
	InviteCodeExists(ctx context.Context, code string) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Group, error)
	GetByInviteCode(ctx context.Context, code string) (*models.Group, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]GroupSummary, error)
	GetMember(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupMember, error)
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]models.GroupMember, error)
	CountMembers(ctx context.Context, groupID uuid.UUID) (int64, error)
	AddMember(ctx context.Context, member *models.GroupMember) error
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BetsReader loads each member's bets for a month
type BetsReader interface {
	MemberBets(ctx context.Context, userIDs []uuid.UUID, month analytics.Month) (map[uuid.UUID][]models.Bet, error)
}

// Service defines the interface for group business logic
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error)
	Join(ctx context.Context, userID uuid.UUID, req *JoinGroupRequest) (*GroupResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]GroupResponse, error)
	Get(ctx context.Context, userID, groupID uuid.UUID) (*GroupDetailResponse, error)
	Leave(ctx context.Context, userID, groupID uuid.UUID) error
	Leaderboard(ctx context.Context, userID, groupID uuid.UUID, month string) (*LeaderboardResponse, error)
}

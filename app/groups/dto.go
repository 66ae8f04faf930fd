package groups

import (
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/wagerlog/app/analytics"
	"github.com/joefazee/wagerlog/models"
)

// CreateGroupRequest represents the request to start a group
type CreateGroupRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// JoinGroupRequest carries the invite code shared by a member
type JoinGroupRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

// LeaderboardFilters is the query string of the leaderboard endpoint
type LeaderboardFilters struct {
	Month string `form:"month"`
}

// GroupResponse represents the response for group data
type GroupResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	OwnerID     uuid.UUID `json:"owner_id"`
	InviteCode  string    `json:"invite_code"`
	MemberCount int64     `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// MemberResponse is one roster entry
type MemberResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

// GroupDetailResponse is a group with its roster
type GroupDetailResponse struct {
	GroupResponse
	Members []MemberResponse `json:"members"`
}

// LeaderboardResponse is the ranked roster for one month
type LeaderboardResponse struct {
	GroupID     uuid.UUID                    `json:"group_id"`
	GroupName   string                       `json:"group_name"`
	Month       string                       `json:"month"`
	Leaderboard []analytics.LeaderboardEntry `json:"leaderboard"`
}

// ToGroupResponse converts a models.Group to GroupResponse
func ToGroupResponse(group *models.Group, memberCount int64) *GroupResponse {
	return &GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		OwnerID:     group.OwnerID,
		InviteCode:  group.InviteCode,
		MemberCount: memberCount,
		CreatedAt:   group.CreatedAt,
	}
}

// ToGroupResponseList converts repository summaries to responses
func ToGroupResponseList(summaries []GroupSummary) []GroupResponse {
	responses := make([]GroupResponse, len(summaries))
	for i := range summaries {
		responses[i] = *ToGroupResponse(&summaries[i].Group, summaries[i].MemberCount)
	}
	return responses
}

// ToMemberResponseList converts members to roster entries
func ToMemberResponseList(members []models.GroupMember) []MemberResponse {
	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = MemberResponse{
			UserID:   members[i].UserID,
			Email:    members[i].Email(),
			JoinedAt: members[i].JoinedAt,
		}
	}
	return responses
}

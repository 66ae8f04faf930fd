package groups

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/wagerlog/app/analytics"
	"github.com/joefazee/wagerlog/internal/cache"
	"github.com/joefazee/wagerlog/internal/logger"
	"github.com/joefazee/wagerlog/internal/metrics"
	"github.com/joefazee/wagerlog/internal/sanitizer"
	"github.com/joefazee/wagerlog/internal/validator"
	"github.com/joefazee/wagerlog/models"
)

const (
	minNameLength        = 3
	maxNameLength        = 50
	maxDescriptionLength = 200
)

// service implements the Service interface
type service struct {
	repo      Repository
	bets      BetsReader
	sanitizer sanitizer.HTMLStripperer
	cache     cache.Cache[string]
	ttl       time.Duration
	metrics   *metrics.Recorder
	logger    logger.Logger
	newCode   CodeGenerator
	now       func() time.Time
}

// NewService creates a new group service. A nil cache disables leaderboard caching.
func NewService(
	repo Repository,
	bets BetsReader,
	sanitizer sanitizer.HTMLStripperer,
	leaderboards cache.Cache[string],
	ttl time.Duration,
	recorder *metrics.Recorder,
	log logger.Logger,
) Service {
	return &service{
		repo:      repo,
		bets:      bets,
		sanitizer: sanitizer,
		cache:     leaderboards,
		ttl:       ttl,
		metrics:   recorder,
		logger:    log,
		newCode:   GenerateInviteCode,
		now:       time.Now,
	}
}

// Create starts a group owned by userID, who becomes its first member
func (s *service) Create(ctx context.Context, userID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error) {
	name := s.sanitizer.StripHTML(req.Name)
	if !validator.MinRunes(name, minNameLength) || !validator.MaxRunes(name, maxNameLength) {
		return nil, models.ErrInvalidGroupName
	}
	description := sanitizer.StripHTMLPtr(s.sanitizer, req.Description)
	if description != nil && !validator.MaxRunes(*description, maxDescriptionLength) {
		return nil, models.ErrInvalidGroupDescription
	}

	code, err := s.allocateInviteCode(ctx)
	if err != nil {
		return nil, err
	}

	group := &models.Group{
		Name:        name,
		Description: description,
		OwnerID:     userID,
		InviteCode:  code,
	}
	if err := s.repo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return ToGroupResponse(group, 1), nil
}

func (s *service) allocateInviteCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < inviteCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate invite code: %w", err)
		}
		taken, err := s.repo.InviteCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", models.ErrInviteCodeExhausted
}

// Join adds userID to the group behind an invite code
func (s *service) Join(ctx context.Context, userID uuid.UUID, req *JoinGroupRequest) (*GroupResponse, error) {
	group, err := s.repo.GetByInviteCode(ctx, strings.TrimSpace(req.InviteCode))
	if err != nil {
		return nil, notFound(err)
	}

	if _, err := s.repo.GetMember(ctx, group.ID, userID); err == nil {
		return nil, models.ErrAlreadyGroupMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.repo.AddMember(ctx, &models.GroupMember{GroupID: group.ID, UserID: userID}); err != nil {
		return nil, fmt.Errorf("failed to join group: %w", err)
	}
	s.invalidateLeaderboard(ctx, group.ID)

	count, err := s.repo.CountMembers(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	return ToGroupResponse(group, count), nil
}

// List returns the caller's groups with member counts
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]GroupResponse, error) {
	summaries, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToGroupResponseList(summaries), nil
}

// Get returns a group and its roster to one of its members
func (s *service) Get(ctx context.Context, userID, groupID uuid.UUID) (*GroupDetailResponse, error) {
	if err := s.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}

	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, notFound(err)
	}

	members, err := s.repo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &GroupDetailResponse{
		GroupResponse: *ToGroupResponse(group, int64(len(members))),
		Members:       ToMemberResponseList(members),
	}, nil
}

// Leave drops the caller's membership. The owner leaving deletes the group.
func (s *service) Leave(ctx context.Context, userID, groupID uuid.UUID) error {
	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return notFound(err)
	}
	if err := s.requireMember(ctx, groupID, userID); err != nil {
		return err
	}

	if group.IsOwner(userID) {
		if err := s.repo.Delete(ctx, groupID); err != nil {
			return notFound(err)
		}
		s.logger.Info("group deleted by owner", map[string]interface{}{
			"group_id": groupID.String(),
			"owner_id": userID.String(),
		})
	} else if err := s.repo.RemoveMember(ctx, groupID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotGroupMember
		}
		return err
	}

	s.invalidateLeaderboard(ctx, groupID)
	return nil
}

// Leaderboard ranks the roster on one month of bets. An empty month means the current UTC month.
func (s *service) Leaderboard(ctx context.Context, userID, groupID uuid.UUID, rawMonth string) (*LeaderboardResponse, error) {
	month := analytics.MonthOf(s.now())
	if rawMonth != "" {
		m, err := analytics.ParseMonth(rawMonth)
		if err != nil {
			return nil, err
		}
		month = m
	}

	if err := s.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}

	key := leaderboardKey(groupID, month)
	if cached, ok := s.cachedLeaderboard(ctx, key); ok {
		return cached, nil
	}

	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, notFound(err)
	}

	roster, err := s.repo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(roster))
	for i := range roster {
		ids[i] = roster[i].UserID
	}
	betsByUser, err := s.bets.MemberBets(ctx, ids, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load member bets: %w", err)
	}

	members := make([]analytics.Member, len(roster))
	for i := range roster {
		members[i] = analytics.Member{
			UserID: roster[i].UserID,
			Email:  roster[i].Email(),
			Bets:   betsByUser[roster[i].UserID],
		}
	}

	resp := &LeaderboardResponse{
		GroupID:     group.ID,
		GroupName:   group.Name,
		Month:       month.String(),
		Leaderboard: analytics.GroupLeaderboard(members, month),
	}
	s.storeLeaderboard(ctx, key, resp)
	return resp, nil
}

func leaderboardKey(groupID uuid.UUID, month analytics.Month) string {
	return "leaderboard:" + groupID.String() + ":" + month.String()
}

func (s *service) cachedLeaderboard(ctx context.Context, key string) (*LeaderboardResponse, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Error(err, map[string]interface{}{"cache_key": key, "op": "get"})
		}
		s.metrics.LeaderboardCache(false)
		return nil, false
	}

	var resp LeaderboardResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		s.logger.Error(err, map[string]interface{}{"cache_key": key, "op": "decode"})
		s.metrics.LeaderboardCache(false)
		return nil, false
	}
	s.metrics.LeaderboardCache(true)
	return &resp, true
}

func (s *service) storeLeaderboard(ctx context.Context, key string, resp *LeaderboardResponse) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error(err, map[string]interface{}{"cache_key": key, "op": "encode"})
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		s.logger.Error(err, map[string]interface{}{"cache_key": key, "op": "set"})
	}
}

// invalidateLeaderboard clears the current month after a roster change
func (s *service) invalidateLeaderboard(ctx context.Context, groupID uuid.UUID) {
	if s.cache == nil {
		return
	}
	key := leaderboardKey(groupID, analytics.MonthOf(s.now()))
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Error(err, map[string]interface{}{"cache_key": key, "op": "delete"})
	}
}

func (s *service) requireMember(ctx context.Context, groupID, userID uuid.UUID) error {
	if _, err := s.repo.GetMember(ctx, groupID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotGroupMember
		}
		return err
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrRecordNotFound
	}
	return err
}

package groups

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/wagerlog/app/analytics"
	"github.com/joefazee/wagerlog/internal/cache"
	"github.com/joefazee/wagerlog/internal/logger"
)

// LeaderboardInvalidator drops cached leaderboards after a member's bets change
type LeaderboardInvalidator struct {
	repo   Repository
	cache  cache.Cache[string]
	logger logger.Logger
}

// NewLeaderboardInvalidator creates an invalidator. A nil cache makes it a no-op.
func NewLeaderboardInvalidator(repo Repository, leaderboards cache.Cache[string], log logger.Logger) *LeaderboardInvalidator {
	return &LeaderboardInvalidator{repo: repo, cache: leaderboards, logger: log}
}

// BetsChanged clears the months of placedAt in every group userID belongs to
func (i *LeaderboardInvalidator) BetsChanged(ctx context.Context, userID uuid.UUID, placedAt ...time.Time) {
	if i.cache == nil || len(placedAt) == 0 {
		return
	}

	groups, err := i.repo.ListForUser(ctx, userID)
	if err != nil {
		i.logger.Error(err, map[string]interface{}{"user_id": userID.String(), "op": "invalidate"})
		return
	}

	months := make(map[string]analytics.Month, len(placedAt))
	for _, t := range placedAt {
		m := analytics.MonthOf(t)
		months[m.String()] = m
	}

	for _, g := range groups {
		for _, m := range months {
			key := leaderboardKey(g.Group.ID, m)
			if err := i.cache.Delete(ctx, key); err != nil {
				i.logger.Error(err, map[string]interface{}{"cache_key": key, "op": "delete"})
			}
		}
	}
}

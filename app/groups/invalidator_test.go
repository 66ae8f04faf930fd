package groups

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/wagerlog/app/analytics"
	"github.com/joefazee/wagerlog/internal/cache"
	"github.com/joefazee/wagerlog/internal/logger"
	"github.com/joefazee/wagerlog/models"
)

func TestLeaderboardInvalidator_BetsChanged(t *testing.T) {
	t.Run("clears touched months in every group", func(t *testing.T) {
		ctx := context.Background()
		store := cache.NewMemoryCache[string]()
		t.Cleanup(store.Stop)

		repo := new(MockRepository)
		userID := uuid.New()
		first, second := uuid.New(), uuid.New()
		repo.On("ListForUser", ctx, userID).Return([]GroupSummary{
			{Group: models.Group{ID: first}},
			{Group: models.Group{ID: second}},
		}, nil)

		march := analytics.MonthOf(fixedNow)
		february := analytics.MonthOf(fixedNow.AddDate(0, -1, 0))
		for _, key := range []string{
			leaderboardKey(first, march),
			leaderboardKey(second, march),
			leaderboardKey(first, february),
		} {
			require.NoError(t, store.Set(ctx, key, "{}", time.Minute))
		}

		inv := NewLeaderboardInvalidator(repo, store, logger.NewNullLogger())
		inv.BetsChanged(ctx, userID, fixedNow, fixedNow.Add(time.Hour))

		for _, key := range []string{leaderboardKey(first, march), leaderboardKey(second, march)} {
			_, err := store.Get(ctx, key)
			assert.ErrorIs(t, err, cache.ErrCacheMiss, key)
		}
		_, err := store.Get(ctx, leaderboardKey(first, february))
		assert.NoError(t, err)
	})

	t.Run("no cache", func(t *testing.T) {
		repo := new(MockRepository)

		NewLeaderboardInvalidator(repo, nil, logger.NewNullLogger()).BetsChanged(context.Background(), uuid.New(), fixedNow)

		repo.AssertNotCalled(t, "ListForUser", mock.Anything, mock.Anything)
	})

	t.Run("membership lookup failure is swallowed", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockRepository)
		store := new(MockCache)
		userID := uuid.New()
		repo.On("ListForUser", ctx, userID).Return(nil, errors.New("connection reset"))

		NewLeaderboardInvalidator(repo, store, logger.NewNullLogger()).BetsChanged(ctx, userID, fixedNow)

		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

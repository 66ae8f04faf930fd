package bets

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/wagerlog/models"
)

func TestBetFilters_ToQuery(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		q, err := (&BetFilters{}).ToQuery()
		require.NoError(t, err)
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, defaultPerPage, q.PerPage)
		assert.Equal(t, 0, q.Offset())
		assert.True(t, q.Range.IsZero())
	})

	t.Run("Clamps page size", func(t *testing.T) {
		q, err := (&BetFilters{Page: 3, PerPage: 5000}).ToQuery()
		require.NoError(t, err)
		assert.Equal(t, maxPerPage, q.PerPage)
		assert.Equal(t, 2*maxPerPage, q.Offset())
	})

	t.Run("Typed filters", func(t *testing.T) {
		bookID := uuid.New()
		q, err := (&BetFilters{
			Status: "Pending",
			Sport:  "NBA",
			Market: "Total",
			BookID: bookID.String(),
			From:   "2024-01-01",
			To:     "2024-01-31",
			Search: "  lakers ",
		}).ToQuery()

		require.NoError(t, err)
		assert.Equal(t, models.BetStatusPending, *q.Status)
		assert.Equal(t, models.SportNBA, *q.Sport)
		assert.Equal(t, models.MarketTypeTotal, *q.Market)
		assert.Equal(t, bookID, *q.BookID)
		assert.Equal(t, "lakers", q.Search)
		require.NotNil(t, q.Range.From)
		require.NotNil(t, q.Range.To)
		assert.True(t, q.Range.To.After(*q.Range.From))
	})

	t.Run("Rejects bad values", func(t *testing.T) {
		_, err := (&BetFilters{Status: "Open"}).ToQuery()
		assert.ErrorIs(t, err, models.ErrInvalidBetStatus)

		_, err = (&BetFilters{Market: "Teaser"}).ToQuery()
		assert.ErrorIs(t, err, models.ErrInvalidMarketType)

		_, err = (&BetFilters{BookID: "nope"}).ToQuery()
		assert.ErrorIs(t, err, models.ErrUnknownSportsbook)

		_, err = (&BetFilters{From: "2024-02-01", To: "2024-01-01"}).ToQuery()
		assert.ErrorIs(t, err, models.ErrInvalidDateRange)
	})
}

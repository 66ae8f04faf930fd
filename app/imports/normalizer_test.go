package imports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/wagerlog/models"
)

var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestNormalizer(t *testing.T, provider string) *Normalizer {
	t.Helper()
	profile, err := LookupProfile(provider)
	require.NoError(t, err)
	return NewNormalizer(profile, func() time.Time { return fixedNow })
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLookupProfile(t *testing.T) {
	for _, name := range []string{"", "auto", "dk", "FD", " mgm "} {
		p, err := LookupProfile(name)
		require.NoError(t, err, name)
		assert.NotNil(t, p)
	}

	p, _ := LookupProfile("")
	assert.Equal(t, DefaultProvider, p.Name)

	_, err := LookupProfile("caesars")
	assert.ErrorIs(t, err, models.ErrUnknownImportProvider)
}

func TestNormalizeRow_Defaults(t *testing.T) {
	n := newTestNormalizer(t, "auto")

	row, err := n.NormalizeRow(RawRow{"Odds": "-110", "Stake": "$50"})
	require.NoError(t, err)

	assert.Equal(t, "Imported Bet", row.BetName)
	assert.Equal(t, models.SportOther, row.Sport)
	assert.Equal(t, models.MarketTypeMoneyline, row.MarketType)
	assert.Equal(t, models.BetStatusPending, row.Status)
	assert.Equal(t, -110, row.OddsAmerican)
	assert.True(t, dec("50").Equal(row.Stake))
	assert.Equal(t, fixedNow, row.PlacedAt)
	assert.Nil(t, row.League)
	assert.Nil(t, row.TeamOrPlayer)
	assert.Nil(t, row.Notes)
	assert.Nil(t, row.CashoutAmount)
}

func TestNormalizeRow_ColumnPriority(t *testing.T) {
	n := newTestNormalizer(t, "dk")

	tests := []struct {
		name string
		row  RawRow
		want string
	}{
		{"event wins", RawRow{"Event": "Chiefs vs Bills", "Game": "KC @ BUF", "Description": "desc"}, "Chiefs vs Bills"},
		{"blank event skipped", RawRow{"Event": "  ", "Game": "KC @ BUF"}, "KC @ BUF"},
		{"bet name before description", RawRow{"Bet Name": "Mahomes TD", "Description": "desc"}, "Mahomes TD"},
		{"description last", RawRow{"Description": "desc"}, "desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.row["Odds"] = "+150"
			tt.row["Stake"] = "10"
			row, err := n.NormalizeRow(tt.row)
			require.NoError(t, err)
			assert.Equal(t, tt.want, row.BetName)
			assert.Equal(t, 150, row.OddsAmerican)
		})
	}

	row, err := n.NormalizeRow(RawRow{"Price": "-120", "Odds": "", "Wager": "1,250.50", "Team": "Lakers", "Pick": "Celtics"})
	require.NoError(t, err)
	assert.Equal(t, -120, row.OddsAmerican)
	assert.True(t, dec("1250.50").Equal(row.Stake))
	require.NotNil(t, row.TeamOrPlayer)
	assert.Equal(t, "Lakers", *row.TeamOrPlayer)
}

func TestNormalizeRow_ValueAliases(t *testing.T) {
	n := newTestNormalizer(t, "fd")

	row, err := n.NormalizeRow(RawRow{
		"Odds": "-105", "Stake": "20",
		"Sport": "CFB", "Bet Type": "Point Spread", "Result": "W", "League": "Big Ten",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SportNCAAF, row.Sport)
	assert.Equal(t, models.MarketTypeSpread, row.MarketType)
	assert.Equal(t, models.BetStatusWon, row.Status)
	require.NotNil(t, row.League)
	assert.Equal(t, "Big Ten", *row.League)

	row, err = n.NormalizeRow(RawRow{"Odds": "-105", "Stake": "20", "Sport": "UFC", "Market": "Over/Under", "Status": "Open"})
	require.NoError(t, err)
	assert.Equal(t, models.SportMMA, row.Sport)
	assert.Equal(t, models.MarketTypeTotal, row.MarketType)
	assert.Equal(t, models.BetStatusPending, row.Status)

	row, err = n.NormalizeRow(RawRow{"Odds": "-105", "Stake": "20", "Sport": "NBA", "Market": "Spread", "Result": "Loss"})
	require.NoError(t, err)
	assert.Equal(t, models.SportNBA, row.Sport)
	assert.Equal(t, models.MarketTypeSpread, row.MarketType)
	assert.Equal(t, models.BetStatusLost, row.Status)
}

func TestNormalizeRow_Rejections(t *testing.T) {
	n := newTestNormalizer(t, "auto")

	tests := []struct {
		name    string
		row     RawRow
		wantErr error
	}{
		{"zero odds", RawRow{"Odds": "0", "Stake": "10", "Result": "Loss"}, models.ErrZeroOdds},
		{"missing odds", RawRow{"Stake": "10"}, models.ErrZeroOdds},
		{"malformed odds", RawRow{"Odds": "evens", "Stake": "10"}, models.ErrRowParse},
		{"odds checked before stake", RawRow{"Odds": "0", "Stake": "lots"}, models.ErrZeroOdds},
		{"malformed stake", RawRow{"Odds": "-110", "Stake": "lots"}, models.ErrRowParse},
		{"zero stake", RawRow{"Odds": "-110", "Stake": "$0"}, models.ErrNonPositiveStake},
		{"negative stake", RawRow{"Odds": "-110", "Stake": "-5"}, models.ErrNonPositiveStake},
		{"odds beyond storable range", RawRow{"Odds": "5000000000", "Stake": "10"}, models.ErrOddsOutOfRange},
		{"sub-cent stake", RawRow{"Odds": "-110", "Stake": "0.004"}, models.ErrStakePrecision},
		{"stake over the cap", RawRow{"Odds": "-110", "Stake": "$2,000,000,000"}, models.ErrStakeTooLarge},
		{"stake checked before enums", RawRow{"Odds": "-110", "Stake": "0", "Sport": "Cricket"}, models.ErrNonPositiveStake},
		{"unknown sport", RawRow{"Odds": "-110", "Stake": "5", "Sport": "Cricket"}, models.ErrInvalidSport},
		{"unknown market", RawRow{"Odds": "-110", "Stake": "5", "Market": "Teaser"}, models.ErrInvalidMarketType},
		{"unknown status", RawRow{"Odds": "-110", "Stake": "5", "Result": "Graded"}, models.ErrInvalidBetStatus},
		{"cashout without amount", RawRow{"Odds": "-110", "Stake": "5", "Result": "Cashed Out"}, models.ErrCashoutAmountRequired},
		{"malformed cashout", RawRow{"Odds": "-110", "Stake": "5", "Result": "Cashout", "Cashout": "n/a"}, models.ErrRowParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := n.NormalizeRow(tt.row)
			assert.Nil(t, row)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := n.NormalizeRow(RawRow{"Odds": "0"})
	assert.EqualError(t, err, "odds cannot be zero")

	_, err = n.NormalizeRow(RawRow{"Odds": "abc", "Stake": "10"})
	assert.Contains(t, err.Error(), "could not parse row")
}

func TestNormalizeRow_Cashout(t *testing.T) {
	n := newTestNormalizer(t, "mgm")

	row, err := n.NormalizeRow(RawRow{"Odds": "+200", "Stake": "100", "Result": "Cash Out", "Cash Out": "$80.00"})
	require.NoError(t, err)
	assert.Equal(t, models.BetStatusCashout, row.Status)
	require.NotNil(t, row.CashoutAmount)
	assert.True(t, dec("80").Equal(*row.CashoutAmount))

	row, err = n.NormalizeRow(RawRow{"Odds": "+200", "Stake": "100", "Result": "Win", "Cashout": "80"})
	require.NoError(t, err)
	assert.Nil(t, row.CashoutAmount)
}

func TestNormalizeRow_PlacedAt(t *testing.T) {
	n := newTestNormalizer(t, "auto")

	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2024-03-01T18:00:00-05:00", time.Date(2024, time.March, 1, 23, 0, 0, 0, time.UTC)},
		{"2024-03-01T18:00:00Z", time.Date(2024, time.March, 1, 18, 0, 0, 0, time.UTC)},
		{"2024-03-01T18:30:15", time.Date(2024, time.March, 1, 18, 30, 15, 0, time.UTC)},
		{"2024-03-01 18:30", time.Date(2024, time.March, 1, 18, 30, 0, 0, time.UTC)},
		{"2024-03-01", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{"03/02/2024", time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)},
		{"03/02/2024 19:45", time.Date(2024, time.March, 2, 19, 45, 0, 0, time.UTC)},
		{"last tuesday", fixedNow},
		{"", fixedNow},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			row, err := n.NormalizeRow(RawRow{"Odds": "-110", "Stake": "10", "Date": tt.raw})
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(row.PlacedAt), "got %s", row.PlacedAt)
		})
	}

	row, err := n.NormalizeRow(RawRow{"Odds": "-110", "Stake": "10", "Placed": "2024-01-05", "Date": "2024-02-05"})
	require.NoError(t, err)
	assert.Equal(t, time.January, row.PlacedAt.Month())
}

func TestNormalizeRow_RecoversFromPanic(t *testing.T) {
	n := NewNormalizer(nil, nil)

	row, err := n.NormalizeRow(RawRow{"Odds": "-110"})
	assert.Nil(t, row)
	assert.ErrorIs(t, err, models.ErrRowParse)
}

func TestPartition(t *testing.T) {
	n := newTestNormalizer(t, "auto")

	rows := []RawRow{
		{"Odds": "-110", "Stake": "$50", "Result": "Win"},
		{"Odds": "0", "Stake": "10", "Result": "Loss"},
	}
	p := n.Partition(rows)

	require.Len(t, p.Valid, 1)
	require.Len(t, p.Invalid, 1)

	assert.Equal(t, 2, p.Valid[0].Line)
	assert.Equal(t, models.BetStatusWon, p.Valid[0].Status)
	assert.True(t, dec("50").Equal(p.Valid[0].Stake))

	assert.Equal(t, 3, p.Invalid[0].Line)
	assert.Equal(t, "odds cannot be zero", p.Invalid[0].Reason)
	assert.Equal(t, rows[1], p.Invalid[0].Row)

	empty := n.Partition(nil)
	assert.Empty(t, empty.Valid)
	assert.Empty(t, empty.Invalid)
}

func TestPartitionSheet_MergesBrokenRecords(t *testing.T) {
	n := newTestNormalizer(t, "auto")

	sheet := &Sheet{
		Rows:   []RawRow{{"Odds": "0"}, {"Odds": "-110", "Stake": "10"}},
		Lines:  []int{4, 5},
		Broken: []RejectedRow{{Line: 3, Reason: "could not parse row: bad quote", Row: RawRow{}}},
	}
	p := n.PartitionSheet(sheet)

	require.Len(t, p.Valid, 1)
	assert.Equal(t, 5, p.Valid[0].Line)
	require.Len(t, p.Invalid, 2)
	assert.Equal(t, 3, p.Invalid[0].Line)
	assert.Equal(t, 4, p.Invalid[1].Line)
}

package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joefazee/wagerlog/internal/daterange"
	"github.com/joefazee/wagerlog/internal/oddsmath"
	"github.com/joefazee/wagerlog/internal/validator"
	"github.com/joefazee/wagerlog/models"
)

const (
	moneyPrecision = 2
	unitsPrecision = 4
)

var hundred = decimal.NewFromInt(100)

// Query scopes one aggregation call to an owner and an optional placed_at range
type Query struct {
	UserID uuid.UUID
	Range  daterange.Range
}

// NewQuery validates the raw from/to strings
func NewQuery(userID uuid.UUID, from, to string) (Query, error) {
	r, err := daterange.Parse(from, to)
	if err != nil {
		return Query{}, err
	}
	return Query{UserID: userID, Range: r}, nil
}

// KPISummary rolls a bet snapshot into headline metrics
type KPISummary struct {
	TotalPnL       decimal.Decimal `json:"total_pnl" swaggertype:"string"`
	TotalUnits     decimal.Decimal `json:"total_units" swaggertype:"string"`
	ROI            decimal.Decimal `json:"roi" swaggertype:"string"`
	HitRate        decimal.Decimal `json:"hit_rate" swaggertype:"string"`
	AvgOdds        int64           `json:"avg_odds"`
	AvgDecimalOdds decimal.Decimal `json:"avg_decimal_odds" swaggertype:"string"`
	TotalBets      int             `json:"total_bets"`
	WonBets        int             `json:"won_bets"`
	LostBets       int             `json:"lost_bets"`
	PendingBets    int             `json:"pending_bets"`
}

// BreakdownEntry is the roll-up for one dimension value
type BreakdownEntry struct {
	Key    string          `json:"key"`
	PnL    decimal.Decimal `json:"pnl" swaggertype:"string"`
	Staked decimal.Decimal `json:"staked" swaggertype:"string"`
	ROI    decimal.Decimal `json:"roi" swaggertype:"string"`
	Count  int             `json:"count"`
}

// BankrollPoint is one step of the cumulative profit series
type BankrollPoint struct {
	Date          time.Time       `json:"date"`
	CumulativePnL decimal.Decimal `json:"cumulative_pnl" swaggertype:"string"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string"`
}

// Member is one roster entry with the bets it placed in scope
type Member struct {
	UserID uuid.UUID
	Email  string
	Bets   []models.Bet
}

// LeaderboardEntry is one ranked row of a group leaderboard
type LeaderboardEntry struct {
	Rank      int             `json:"rank"`
	UserID    uuid.UUID       `json:"user_id"`
	Email     string          `json:"email"`
	TotalBets int             `json:"total_bets"`
	Wins      int             `json:"wins"`
	Losses    int             `json:"losses"`
	Profit    decimal.Decimal `json:"profit" swaggertype:"string"`
	Units     decimal.Decimal `json:"units" swaggertype:"string"`
	Staked    decimal.Decimal `json:"staked" swaggertype:"string"`
	ROI       decimal.Decimal `json:"roi" swaggertype:"string"`
	WinRate   decimal.Decimal `json:"win_rate" swaggertype:"string"`
	TopSport  *string         `json:"top_sport"`
}

// ROI is profit over the amount staked on decided bets, as a percentage.
// A zero stake yields zero.
func ROI(profit, staked decimal.Decimal) decimal.Decimal {
	if staked.IsZero() {
		return decimal.Zero
	}
	return profit.Div(staked).Mul(hundred).Round(moneyPrecision)
}

// HitRate is wins over decided bets, as a percentage
func HitRate(wins, losses int) decimal.Decimal {
	decided := wins + losses
	if decided == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(wins)).
		Div(decimal.NewFromInt(int64(decided))).
		Mul(hundred).
		Round(moneyPrecision)
}

// signedUnits is +units for a winning result, -units for a losing one and zero otherwise
func signedUnits(bet *models.Bet) decimal.Decimal {
	if bet.ResultProfit == nil {
		return decimal.Zero
	}
	switch bet.ResultProfit.Sign() {
	case 1:
		return bet.Units
	case -1:
		return bet.Units.Neg()
	default:
		return decimal.Zero
	}
}

// SummarizeKPIs computes the KPI summary of a snapshot
func SummarizeKPIs(bets []models.Bet) KPISummary {
	var summary KPISummary
	pnl, units, staked := decimal.Zero, decimal.Zero, decimal.Zero
	oddsSum, decimalOdds := decimal.Zero, decimal.Zero

	for i := range bets {
		bet := &bets[i]

		pnl = pnl.Add(bet.Profit())
		units = units.Add(signedUnits(bet))
		oddsSum = oddsSum.Add(decimal.NewFromInt(int64(bet.OddsAmerican)))
		decimalOdds = decimalOdds.Add(oddsmath.AmericanToDecimal(bet.OddsAmerican))

		switch bet.Status {
		case models.BetStatusWon:
			summary.WonBets++
		case models.BetStatusLost:
			summary.LostBets++
		case models.BetStatusPending:
			summary.PendingBets++
		}
		if bet.Status.IsDecided() {
			staked = staked.Add(bet.Stake)
		}
	}

	summary.TotalBets = len(bets)
	summary.TotalPnL = pnl.Round(moneyPrecision)
	summary.TotalUnits = units.Round(unitsPrecision)
	summary.ROI = ROI(pnl, staked)
	summary.HitRate = HitRate(summary.WonBets, summary.LostBets)
	summary.AvgDecimalOdds = decimal.Zero

	if n := len(bets); n > 0 {
		count := decimal.NewFromInt(int64(n))
		summary.AvgOdds = oddsSum.Div(count).Round(0).IntPart()
		summary.AvgDecimalOdds = decimalOdds.Div(count).Round(moneyPrecision)
	}
	return summary
}

// Dimension is a breakdown grouping axis
type Dimension string

const (
	DimensionBook   Dimension = "book"
	DimensionSport  Dimension = "sport"
	DimensionMarket Dimension = "market"
)

// ParseDimension accepts book, sport or market
func ParseDimension(s string) (Dimension, error) {
	d := Dimension(s)
	if !validator.In(d, DimensionBook, DimensionSport, DimensionMarket) {
		return "", models.ErrInvalidDimension
	}
	return d, nil
}

func (d Dimension) keyOf(bet *models.Bet) string {
	switch d {
	case DimensionSport:
		return string(bet.Sport)
	case DimensionMarket:
		return string(bet.MarketType)
	default:
		return bet.BookName()
	}
}

// BreakdownBy groups a snapshot by dimension. Entries are sorted by pnl
// descending; ties keep first-seen order.
func BreakdownBy(bets []models.Bet, dim Dimension) []BreakdownEntry {
	type bucket struct {
		pnl    decimal.Decimal
		staked decimal.Decimal
		count  int
	}

	var order []string
	buckets := make(map[string]*bucket)

	for i := range bets {
		bet := &bets[i]
		key := dim.keyOf(bet)

		b, ok := buckets[key]
		if !ok {
			b = &bucket{pnl: decimal.Zero, staked: decimal.Zero}
			buckets[key] = b
			order = append(order, key)
		}

		b.count++
		b.pnl = b.pnl.Add(bet.Profit())
		if bet.Status.IsDecided() {
			b.staked = b.staked.Add(bet.Stake)
		}
	}

	entries := make([]BreakdownEntry, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		entries = append(entries, BreakdownEntry{
			Key:    key,
			PnL:    b.pnl.Round(moneyPrecision),
			Staked: b.staked.Round(moneyPrecision),
			ROI:    ROI(b.pnl, b.staked),
			Count:  b.count,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PnL.GreaterThan(entries[j].PnL)
	})
	return entries
}

// BankrollCurve is the running profit of settled bets in placed_at order,
// offset by the starting balance
func BankrollCurve(bets []models.Bet, start decimal.Decimal) []BankrollPoint {
	settled := make([]*models.Bet, 0, len(bets))
	for i := range bets {
		if bets[i].ResultProfit != nil {
			settled = append(settled, &bets[i])
		}
	}
	sort.SliceStable(settled, func(i, j int) bool {
		return settled[i].PlacedAt.Before(settled[j].PlacedAt)
	})

	points := make([]BankrollPoint, 0, len(settled))
	cumulative := decimal.Zero
	for _, bet := range settled {
		cumulative = cumulative.Add(*bet.ResultProfit)
		points = append(points, BankrollPoint{
			Date:          bet.PlacedAt,
			CumulativePnL: cumulative.Round(moneyPrecision),
			Balance:       start.Add(cumulative).Round(moneyPrecision),
		})
	}
	return points
}

// GroupLeaderboard ranks every member on the bets placed inside month.
// Members without bets appear with zero ROI and win rate.
func GroupLeaderboard(members []Member, month Month) []LeaderboardEntry {
	from, to := month.Start(), month.End()

	entries := make([]LeaderboardEntry, 0, len(members))
	for _, m := range members {
		entry := LeaderboardEntry{
			UserID: m.UserID,
			Email:  m.Email,
			Profit: decimal.Zero,
			Units:  decimal.Zero,
			Staked: decimal.Zero,
		}

		for i := range m.Bets {
			bet := &m.Bets[i]
			if bet.PlacedAt.Before(from) || !bet.PlacedAt.Before(to) {
				continue
			}

			entry.TotalBets++
			entry.Profit = entry.Profit.Add(bet.Profit())
			switch bet.Status {
			case models.BetStatusWon:
				entry.Wins++
			case models.BetStatusLost:
				entry.Losses++
			}
			if bet.Status.IsDecided() {
				entry.Units = entry.Units.Add(bet.Units)
				entry.Staked = entry.Staked.Add(bet.Stake)
			}
		}

		entry.ROI = ROI(entry.Profit, entry.Staked)
		entry.WinRate = HitRate(entry.Wins, entry.Losses)
		entry.Profit = entry.Profit.Round(moneyPrecision)
		entry.Units = entry.Units.Round(unitsPrecision)
		entry.Staked = entry.Staked.Round(moneyPrecision)
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ROI.GreaterThan(entries[j].ROI)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

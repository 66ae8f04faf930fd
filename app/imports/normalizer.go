package imports

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joefazee/wagerlog/models"
)

// RawRow is one external record keyed by header name
type RawRow map[string]string

// CanonicalRow is a row resolved into bet attributes
type CanonicalRow struct {
	BetName       string            `json:"bet_name"`
	Sport         models.Sport      `json:"sport" swaggertype:"string"`
	League        *string           `json:"league,omitempty"`
	MarketType    models.MarketType `json:"market_type" swaggertype:"string"`
	TeamOrPlayer  *string           `json:"team_or_player,omitempty"`
	OddsAmerican  int               `json:"odds_american"`
	Stake         decimal.Decimal   `json:"stake" swaggertype:"string"`
	Status        models.BetStatus  `json:"status" swaggertype:"string"`
	CashoutAmount *decimal.Decimal  `json:"cashout_amount,omitempty" swaggertype:"string"`
	PlacedAt      time.Time         `json:"placed_at"`
	Notes         *string           `json:"notes,omitempty"`
}

// ValidRow is an accepted row with its source line
type ValidRow struct {
	Line int `json:"line"`
	CanonicalRow

	raw RawRow
}

// reject turns an accepted row back into a rejection
func (r ValidRow) reject(err error) RejectedRow {
	return RejectedRow{Line: r.Line, Reason: err.Error(), Row: r.raw}
}

// RejectedRow keeps the raw payload of a row that could not be accepted
type RejectedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"error"`
	Row    RawRow `json:"row"`
}

// Partition splits a batch into accepted and rejected rows
type Partition struct {
	Valid   []ValidRow
	Invalid []RejectedRow
}

// firstDataLine is the source line of the first record after the header
const firstDataLine = 2

// placedAtLayouts are tried in order after RFC 3339
var placedAtLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006",
	"01/02/2006 15:04",
}

// Normalizer resolves rows of one provider profile
type Normalizer struct {
	profile *Profile
	now     func() time.Time
}

// NewNormalizer creates a normalizer. A nil clock uses time.Now.
func NewNormalizer(profile *Profile, now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{profile: profile, now: now}
}

// NormalizeRow resolves one row or returns the reason it was rejected
func (n *Normalizer) NormalizeRow(row RawRow) (out *CanonicalRow, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %v", models.ErrRowParse, r)
		}
	}()

	value := func(f Field) string {
		return n.profile.Columns[f].resolve(row)
	}

	odds, err := parseOdds(value(FieldOdds))
	if err != nil {
		return nil, err
	}
	if err := models.ValidateOdds(odds); err != nil {
		return nil, err
	}

	stake, err := parseMoney(value(FieldStake))
	if err != nil {
		return nil, err
	}
	if err := models.ValidateStake(stake); err != nil {
		return nil, err
	}

	sport, err := models.ParseSport(alias(n.profile.SportAliases, value(FieldSport)))
	if err != nil {
		return nil, err
	}
	market, err := models.ParseMarketType(alias(n.profile.MarketAliases, value(FieldMarket)))
	if err != nil {
		return nil, err
	}
	status, err := models.ParseBetStatus(alias(n.profile.StatusAliases, value(FieldStatus)))
	if err != nil {
		return nil, err
	}

	var cashout *decimal.Decimal
	if raw := value(FieldCashout); raw != "" {
		amount, err := parseMoney(raw)
		if err != nil {
			return nil, err
		}
		cashout = &amount
	}
	if status == models.BetStatusCashout && cashout == nil {
		return nil, models.ErrCashoutAmountRequired
	}
	if status != models.BetStatusCashout {
		cashout = nil
	}

	return &CanonicalRow{
		BetName:       value(FieldBetName),
		Sport:         sport,
		League:        optional(value(FieldLeague)),
		MarketType:    market,
		TeamOrPlayer:  optional(value(FieldSelection)),
		OddsAmerican:  odds,
		Stake:         stake,
		Status:        status,
		CashoutAmount: cashout,
		PlacedAt:      n.parsePlacedAt(value(FieldPlacedAt)),
		Notes:         optional(value(FieldNotes)),
	}, nil
}

// Partition normalizes every row. Rejections never stop the batch.
func (n *Normalizer) Partition(rows []RawRow) Partition {
	return n.partition(rows, nil)
}

// PartitionSheet normalizes a decoded upload and merges its broken records,
// keeping rejections in line order.
func (n *Normalizer) PartitionSheet(sheet *Sheet) Partition {
	p := n.partition(sheet.Rows, sheet.Lines)
	if len(sheet.Broken) == 0 {
		return p
	}
	p.Invalid = append(p.Invalid, sheet.Broken...)
	sortByLine(p.Invalid)
	return p
}

func sortByLine(rows []RejectedRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Line < rows[j].Line
	})
}

func (n *Normalizer) partition(rows []RawRow, lines []int) Partition {
	var p Partition
	for i, row := range rows {
		line := i + firstDataLine
		if i < len(lines) {
			line = lines[i]
		}
		canonical, err := n.NormalizeRow(row)
		if err != nil {
			p.Invalid = append(p.Invalid, RejectedRow{Line: line, Reason: err.Error(), Row: row})
			continue
		}
		p.Valid = append(p.Valid, ValidRow{Line: line, CanonicalRow: *canonical, raw: row})
	}
	return p
}

func parseOdds(raw string) (int, error) {
	v := strings.TrimPrefix(strings.TrimSpace(raw), "+")
	odds, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid odds %q", models.ErrRowParse, raw)
	}
	return odds, nil
}

func parseMoney(raw string) (decimal.Decimal, error) {
	v := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(raw))
	amount, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q", models.ErrRowParse, raw)
	}
	return amount, nil
}

// parsePlacedAt never fails; unreadable values fall back to the import time
func (n *Normalizer) parsePlacedAt(raw string) time.Time {
	if raw == "" {
		return n.now().UTC()
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC()
	}
	for _, layout := range placedAtLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t
		}
	}
	return n.now().UTC()
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

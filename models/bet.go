package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bet is a single recorded wager
type Bet struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID              uuid.UUID        `gorm:"type:uuid;not null;index:idx_bets_user_placed,priority:1" json:"user_id"`
	BetName             string           `gorm:"type:varchar(255);not null" json:"bet_name"`
	Sport               Sport            `gorm:"type:varchar(20);not null" json:"sport"`
	League              *string          `gorm:"type:varchar(100)" json:"league,omitempty"`
	MarketType          MarketType       `gorm:"type:varchar(20);not null" json:"market_type"`
	TeamOrPlayer        *string          `gorm:"type:varchar(255)" json:"team_or_player,omitempty"`
	OddsAmerican        int              `gorm:"not null;check:odds_american <> 0" json:"odds_american"`
	Stake               decimal.Decimal  `gorm:"type:decimal(20,2);not null;check:stake > 0" json:"stake"`
	Units               decimal.Decimal  `gorm:"type:decimal(20,4);not null" json:"units"`
	Status              BetStatus        `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	ResultProfit        *decimal.Decimal `gorm:"type:decimal(20,4)" json:"result_profit"`
	CashoutAmount       *decimal.Decimal `gorm:"type:decimal(20,2)" json:"cashout_amount,omitempty"`
	BookID              *uuid.UUID       `gorm:"type:uuid" json:"book_id,omitempty"`
	EventDate           *time.Time       `gorm:"type:timestamptz" json:"event_date,omitempty"`
	PlacedAt            time.Time        `gorm:"type:timestamptz;not null;index:idx_bets_user_placed,priority:2" json:"placed_at"`
	ClosingOddsAmerican *int             `json:"closing_odds_american,omitempty"`
	Notes               *string          `gorm:"type:text" json:"notes,omitempty"`
	ParlayGroupID       *uuid.UUID       `gorm:"type:uuid" json:"parlay_group_id,omitempty"`
	CreatedAt           time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	Book *Sportsbook `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

// Column bounds of the bets table
const (
	MaxBetNameLength      = 255
	MaxTeamOrPlayerLength = 255
	MaxLeagueLength       = 100
	MaxOddsMagnitude      = 1_000_000
	StakeScale            = 2
)

// MaxStake keeps stake, units and profit inside their numeric columns
var MaxStake = decimal.NewFromInt(1_000_000_000)

// ValidateOdds checks American odds are non-zero and within the stored range
func ValidateOdds(odds int) error {
	if odds == 0 {
		return ErrZeroOdds
	}
	if odds < -MaxOddsMagnitude || odds > MaxOddsMagnitude {
		return ErrOddsOutOfRange
	}
	return nil
}

// ValidateStake checks a stake is positive and storable without rounding
func ValidateStake(stake decimal.Decimal) error {
	if !stake.IsPositive() {
		return ErrNonPositiveStake
	}
	if !stake.Equal(stake.Round(StakeScale)) {
		return ErrStakePrecision
	}
	if stake.GreaterThan(MaxStake) {
		return ErrStakeTooLarge
	}
	return nil
}

// TableName specifies the table name for Bet model
func (*Bet) TableName() string {
	return "bets"
}

// BeforeCreate sets up the model before creation
func (b *Bet) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.PlacedAt.IsZero() {
		b.PlacedAt = time.Now().UTC()
	}
	if b.Status == "" {
		b.Status = BetStatusPending
	}
	return nil
}

// IsSettled reports whether the bet has left Pending
func (b *Bet) IsSettled() bool {
	return b.Status.IsTerminal()
}

// BookName returns the sportsbook name or "Unknown" when the book is not loaded
func (b *Bet) BookName() string {
	if b.Book == nil || b.Book.Name == "" {
		return UnknownBookName
	}
	return b.Book.Name
}

// Profit returns the stored result profit, zero while pending
func (b *Bet) Profit() decimal.Decimal {
	if b.ResultProfit == nil {
		return decimal.Zero
	}
	return *b.ResultProfit
}

// Validate enforces the record-level invariants of a bet
func (b *Bet) Validate() error {
	if strings.TrimSpace(b.BetName) == "" || utf8.RuneCountInString(b.BetName) > MaxBetNameLength {
		return ErrInvalidBetName
	}
	if err := ValidateOdds(b.OddsAmerican); err != nil {
		return err
	}
	if b.ClosingOddsAmerican != nil {
		if err := ValidateOdds(*b.ClosingOddsAmerican); err != nil {
			return err
		}
	}
	if err := ValidateStake(b.Stake); err != nil {
		return err
	}
	if b.League != nil && utf8.RuneCountInString(*b.League) > MaxLeagueLength {
		return ErrInvalidLeague
	}
	if b.TeamOrPlayer != nil && utf8.RuneCountInString(*b.TeamOrPlayer) > MaxTeamOrPlayerLength {
		return ErrInvalidTeamOrPlayer
	}
	if !b.Sport.Valid() {
		return ErrInvalidSport
	}
	if !b.MarketType.Valid() {
		return ErrInvalidMarketType
	}
	if !b.Status.Valid() {
		return ErrInvalidBetStatus
	}
	if b.Status.IsTerminal() != (b.ResultProfit != nil) {
		return ErrInvalidSettlementStatus
	}
	if b.Status == BetStatusCashout && b.CashoutAmount == nil {
		return ErrCashoutAmountRequired
	}
	if b.CashoutAmount != nil && !validCashout(*b.CashoutAmount) {
		return ErrInvalidCashoutAmount
	}
	return nil
}

func validCashout(amount decimal.Decimal) bool {
	return !amount.IsNegative() && amount.Equal(amount.Round(StakeScale)) && !amount.GreaterThan(MaxStake)
}

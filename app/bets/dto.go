package bets

import (
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/models"
	"github.com/shopspring/decimal"
)

const (
	defaultPerPage = 50
	maxPerPage     = 1000
)

// CreateBetRequest represents the request to record a new pending bet
type CreateBetRequest struct {
	BetName             string            `json:"bet_name" binding:"required,max=255"`
	Sport               models.Sport      `json:"sport" binding:"required" swaggertype:"string" enums:"NFL,NBA,MLB,NHL,NCAAF,NCAAB,Soccer,MMA,Other"`
	League              *string           `json:"league,omitempty" binding:"omitempty,max=100"`
	MarketType          models.MarketType `json:"market_type" binding:"required" swaggertype:"string" enums:"ML,Spread,Total,Prop,Parlay,Future,Other"`
	TeamOrPlayer        *string           `json:"team_or_player,omitempty" binding:"omitempty,max=255"`
	OddsAmerican        int               `json:"odds_american"`
	Stake               decimal.Decimal   `json:"stake" swaggertype:"string"`
	BookID              *uuid.UUID        `json:"book_id,omitempty"`
	EventDate           *time.Time        `json:"event_date,omitempty"`
	ClosingOddsAmerican *int              `json:"closing_odds_american,omitempty"`
	Notes               *string           `json:"notes,omitempty" binding:"omitempty,max=2000"`
	ParlayGroupID       *uuid.UUID        `json:"parlay_group_id,omitempty"`
}

// UpdateBetRequest carries a partial update. Status only changes through settlement.
type UpdateBetRequest struct {
	BetName             *string            `json:"bet_name,omitempty" binding:"omitempty,max=255"`
	Sport               *models.Sport      `json:"sport,omitempty" swaggertype:"string"`
	League              *string            `json:"league,omitempty" binding:"omitempty,max=100"`
	MarketType          *models.MarketType `json:"market_type,omitempty" swaggertype:"string"`
	TeamOrPlayer        *string            `json:"team_or_player,omitempty" binding:"omitempty,max=255"`
	OddsAmerican        *int               `json:"odds_american,omitempty"`
	Stake               *decimal.Decimal   `json:"stake,omitempty" swaggertype:"string"`
	BookID              *uuid.UUID         `json:"book_id,omitempty"`
	EventDate           *time.Time         `json:"event_date,omitempty"`
	ClosingOddsAmerican *int               `json:"closing_odds_american,omitempty"`
	Notes               *string            `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

// SettleBetRequest moves a bet to a terminal status
type SettleBetRequest struct {
	Status        models.BetStatus `json:"status" binding:"required" swaggertype:"string" enums:"Won,Lost,Push,Void,Cashout"`
	CashoutAmount *decimal.Decimal `json:"cashout_amount,omitempty" swaggertype:"string"`
}

// BetFilters represents the query string accepted by the list endpoint
type BetFilters struct {
	Status  string `form:"status"`
	Sport   string `form:"sport"`
	Market  string `form:"market"`
	BookID  string `form:"book_id"`
	From    string `form:"from"`
	To      string `form:"to"`
	Search  string `form:"search"`
	Page    int    `form:"page,default=1" binding:"min=1"`
	PerPage int    `form:"per_page,default=50" binding:"min=1,max=1000"`
}

// BetResponse represents the response for bet data
type BetResponse struct {
	ID                  uuid.UUID         `json:"id"`
	BetName             string            `json:"bet_name"`
	Sport               models.Sport      `json:"sport" swaggertype:"string"`
	League              *string           `json:"league,omitempty"`
	MarketType          models.MarketType `json:"market_type" swaggertype:"string"`
	TeamOrPlayer        *string           `json:"team_or_player,omitempty"`
	OddsAmerican        int               `json:"odds_american"`
	Stake               decimal.Decimal   `json:"stake" swaggertype:"string"`
	Units               decimal.Decimal   `json:"units" swaggertype:"string"`
	Status              models.BetStatus  `json:"status" swaggertype:"string"`
	ResultProfit        *decimal.Decimal  `json:"result_profit" swaggertype:"string"`
	CashoutAmount       *decimal.Decimal  `json:"cashout_amount,omitempty" swaggertype:"string"`
	BookID              *uuid.UUID        `json:"book_id,omitempty"`
	BookName            string            `json:"book_name"`
	EventDate           *time.Time        `json:"event_date,omitempty"`
	PlacedAt            time.Time         `json:"placed_at"`
	ClosingOddsAmerican *int              `json:"closing_odds_american,omitempty"`
	Notes               *string           `json:"notes,omitempty"`
	ParlayGroupID       *uuid.UUID        `json:"parlay_group_id,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// BetListResponse is one page of bets
type BetListResponse struct {
	Bets    []BetResponse `json:"bets"`
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}

// ToBetResponse converts a models.Bet to BetResponse
func ToBetResponse(bet *models.Bet) *BetResponse {
	return &BetResponse{
		ID:                  bet.ID,
		BetName:             bet.BetName,
		Sport:               bet.Sport,
		League:              bet.League,
		MarketType:          bet.MarketType,
		TeamOrPlayer:        bet.TeamOrPlayer,
		OddsAmerican:        bet.OddsAmerican,
		Stake:               bet.Stake,
		Units:               bet.Units,
		Status:              bet.Status,
		ResultProfit:        bet.ResultProfit,
		CashoutAmount:       bet.CashoutAmount,
		BookID:              bet.BookID,
		BookName:            bet.BookName(),
		EventDate:           bet.EventDate,
		PlacedAt:            bet.PlacedAt,
		ClosingOddsAmerican: bet.ClosingOddsAmerican,
		Notes:               bet.Notes,
		ParlayGroupID:       bet.ParlayGroupID,
		CreatedAt:           bet.CreatedAt,
		UpdatedAt:           bet.UpdatedAt,
	}
}

// ToBetResponseList converts a slice of models.Bet to a slice of BetResponse
func ToBetResponseList(bets []models.Bet) []BetResponse {
	responses := make([]BetResponse, len(bets))
	for i := range bets {
		responses[i] = *ToBetResponse(&bets[i])
	}
	return responses
}

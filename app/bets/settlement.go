package bets

import (
	"github.com/joefazee/wagerlog/internal/oddsmath"
	"github.com/joefazee/wagerlog/models"
	"github.com/shopspring/decimal"
)

const (
	unitsPrecision  = 4
	profitPrecision = 4
)

// ComputeProfit returns the realized profit of a bet for the given outcome.
// Pending and unknown statuses yield zero; callers settle only terminal statuses.
func ComputeProfit(odds int, stake decimal.Decimal, status models.BetStatus, cashoutAmount *decimal.Decimal) decimal.Decimal {
	switch status {
	case models.BetStatusWon:
		return stake.Mul(oddsmath.AmericanToDecimal(odds).Sub(decimal.NewFromInt(1)))
	case models.BetStatusLost:
		return stake.Neg()
	case models.BetStatusPush, models.BetStatusVoid:
		return decimal.Zero
	case models.BetStatusCashout:
		amount := decimal.Zero
		if cashoutAmount != nil {
			amount = *cashoutAmount
		}
		return amount.Sub(stake)
	default:
		return decimal.Zero
	}
}

// ComputeUnits expresses stake as a multiple of baseUnit, rounded to 4 places.
func ComputeUnits(stake, baseUnit decimal.Decimal) decimal.Decimal {
	if !baseUnit.IsPositive() {
		return decimal.Zero
	}
	return stake.Div(baseUnit).Round(unitsPrecision)
}

// ValidateSettlement checks a settlement request before any profit is computed.
func ValidateSettlement(status models.BetStatus, cashoutAmount *decimal.Decimal) error {
	if !status.IsTerminal() {
		return models.ErrInvalidSettlementStatus
	}
	if status == models.BetStatusCashout && cashoutAmount == nil {
		return models.ErrCashoutAmountRequired
	}
	return nil
}

// ApplySettlement validates and writes status, cashout and profit onto bet.
// The cashout amount is dropped for every status other than Cashout.
func ApplySettlement(bet *models.Bet, status models.BetStatus, cashoutAmount *decimal.Decimal) error {
	if err := ValidateSettlement(status, cashoutAmount); err != nil {
		return err
	}
	if status != models.BetStatusCashout {
		cashoutAmount = nil
	}

	profit := ComputeProfit(bet.OddsAmerican, bet.Stake, status, cashoutAmount).Round(profitPrecision)
	bet.Status = status
	bet.CashoutAmount = cashoutAmount
	bet.ResultProfit = &profit
	return nil
}

// recomputeProfit refreshes result_profit after odds or stake changed on a settled bet.
func recomputeProfit(bet *models.Bet) {
	if !bet.IsSettled() {
		return
	}
	profit := ComputeProfit(bet.OddsAmerican, bet.Stake, bet.Status, bet.CashoutAmount).Round(profitPrecision)
	bet.ResultProfit = &profit
}

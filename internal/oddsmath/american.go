package oddsmath

import "github.com/shopspring/decimal"

// negativePrecision keeps 100/|odds| non-zero across the whole int range
const negativePrecision = 24

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// AmericanToDecimal converts American odds to decimal odds
// American +150 → Decimal 2.50
// American -110 → Decimal 1.909
// Zero odds are never stored, but map to 1 so callers cannot divide by zero.
func AmericanToDecimal(american int) decimal.Decimal {
	switch {
	case american > 0:
		return one.Add(decimal.NewFromInt(int64(american)).Div(hundred))
	case american < 0:
		return one.Add(hundred.DivRound(decimal.NewFromInt(int64(american)).Neg(), negativePrecision))
	default:
		return one
	}
}

// ImpliedProbability converts American odds to the bookmaker's implied win probability
// American +100 → 0.50
// American -200 → 0.667
func ImpliedProbability(american int) decimal.Decimal {
	return one.Div(AmericanToDecimal(american))
}

// DecimalToAmerican converts decimal odds back to American odds
// Decimal 2.50 → American +150
// Decimal 1.50 → American -200
// Inputs at or below 1 have no American equivalent and yield 0.
func DecimalToAmerican(dec decimal.Decimal) int {
	if dec.LessThanOrEqual(one) {
		return 0
	}
	if dec.GreaterThanOrEqual(two) {
		return int(dec.Sub(one).Mul(hundred).Round(0).IntPart())
	}
	return int(hundred.Neg().Div(dec.Sub(one)).Round(0).IntPart())
}

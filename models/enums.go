package models

import "fmt"

// Sport is the closed set of sports a bet can be recorded against
type Sport string

const (
	SportNFL    Sport = "NFL"
	SportNBA    Sport = "NBA"
	SportMLB    Sport = "MLB"
	SportNHL    Sport = "NHL"
	SportNCAAF  Sport = "NCAAF"
	SportNCAAB  Sport = "NCAAB"
	SportSoccer Sport = "Soccer"
	SportMMA    Sport = "MMA"
	SportOther  Sport = "Other"
)

// Sports lists every valid Sport in display order
var Sports = []Sport{
	SportNFL, SportNBA, SportMLB, SportNHL, SportNCAAF,
	SportNCAAB, SportSoccer, SportMMA, SportOther,
}

// Valid reports whether s is a known sport
func (s Sport) Valid() bool {
	for _, v := range Sports {
		if s == v {
			return true
		}
	}
	return false
}

// ParseSport converts a raw value into a Sport
func ParseSport(raw string) (Sport, error) {
	s := Sport(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSport, raw)
	}
	return s, nil
}

// UnmarshalText rejects unknown sports while decoding request bodies
func (s *Sport) UnmarshalText(text []byte) error {
	v, err := ParseSport(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarketType is the closed set of wager markets
type MarketType string

const (
	MarketTypeMoneyline MarketType = "ML"
	MarketTypeSpread    MarketType = "Spread"
	MarketTypeTotal     MarketType = "Total"
	MarketTypeProp      MarketType = "Prop"
	MarketTypeParlay    MarketType = "Parlay"
	MarketTypeFuture    MarketType = "Future"
	MarketTypeOther     MarketType = "Other"
)

// MarketTypes lists every valid MarketType
var MarketTypes = []MarketType{
	MarketTypeMoneyline, MarketTypeSpread, MarketTypeTotal, MarketTypeProp,
	MarketTypeParlay, MarketTypeFuture, MarketTypeOther,
}

// Valid reports whether m is a known market type
func (m MarketType) Valid() bool {
	for _, v := range MarketTypes {
		if m == v {
			return true
		}
	}
	return false
}

// ParseMarketType converts a raw value into a MarketType
func ParseMarketType(raw string) (MarketType, error) {
	m := MarketType(raw)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMarketType, raw)
	}
	return m, nil
}

// UnmarshalText rejects unknown market types while decoding request bodies
func (m *MarketType) UnmarshalText(text []byte) error {
	v, err := ParseMarketType(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// BetStatus is the outcome lifecycle of a bet
type BetStatus string

const (
	BetStatusPending BetStatus = "Pending"
	BetStatusWon     BetStatus = "Won"
	BetStatusLost    BetStatus = "Lost"
	BetStatusPush    BetStatus = "Push"
	BetStatusVoid    BetStatus = "Void"
	BetStatusCashout BetStatus = "Cashout"
)

// BetStatuses lists every valid BetStatus
var BetStatuses = []BetStatus{
	BetStatusPending, BetStatusWon, BetStatusLost,
	BetStatusPush, BetStatusVoid, BetStatusCashout,
}

// Valid reports whether s is a known status
func (s BetStatus) Valid() bool {
	for _, v := range BetStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a bet in this status carries a result profit
func (s BetStatus) IsTerminal() bool {
	return s.Valid() && s != BetStatusPending
}

// IsDecided reports whether the status counts toward ROI stake and hit rate
func (s BetStatus) IsDecided() bool {
	return s == BetStatusWon || s == BetStatusLost
}

// ParseBetStatus converts a raw value into a BetStatus
func ParseBetStatus(raw string) (BetStatus, error) {
	s := BetStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidBetStatus, raw)
	}
	return s, nil
}

// UnmarshalText rejects unknown statuses while decoding request bodies
func (s *BetStatus) UnmarshalText(text []byte) error {
	v, err := ParseBetStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

package imports

import (
	"strings"

	"github.com/joefazee/wagerlog/models"
)

// Field is a canonical bet attribute resolved from an external row
type Field string

const (
	FieldBetName   Field = "bet_name"
	FieldSport     Field = "sport"
	FieldLeague    Field = "league"
	FieldMarket    Field = "market_type"
	FieldSelection Field = "team_or_player"
	FieldOdds      Field = "odds_american"
	FieldStake     Field = "stake"
	FieldStatus    Field = "status"
	FieldPlacedAt  Field = "placed_at"
	FieldNotes     Field = "notes"
	FieldCashout   Field = "cashout_amount"
)

// ColumnRule lists the source columns accepted for a field, highest priority first.
// Fallback is used when none of them carries a value.
type ColumnRule struct {
	Columns  []string
	Fallback string
}

// Profile is the data that teaches the normalizer one export format
type Profile struct {
	Name          string
	Columns       map[Field]ColumnRule
	MarketAliases map[string]string
	StatusAliases map[string]string
	SportAliases  map[string]string
}

var genericColumns = map[Field]ColumnRule{
	FieldBetName:   {Columns: []string{"Event", "Game", "Bet Name", "Description"}, Fallback: "Imported Bet"},
	FieldSport:     {Columns: []string{"Sport"}, Fallback: string(models.SportOther)},
	FieldLeague:    {Columns: []string{"League"}},
	FieldMarket:    {Columns: []string{"Market", "Bet Type"}, Fallback: string(models.MarketTypeMoneyline)},
	FieldSelection: {Columns: []string{"Selection", "Team", "Pick"}},
	FieldOdds:      {Columns: []string{"Odds", "American Odds", "Price"}, Fallback: "0"},
	FieldStake:     {Columns: []string{"Stake", "Amount", "Wager"}, Fallback: "0"},
	FieldStatus:    {Columns: []string{"Result", "Status"}, Fallback: string(models.BetStatusPending)},
	FieldPlacedAt:  {Columns: []string{"Placed", "Date", "Time"}},
	FieldNotes:     {Columns: []string{"Notes"}},
	FieldCashout:   {Columns: []string{"Cashout", "Cashout Amount", "Cash Out"}},
}

var genericMarketAliases = map[string]string{
	"Moneyline":    string(models.MarketTypeMoneyline),
	"Money Line":   string(models.MarketTypeMoneyline),
	"Point Spread": string(models.MarketTypeSpread),
	"Total":        string(models.MarketTypeTotal),
	"Over/Under":   string(models.MarketTypeTotal),
	"Prop":         string(models.MarketTypeProp),
	"Parlay":       string(models.MarketTypeParlay),
}

var genericStatusAliases = map[string]string{
	"Win":        string(models.BetStatusWon),
	"W":          string(models.BetStatusWon),
	"Loss":       string(models.BetStatusLost),
	"L":          string(models.BetStatusLost),
	"Push":       string(models.BetStatusPush),
	"Void":       string(models.BetStatusVoid),
	"Pending":    string(models.BetStatusPending),
	"Open":       string(models.BetStatusPending),
	"Cashout":    string(models.BetStatusCashout),
	"Cashed Out": string(models.BetStatusCashout),
	"Cash Out":   string(models.BetStatusCashout),
}

var genericSportAliases = map[string]string{
	"CFB": string(models.SportNCAAF),
	"CBB": string(models.SportNCAAB),
	"UFC": string(models.SportMMA),
}

func genericProfile(name string) *Profile {
	return &Profile{
		Name:          name,
		Columns:       genericColumns,
		MarketAliases: genericMarketAliases,
		StatusAliases: genericStatusAliases,
		SportAliases:  genericSportAliases,
	}
}

// DefaultProvider is used when the caller names none
const DefaultProvider = "auto"

var profiles = map[string]*Profile{
	DefaultProvider: genericProfile(DefaultProvider),
	"dk":            genericProfile("dk"),
	"fd":            genericProfile("fd"),
	"mgm":           genericProfile("mgm"),
}

// LookupProfile returns the registered profile for provider
func LookupProfile(provider string) (*Profile, error) {
	name := strings.ToLower(strings.TrimSpace(provider))
	if name == "" {
		name = DefaultProvider
	}
	p, ok := profiles[name]
	if !ok {
		return nil, models.ErrUnknownImportProvider
	}
	return p, nil
}

// resolve returns the first non-empty value among the rule's columns, or the fallback
func (r ColumnRule) resolve(row RawRow) string {
	for _, col := range r.Columns {
		if v := strings.TrimSpace(row[col]); v != "" {
			return v
		}
	}
	return r.Fallback
}

func alias(table map[string]string, value string) string {
	if mapped, ok := table[value]; ok {
		return mapped
	}
	return value
}

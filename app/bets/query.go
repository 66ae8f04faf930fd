package bets

import (
	"strings"

	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/internal/daterange"
	"github.com/joefazee/wagerlog/models"
)

// ListQuery is the typed form of BetFilters
type ListQuery struct {
	Status  *models.BetStatus
	Sport   *models.Sport
	Market  *models.MarketType
	BookID  *uuid.UUID
	Range   daterange.Range
	Search  string
	Page    int
	PerPage int
}

// Offset returns the row offset of the requested page
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// ToQuery validates the raw filters
func (f *BetFilters) ToQuery() (ListQuery, error) {
	q := ListQuery{
		Search:  strings.TrimSpace(f.Search),
		Page:    f.Page,
		PerPage: f.PerPage,
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}
	if q.PerPage > maxPerPage {
		q.PerPage = maxPerPage
	}

	if f.Status != "" {
		status, err := models.ParseBetStatus(f.Status)
		if err != nil {
			return ListQuery{}, err
		}
		q.Status = &status
	}
	if f.Sport != "" {
		sport, err := models.ParseSport(f.Sport)
		if err != nil {
			return ListQuery{}, err
		}
		q.Sport = &sport
	}
	if f.Market != "" {
		market, err := models.ParseMarketType(f.Market)
		if err != nil {
			return ListQuery{}, err
		}
		q.Market = &market
	}
	if f.BookID != "" {
		id, err := uuid.Parse(f.BookID)
		if err != nil {
			return ListQuery{}, models.ErrUnknownSportsbook
		}
		q.BookID = &id
	}

	r, err := daterange.Parse(f.From, f.To)
	if err != nil {
		return ListQuery{}, err
	}
	q.Range = r
	return q, nil
}

package analytics

import (
	"time"

	"github.com/joefazee/wagerlog/internal/validator"
	"github.com/joefazee/wagerlog/models"
)

const monthLayout = "2006-01"

// Month is a UTC calendar month
type Month struct {
	start time.Time
}

// ParseMonth reads a YYYY-MM value
func ParseMonth(s string) (Month, error) {
	if !validator.Matches(s, validator.MonthRgx) {
		return Month{}, models.ErrInvalidMonth
	}
	t, err := time.ParseInLocation(monthLayout, s, time.UTC)
	if err != nil {
		return Month{}, models.ErrInvalidMonth
	}
	return Month{start: t}, nil
}

// MonthOf returns the UTC month containing t
func MonthOf(t time.Time) Month {
	t = t.UTC()
	return Month{start: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)}
}

// Start is the first instant of the month
func (m Month) Start() time.Time {
	return m.start
}

// End is the first instant of the following month
func (m Month) End() time.Time {
	return m.start.AddDate(0, 1, 0)
}

func (m Month) String() string {
	return m.start.Format(monthLayout)
}

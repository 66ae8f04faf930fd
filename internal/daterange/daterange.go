// Package daterange parses the inclusive from/to filters accepted by list and report endpoints.
package daterange

import (
	"strings"
	"time"

	"github.com/joefazee/wagerlog/models"
)

const dateOnly = "2006-01-02"

// Range is an inclusive interval. A nil bound is open.
type Range struct {
	From *time.Time
	To   *time.Time
}

// Parse reads optional from/to values. Date only values are taken in UTC,
// and a date only upper bound covers the whole day.
func Parse(from, to string) (Range, error) {
	var r Range

	if v := strings.TrimSpace(from); v != "" {
		t, _, err := parseBound(v)
		if err != nil {
			return Range{}, err
		}
		r.From = &t
	}

	if v := strings.TrimSpace(to); v != "" {
		t, isDate, err := parseBound(v)
		if err != nil {
			return Range{}, err
		}
		if isDate {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		r.To = &t
	}

	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return Range{}, models.ErrInvalidDateRange
	}
	return r, nil
}

func parseBound(v string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t.UTC(), false, nil
	}
	if t, err := time.ParseInLocation(dateOnly, v, time.UTC); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, models.ErrInvalidDate
}

// Contains reports whether t falls inside the range
func (r Range) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// IsZero reports whether neither bound is set
func (r Range) IsZero() bool {
	return r.From == nil && r.To == nil
}

package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// HTMLStripperer removes markup from user supplied text
type HTMLStripperer interface {
	StripHTML(s string) string
}

type HTMLStripper struct {
	bm *bluemonday.Policy
}

// NewHTMLStripper return a new instance of blue monday policy
func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{
		bm: bluemonday.StrictPolicy(),
	}
}

// StripHTML drops every tag and trims surrounding whitespace
func (hs *HTMLStripper) StripHTML(s string) string {
	return strings.TrimSpace(hs.bm.Sanitize(s))
}

// StripHTMLPtr applies StripHTML to an optional value and returns nil for blank results
func StripHTMLPtr(s HTMLStripperer, value *string) *string {
	if value == nil {
		return nil
	}
	clean := s.StripHTML(*value)
	if clean == "" {
		return nil
	}
	return &clean
}

package imports

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UploadForm carries the non-file fields of a CSV upload
type UploadForm struct {
	Provider string `form:"provider"`
	Commit   bool   `form:"commit"`
}

// PreviewRow is an accepted row with the profit it would settle at
type PreviewRow struct {
	ValidRow
	ResultProfit *decimal.Decimal `json:"result_profit" swaggertype:"string"`
}

// ImportResponse represents the outcome of a preview or commit
type ImportResponse struct {
	Provider    string        `json:"provider"`
	Committed   bool          `json:"committed"`
	Imported    int           `json:"imported"`
	ValidRows   []PreviewRow  `json:"valid_rows"`
	InvalidRows []RejectedRow `json:"invalid_rows"`
}

// Message summarizes the response for the envelope
func (r *ImportResponse) Message() string {
	if r.Committed {
		return fmt.Sprintf("Imported %d bets successfully", r.Imported)
	}
	return fmt.Sprintf("Preview: %d valid, %d invalid rows", len(r.ValidRows), len(r.InvalidRows))
}

func newImportResponse(provider string, p Partition) *ImportResponse {
	resp := &ImportResponse{
		Provider:    provider,
		ValidRows:   make([]PreviewRow, 0, len(p.Valid)),
		InvalidRows: make([]RejectedRow, 0, len(p.Invalid)),
	}
	for _, row := range p.Valid {
		resp.ValidRows = append(resp.ValidRows, PreviewRow{ValidRow: row, ResultProfit: previewProfit(row.CanonicalRow)})
	}
	resp.InvalidRows = append(resp.InvalidRows, p.Invalid...)
	return resp
}

package analytics

// ReportFilters is the optional placed_at window accepted by every report
type ReportFilters struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// BreakdownFilters adds the grouping axis
type BreakdownFilters struct {
	ReportFilters
	Dim string `form:"dim" binding:"required"`
}

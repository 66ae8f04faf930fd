package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/wagerlog/app/api"
	"github.com/joefazee/wagerlog/models"
)

// Handler handles HTTP requests for analytics reports
type Handler struct {
	service Service
}

// NewHandler creates a new analytics handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// GetKPIs godoc
// @Summary KPI summary
// @Description Profit, units, ROI, hit rate and counts over the caller's bets
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "Placed on or after (YYYY-MM-DD or RFC 3339)"
// @Param to query string false "Placed on or before (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} api.Response{data=KPISummary}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/analytics/kpis [get]
func (h *Handler) GetKPIs(c *gin.Context) {
	var filters ReportFilters
	q, ok := bindQuery(c, &filters, &filters)
	if !ok {
		return
	}

	summary, err := h.service.KPIs(c.Request.Context(), q)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to compute KPIs")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "KPIs retrieved successfully", summary)
}

// GetBreakdown godoc
// @Summary Breakdown by dimension
// @Description Profit, stake, ROI and count per sportsbook, sport or market, sorted by profit
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param dim query string true "Dimension" Enums(book, sport, market)
// @Param from query string false "Placed on or after (YYYY-MM-DD or RFC 3339)"
// @Param to query string false "Placed on or before (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} api.Response{data=[]BreakdownEntry}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/analytics/breakdown [get]
func (h *Handler) GetBreakdown(c *gin.Context) {
	var filters BreakdownFilters
	q, ok := bindQuery(c, &filters, &filters.ReportFilters)
	if !ok {
		return
	}

	dim, err := ParseDimension(filters.Dim)
	if err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	entries, err := h.service.Breakdown(c.Request.Context(), q, dim)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to compute breakdown")
		return
	}

	api.ListResponse(c, "Breakdown retrieved successfully", entries, len(entries))
}

// GetBankroll godoc
// @Summary Bankroll curve
// @Description Cumulative profit of settled bets in placed order, offset by the starting bankroll
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "Placed on or after (YYYY-MM-DD or RFC 3339)"
// @Param to query string false "Placed on or before (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} api.Response{data=[]BankrollPoint}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/analytics/bankroll [get]
func (h *Handler) GetBankroll(c *gin.Context) {
	var filters ReportFilters
	q, ok := bindQuery(c, &filters, &filters)
	if !ok {
		return
	}

	points, err := h.service.Bankroll(c.Request.Context(), q)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to compute bankroll")
		return
	}

	api.ListResponse(c, "Bankroll retrieved successfully", points, len(points))
}

// bindQuery binds target from the query string and builds the owner's Query from window
func bindQuery(c *gin.Context, target interface{}, window *ReportFilters) (Query, bool) {
	userID := api.CurrentUserID(c)
	if userID == uuid.Nil {
		api.UnauthorizedResponse(c)
		return Query{}, false
	}

	if err := c.ShouldBindQuery(target); err != nil {
		api.ValidationErrorResponse(c, api.FormatValidationErrors(err))
		return Query{}, false
	}

	q, err := NewQuery(userID, window.From, window.To)
	if err != nil {
		if models.IsValidationError(err) {
			api.ValidationErrorResponse(c, err.Error())
		} else {
			api.InternalErrorResponse(c, "Failed to parse date range")
		}
		return Query{}, false
	}
	return q, true
}

package bets

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/wagerlog/app/api"
	"github.com/joefazee/wagerlog/models"
)

// Handler handles HTTP requests for bets
type Handler struct {
	service Service
}

// NewHandler creates a new bet handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// CreateBet godoc
// @Summary Record a bet
// @Description Record a new pending bet. Units are derived from the caller's base unit.
// @Tags bets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBetRequest true "Bet creation request"
// @Success 201 {object} api.Response{data=BetResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bets [post]
func (h *Handler) CreateBet(c *gin.Context) {
	userID := api.CurrentUserID(c)
	if userID == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	var req CreateBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	bet, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Failed to create bet")
		return
	}

	api.CreatedResponse(c, "Bet created successfully", bet)
}

// ListBets godoc
// @Summary List my bets
// @Description Get a paginated list of the caller's bets, newest first
// @Tags bets
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param sport query string false "Filter by sport"
// @Param market query string false "Filter by market type"
// @Param book_id query string false "Filter by sportsbook ID"
// @Param from query string false "Placed on or after (YYYY-MM-DD or RFC 3339)"
// @Param to query string false "Placed on or before (YYYY-MM-DD or RFC 3339)"
// @Param search query string false "Case-insensitive match on name and selection"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(50)
// @Success 200 {object} api.Response{data=[]BetResponse,meta=api.PaginationMeta}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bets [get]
func (h *Handler) ListBets(c *gin.Context) {
	userID := api.CurrentUserID(c)
	if userID == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	var filters BetFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		api.ValidationErrorResponse(c, api.FormatValidationErrors(err))
		return
	}

	result, err := h.service.List(c.Request.Context(), userID, &filters)
	if err != nil {
		respondError(c, err, "Failed to fetch bets")
		return
	}

	totalPages := 0
	if result.PerPage > 0 {
		totalPages = int((result.Total + int64(result.PerPage) - 1) / int64(result.PerPage))
	}
	meta := api.PaginationMeta{
		Page:       result.Page,
		PerPage:    result.PerPage,
		Total:      result.Total,
		TotalPages: totalPages,
		HasNext:    int64(result.Page*result.PerPage) < result.Total,
		HasPrev:    result.Page > 1,
	}

	api.PaginatedResponse(c, "Bets retrieved successfully", result.Bets, meta)
}

// GetBet godoc
// @Summary Get bet by ID
// @Tags bets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bet ID"
// @Success 200 {object} api.Response{data=BetResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bets/{id} [get]
func (h *Handler) GetBet(c *gin.Context) {
	userID, betID, ok := identify(c)
	if !ok {
		return
	}

	bet, err := h.service.Get(c.Request.Context(), userID, betID)
	if err != nil {
		respondError(c, err, "Failed to fetch bet")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Bet retrieved successfully", bet)
}

// UpdateBet godoc
// @Summary Update a bet
// @Description Partially update a bet. A stake change rederives units; odds or stake changes on a settled bet recompute its profit.
// @Tags bets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bet ID"
// @Param request body UpdateBetRequest true "Bet update request"
// @Success 200 {object} api.Response{data=BetResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bets/{id} [patch]
func (h *Handler) UpdateBet(c *gin.Context) {
	userID, betID, ok := identify(c)
	if !ok {
		return
	}

	var req UpdateBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	bet, err := h.service.Update(c.Request.Context(), userID, betID, &req)
	if err != nil {
		respondError(c, err, "Failed to update bet")
		return
	}

	api.UpdatedResponse(c, "Bet updated successfully", bet)
}

// SettleBet godoc
// @Summary Settle a bet
// @Description Set a terminal status and compute the realized profit. Re-settling overwrites the previous result.
// @Tags bets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bet ID"
// @Param request body SettleBetRequest true "Settlement request"
// @Success 200 {object} api.Response{data=BetResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bets/{id}/settle [post]
func (h *Handler) SettleBet(c *gin.Context) {
	userID, betID, ok := identify(c)
	if !ok {
		return
	}

	var req SettleBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	bet, err := h.service.Settle(c.Request.Context(), userID, betID, &req)
	if err != nil {
		respondError(c, err, "Failed to settle bet")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Bet settled successfully", bet)
}

// DeleteBet godoc
// @Summary Delete a bet
// @Tags bets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bet ID"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bets/{id} [delete]
func (h *Handler) DeleteBet(c *gin.Context) {
	userID, betID, ok := identify(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, betID); err != nil {
		respondError(c, err, "Failed to delete bet")
		return
	}

	api.DeletedResponse(c, "Bet deleted successfully")
}

func identify(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID := api.CurrentUserID(c)
	if userID == uuid.Nil {
		api.UnauthorizedResponse(c)
		return uuid.Nil, uuid.Nil, false
	}
	betID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ValidationErrorResponse(c, "Invalid bet ID format")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, betID, true
}

func bindingError(c *gin.Context, err error) {
	if models.IsValidationError(err) {
		api.ValidationErrorResponse(c, err.Error())
		return
	}
	api.ValidationErrorResponse(c, api.FormatValidationErrors(err))
}

func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case models.IsValidationError(err):
		api.ValidationErrorResponse(c, err.Error())
	case errors.Is(err, models.ErrBaseUnitNotConfigured):
		api.PreconditionFailedResponse(c, err.Error())
	case errors.Is(err, models.ErrRecordNotFound):
		api.NotFoundResponse(c, "Bet")
	default:
		_ = c.Error(err)
		api.InternalErrorResponse(c, fallback)
	}
}

package settings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/wagerlog/app/api"
	"github.com/joefazee/wagerlog/models"
)

// Handler handles HTTP requests for user settings
type Handler struct {
	service Service
}

// NewHandler creates a new settings handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// GetSettings godoc
// @Summary Get my settings
// @Description Get the caller's base unit and default sportsbook
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=SettingsResponse}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	userID := api.CurrentUserID(c)
	if userID == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	settings, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Settings")
			return
		}
		api.InternalErrorResponse(c, "Failed to fetch settings")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Settings retrieved successfully", settings)
}

// UpdateSettings godoc
// @Summary Update my settings
// @Description Create or update the caller's base unit and default sportsbook
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSettingsRequest true "Settings update request"
// @Success 200 {object} api.Response{data=SettingsResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/settings [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	userID := api.CurrentUserID(c)
	if userID == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, api.FormatValidationErrors(err))
		return
	}

	settings, err := h.service.Update(c.Request.Context(), userID, &req)
	if err != nil {
		if models.IsValidationError(err) {
			api.ValidationErrorResponse(c, err.Error())
			return
		}
		api.InternalErrorResponse(c, "Failed to update settings")
		return
	}

	api.UpdatedResponse(c, "Settings updated successfully", settings)
}

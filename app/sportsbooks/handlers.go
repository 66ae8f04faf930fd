package sportsbooks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/wagerlog/app/api"
	"github.com/joefazee/wagerlog/models"
)

// Handler handles HTTP requests for sportsbooks
type Handler struct {
	service Service
}

// NewHandler creates a new sportsbook handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// ListSportsbooks godoc
// @Summary List sportsbooks
// @Description Get the global sportsbook catalog plus the caller's private entries
// @Tags sportsbooks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=[]SportsbookResponse}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/sportsbooks [get]
func (h *Handler) ListSportsbooks(c *gin.Context) {
	userID := api.CurrentUserID(c)
	if userID == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	books, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch sportsbooks")
		return
	}

	api.ListResponse(c, "Sportsbooks retrieved successfully", books, len(books))
}

// GetSportsbook godoc
// @Summary Get sportsbook by ID
// @Tags sportsbooks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sportsbook ID"
// @Success 200 {object} api.Response{data=SportsbookResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/sportsbooks/{id} [get]
func (h *Handler) GetSportsbook(c *gin.Context) {
	userID := api.CurrentUserID(c)
	if userID == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ValidationErrorResponse(c, "Invalid sportsbook ID format")
		return
	}

	book, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Sportsbook")
			return
		}
		api.InternalErrorResponse(c, "Failed to fetch sportsbook")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Sportsbook retrieved successfully", book)
}

// CreateSportsbook godoc
// @Summary Create a private sportsbook
// @Tags sportsbooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSportsbookRequest true "Sportsbook creation request"
// @Success 201 {object} api.Response{data=SportsbookResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/sportsbooks [post]
func (h *Handler) CreateSportsbook(c *gin.Context) {
	userID := api.CurrentUserID(c)
	if userID == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	var req CreateSportsbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, api.FormatValidationErrors(err))
		return
	}

	book, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if models.IsValidationError(err) {
			api.ValidationErrorResponse(c, err.Error())
			return
		}
		api.InternalErrorResponse(c, "Failed to create sportsbook")
		return
	}

	api.CreatedResponse(c, "Sportsbook created successfully", book)
}

package imports

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/joefazee/wagerlog/app/api"
	"github.com/joefazee/wagerlog/models"
)

// Handler handles HTTP requests for CSV imports
type Handler struct {
	service  Service
	maxBytes int64
}

// NewHandler creates a new import handler. maxBytes of zero disables the size cap.
func NewHandler(service Service, maxBytes int64) *Handler {
	return &Handler{
		service:  service,
		maxBytes: maxBytes,
	}
}

// ImportCSV godoc
// @Summary Import bets from a CSV export
// @Description Preview or commit a sportsbook CSV export. Rows that cannot be read are returned with a reason and never abort the batch.
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV export"
// @Param provider formData string false "Provider profile" Enums(auto, dk, fd, mgm) default(auto)
// @Param commit formData bool false "Store valid rows instead of previewing" default(false)
// @Success 200 {object} api.Response{data=ImportResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/imports/csv [post]
func (h *Handler) ImportCSV(c *gin.Context) {
	userID := api.CurrentUserID(c)
	if userID == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	var form UploadForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		api.ValidationErrorResponse(c, api.FormatValidationErrors(err))
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		api.ValidationErrorResponse(c, "file is required")
		return
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		api.ValidationErrorResponse(c, models.ErrInvalidImportFile.Error())
		return
	}
	if h.maxBytes > 0 && header.Size > h.maxBytes {
		api.ValidationErrorResponse(c, models.ErrImportTooLarge.Error())
		return
	}

	file, err := header.Open()
	if err != nil {
		_ = c.Error(err)
		api.InternalErrorResponse(c, "Failed to read import file")
		return
	}
	defer file.Close()

	var resp *ImportResponse
	if form.Commit {
		resp, err = h.service.Commit(c.Request.Context(), userID, form.Provider, file)
	} else {
		resp, err = h.service.Preview(c.Request.Context(), userID, form.Provider, file)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, resp.Message(), resp)
}

func respondError(c *gin.Context, err error) {
	switch {
	case models.IsValidationError(err):
		api.ValidationErrorResponse(c, err.Error())
	case errors.Is(err, models.ErrBaseUnitNotConfigured):
		api.PreconditionFailedResponse(c, err.Error())
	default:
		_ = c.Error(err)
		api.InternalErrorResponse(c, "Failed to import bets")
	}
}

package groups

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/wagerlog/app/api"
	"github.com/joefazee/wagerlog/models"
)

// Handler handles HTTP requests for groups
type Handler struct {
	service Service
}

// NewHandler creates a new group handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// CreateGroup godoc
// @Summary Create a group
// @Description Start a group. The caller becomes its owner and first member.
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGroupRequest true "Group creation request"
// @Success 201 {object} api.Response{data=GroupResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/groups [post]
func (h *Handler) CreateGroup(c *gin.Context) {
	userID := api.CurrentUserID(c)
	if userID == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, api.FormatValidationErrors(err))
		return
	}

	group, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Failed to create group")
		return
	}

	api.CreatedResponse(c, "Group created successfully", group)
}

// JoinGroup godoc
// @Summary Join a group
// @Description Join the group behind an invite code
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body JoinGroupRequest true "Invite code"
// @Success 200 {object} api.Response{data=GroupResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/groups/join [post]
func (h *Handler) JoinGroup(c *gin.Context) {
	userID := api.CurrentUserID(c)
	if userID == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	var req JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, api.FormatValidationErrors(err))
		return
	}

	group, err := h.service.Join(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Failed to join group")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Joined group successfully", group)
}

// ListGroups godoc
// @Summary List my groups
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=[]GroupResponse,meta=api.ListMeta}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/groups [get]
func (h *Handler) ListGroups(c *gin.Context) {
	userID := api.CurrentUserID(c)
	if userID == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	groups, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to fetch groups")
		return
	}

	api.ListResponse(c, "Groups retrieved successfully", groups, len(groups))
}

// GetGroup godoc
// @Summary Get group detail
// @Description Get a group and its members. Members only.
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {object} api.Response{data=GroupDetailResponse}
// @Failure 403 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/groups/{id} [get]
func (h *Handler) GetGroup(c *gin.Context) {
	userID, groupID, ok := identify(c)
	if !ok {
		return
	}

	group, err := h.service.Get(c.Request.Context(), userID, groupID)
	if err != nil {
		respondError(c, err, "Failed to fetch group")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Group retrieved successfully", group)
}

// LeaveGroup godoc
// @Summary Leave a group
// @Description Leave a group. When the owner leaves the group is deleted.
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {object} api.Response
// @Failure 403 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/groups/{id} [delete]
func (h *Handler) LeaveGroup(c *gin.Context) {
	userID, groupID, ok := identify(c)
	if !ok {
		return
	}

	if err := h.service.Leave(c.Request.Context(), userID, groupID); err != nil {
		respondError(c, err, "Failed to leave group")
		return
	}

	api.DeletedResponse(c, "Left group successfully")
}

// GetLeaderboard godoc
// @Summary Group leaderboard
// @Description Rank members by ROI over one calendar month
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param month query string false "Month as YYYY-MM, defaults to the current UTC month"
// @Success 200 {object} api.Response{data=LeaderboardResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 403 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/groups/{id}/leaderboard [get]
func (h *Handler) GetLeaderboard(c *gin.Context) {
	userID, groupID, ok := identify(c)
	if !ok {
		return
	}

	var filters LeaderboardFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		api.ValidationErrorResponse(c, api.FormatValidationErrors(err))
		return
	}

	board, err := h.service.Leaderboard(c.Request.Context(), userID, groupID, filters.Month)
	if err != nil {
		respondError(c, err, "Failed to compute leaderboard")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Leaderboard retrieved successfully", board)
}

func identify(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID := api.CurrentUserID(c)
	if userID == uuid.Nil {
		api.UnauthorizedResponse(c)
		return uuid.Nil, uuid.Nil, false
	}
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ValidationErrorResponse(c, "Invalid group ID format")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, groupID, true
}

func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case models.IsValidationError(err):
		api.ValidationErrorResponse(c, err.Error())
	case errors.Is(err, models.ErrNotGroupMember):
		api.ForbiddenResponse(c, err.Error())
	case errors.Is(err, models.ErrAlreadyGroupMember):
		api.ConflictResponse(c, err.Error())
	case errors.Is(err, models.ErrRecordNotFound):
		api.NotFoundResponse(c, "Group")
	default:
		_ = c.Error(err)
		api.InternalErrorResponse(c, fallback)
	}
}

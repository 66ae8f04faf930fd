package groups

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/wagerlog/app/analytics"
	"github.com/joefazee/wagerlog/app/bets"
	"github.com/joefazee/wagerlog/internal/deps"
)

const (
	GroupRepoKey = "group_repository"
)

// MountAuthenticated mounts authenticated group routes
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	groupsGroup := r.Group("/groups")
	groupsGroup.POST("", handler.CreateGroup)
	groupsGroup.GET("", handler.ListGroups)
	groupsGroup.POST("/join", handler.JoinGroup)
	groupsGroup.GET("/:id", handler.GetGroup)
	groupsGroup.DELETE("/:id", handler.LeaveGroup)
	groupsGroup.GET("/:id/leaderboard", handler.GetLeaderboard)
}

// InitRepositories initializes and registers repositories for this module
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(GroupRepoKey, repo)
	container.RegisterService(bets.LeaderboardInvalidatorKey, NewLeaderboardInvalidator(repo, container.Cache, container.Logger))
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	repo := container.GetRepository(GroupRepoKey).(Repository)
	bets := container.GetRepository(analytics.AnalyticsRepoKey).(analytics.Repository)

	service := NewService(
		repo,
		bets,
		container.Sanitizer,
		container.Cache,
		container.Config.LeaderboardTTL,
		container.Metrics,
		container.Logger,
	)
	return NewHandler(service)
}

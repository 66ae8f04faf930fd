package imports

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/wagerlog/app/bets"
	"github.com/joefazee/wagerlog/app/settings"
	"github.com/joefazee/wagerlog/internal/deps"
)

// MountAuthenticated mounts authenticated import routes
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	importsGroup := r.Group("/imports")
	importsGroup.POST("/csv", handler.ImportCSV)
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	betRepo := container.GetRepository(bets.BetRepoKey).(bets.Repository)
	settingsRepo := container.GetRepository(settings.SettingsRepoKey).(settings.Repository)
	leaderboards, _ := container.GetService(bets.LeaderboardInvalidatorKey).(bets.LeaderboardInvalidator)

	service := NewService(
		betRepo,
		settingsRepo,
		leaderboards,
		container.Sanitizer,
		container.Config.ImportMaxRows,
		container.Metrics,
		container.Logger,
	)
	return NewHandler(service, container.Config.ImportMaxFileBytes)
}

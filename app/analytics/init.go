package analytics

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/wagerlog/app/settings"
	"github.com/joefazee/wagerlog/internal/deps"
)

const (
	AnalyticsRepoKey = "analytics_repository"
)

// MountAuthenticated mounts authenticated analytics routes
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	analyticsGroup := r.Group("/analytics")
	analyticsGroup.GET("/kpis", handler.GetKPIs)
	analyticsGroup.GET("/breakdown", handler.GetBreakdown)
	analyticsGroup.GET("/bankroll", handler.GetBankroll)
}

// InitRepositories initializes and registers repositories for this module
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(AnalyticsRepoKey, repo)
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	repo := container.GetRepository(AnalyticsRepoKey).(Repository)
	settingsRepo := container.GetRepository(settings.SettingsRepoKey).(settings.Repository)

	service := NewService(repo, settingsRepo)
	return NewHandler(service)
}

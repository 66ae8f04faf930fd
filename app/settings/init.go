package settings

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/wagerlog/app/sportsbooks"
	"github.com/joefazee/wagerlog/internal/deps"
)

const (
	SettingsRepoKey = "settings_repository"
)

// MountAuthenticated mounts authenticated settings routes
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	group := r.Group("/settings")
	group.GET("", handler.GetSettings)
	group.PUT("", handler.UpdateSettings)
}

// InitRepositories initializes and registers repositories for this module
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(SettingsRepoKey, repo)
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	repo := container.GetRepository(SettingsRepoKey).(Repository)
	books := container.GetRepository(sportsbooks.SportsbookRepoKey).(sportsbooks.Repository)
	return NewHandler(NewService(repo, books))
}

package sportsbooks

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/wagerlog/internal/deps"
)

const (
	SportsbookRepoKey = "sportsbook_repository"
)

// MountAuthenticated mounts authenticated sportsbook routes
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	books := r.Group("/sportsbooks")
	books.GET("", handler.ListSportsbooks)
	books.POST("", handler.CreateSportsbook)
	books.GET("/:id", handler.GetSportsbook)
}

// InitRepositories initializes and registers repositories for this module
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(SportsbookRepoKey, repo)
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	repo := container.GetRepository(SportsbookRepoKey).(Repository)
	return NewHandler(NewService(repo, container.Sanitizer))
}

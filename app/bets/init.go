package bets

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/wagerlog/app/settings"
	"github.com/joefazee/wagerlog/app/sportsbooks"
	"github.com/joefazee/wagerlog/internal/deps"
)

const (
	BetRepoKey                = "bet_repository"
	LeaderboardInvalidatorKey = "leaderboard_invalidator"
)

// MountAuthenticated mounts authenticated bet routes
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	betsGroup := r.Group("/bets")
	betsGroup.POST("", handler.CreateBet)
	betsGroup.GET("", handler.ListBets)
	betsGroup.GET("/:id", handler.GetBet)
	betsGroup.PATCH("/:id", handler.UpdateBet)
	betsGroup.DELETE("/:id", handler.DeleteBet)
	betsGroup.POST("/:id/settle", handler.SettleBet)
}

// InitRepositories initializes and registers repositories for this module
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(BetRepoKey, repo)
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	repo := container.GetRepository(BetRepoKey).(Repository)
	settingsRepo := container.GetRepository(settings.SettingsRepoKey).(settings.Repository)
	books := container.GetRepository(sportsbooks.SportsbookRepoKey).(sportsbooks.Repository)

	leaderboards, _ := container.GetService(LeaderboardInvalidatorKey).(LeaderboardInvalidator)

	service := NewService(repo, settingsRepo, books, leaderboards, container.Sanitizer, container.Metrics, container.Logger)
	return NewHandler(service)
}

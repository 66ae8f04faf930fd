package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/joefazee/wagerlog/app"
	"github.com/joefazee/wagerlog/app/analytics"
	"github.com/joefazee/wagerlog/app/api"
	"github.com/joefazee/wagerlog/app/bets"
	"github.com/joefazee/wagerlog/app/database"
	apiDoc "github.com/joefazee/wagerlog/app/doc"
	"github.com/joefazee/wagerlog/app/groups"
	"github.com/joefazee/wagerlog/app/imports"
	"github.com/joefazee/wagerlog/app/settings"
	"github.com/joefazee/wagerlog/app/sportsbooks"
	_ "github.com/joefazee/wagerlog/docs"
	"github.com/joefazee/wagerlog/internal/cache"
	"github.com/joefazee/wagerlog/internal/deps"
	"github.com/joefazee/wagerlog/internal/logger"
	"github.com/joefazee/wagerlog/internal/metrics"
	"github.com/joefazee/wagerlog/internal/router"
	"github.com/joefazee/wagerlog/internal/sanitizer"
	"github.com/joefazee/wagerlog/internal/security"
)

const shutdownTimeout = 10 * time.Second

// @title Wagerlog API
// @version 1.0
// @description Sports wager tracking: record and settle bets, import sportsbook exports, and read performance analytics and group leaderboards.
// @x-logo {"url": "https://go.dev/images/go-logo-white.svg", "altText": "Go API Logo"}

// @contact.name API Support Team
// @contact.email support@wagerlog.dev

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a PASETO access token.
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	appLogger := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "wagerlog-api",
		"env":     cfg.Env,
	})

	db, err := database.New(&cfg.DB)
	if err != nil {
		appLogger.Fatal(fmt.Errorf("failed to connect to database: %w", err), nil)
	}
	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Fatal(err, nil)
	}
	defer sqlDB.Close()

	tokenMaker, err := security.NewPasetoMaker(cfg.Token.SymmetricKey)
	if err != nil {
		appLogger.Fatal(fmt.Errorf("cannot create token maker: %w", err), nil)
	}

	leaderboards, err := cache.New[string](cfg.Cache)
	if err != nil {
		appLogger.Fatal(err, nil)
	}

	container := deps.NewContainer(db, tokenMaker, sanitizer.NewHTMLStripper(), appLogger, leaderboards)
	container.Metrics = metrics.NewRecorder()
	container.Config = cfg.Modules

	initRepositories(container)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(api.CorsMiddleware())
	r.Use(api.RequestLogger(appLogger))
	r.Use(container.Metrics.Middleware())

	r.GET("/metrics", gin.WrapH(container.Metrics.Handler()))
	if cfg.PprofEnabled {
		pprof.Register(r)
	}
	apiDoc.Init(r, cfg.Env)

	mounter := router.NewMounter(container)
	mounter.Public(r).Mount(func(g *gin.RouterGroup, _ *deps.Container) {
		g.GET("/healthz", api.HealthCheck(sqlDB, cfg.Env))
	})
	mounter.Authenticated(r, api.Authenticate(tokenMaker)).Mount(
		sportsbooks.MountAuthenticated,
		settings.MountAuthenticated,
		bets.MountAuthenticated,
		imports.MountAuthenticated,
		analytics.MountAuthenticated,
		groups.MountAuthenticated,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		appLogger.Info("starting wagerlog API server", logger.Fields{"addr": srv.Addr})
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal(err, nil)
		}
	case sig := <-shutdown:
		appLogger.Info("shutting down", logger.Fields{"signal": sig.String()})

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			appLogger.Error(err, logger.Fields{"op": "shutdown"})
			_ = srv.Close()
		}
	}
}

// initRepositories registers every module repository before any handler is built
func initRepositories(container *deps.Container) {
	sportsbooks.InitRepositories(container)
	settings.InitRepositories(container)
	bets.InitRepositories(container)
	analytics.InitRepositories(container)
	groups.InitRepositories(container)
}

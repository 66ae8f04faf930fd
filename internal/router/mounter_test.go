package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/wagerlog/internal/deps"
	"github.com/stretchr/testify/assert"
)

func TestMounter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	container := &deps.Container{}
	m := NewMounter(container)

	var seen *deps.Container
	m.Public(engine).Mount(func(r *gin.RouterGroup, c *deps.Container) {
		seen = c
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	})

	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	m.Authenticated(engine, deny).Group("/private").Mount(func(r *gin.RouterGroup, _ *deps.Container) {
		r.GET("/thing", func(c *gin.Context) { c.Status(http.StatusOK) })
	})

	assert.Same(t, container, seen)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/private/thing", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

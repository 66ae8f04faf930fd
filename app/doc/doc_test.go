package doc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/joefazee/wagerlog/docs"
)

func TestGetServersForEnvironment(t *testing.T) {
	assert.Len(t, getServersForEnvironment("development"), 1)
	assert.Len(t, getServersForEnvironment("staging"), 2)
	assert.Len(t, getServersForEnvironment("production"), 3)
}

func TestInit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Init(r, "staging")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Len(t, doc["servers"], 2)
	assert.Contains(t, doc["paths"], "/api/v1/imports/csv")

	components := doc["components"].(map[string]interface{})
	schemes := components["securitySchemes"].(map[string]interface{})
	assert.Contains(t, schemes, "BearerAuth")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/index.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "elements-api")
}

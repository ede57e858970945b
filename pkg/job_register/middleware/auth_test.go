package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/skillbridge/job-register/pkg/job_register/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter(scope string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	guarded := g.Group("", middleware.RequireAccess(scope))
	guarded.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	guarded.POST("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return g
}

func token(t *testing.T, scope string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "tester", "scope": scope})
	signed, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)
	return signed
}

func perform(g *gin.Engine, method string, headers map[string]string) int {
	req := httptest.NewRequest(method, "/ping", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w.Code
}

func TestRequireAccess(t *testing.T) {
	g := authRouter("jobs:write")

	assert.Equal(t, 401, perform(g, http.MethodGet, nil))
	assert.Equal(t, 401, perform(g, http.MethodGet, map[string]string{"Authorization": "Basic abc"}))
	assert.Equal(t, 403, perform(g, http.MethodGet, map[string]string{"Authorization": "Bearer not-a-token"}))

	// scope must be present in the space separated claim
	assert.Equal(t, 200, perform(g, http.MethodGet, map[string]string{
		"Authorization": "Bearer " + token(t, "jobs:read jobs:write"),
	}))
	assert.Equal(t, 403, perform(g, http.MethodGet, map[string]string{
		"Authorization": "Bearer " + token(t, "jobs:read"),
	}))
}

func TestRequireAccessAPIKey(t *testing.T) {
	g := authRouter("jobs:read")

	// an api key validated upstream grants read access only
	assert.Equal(t, 200, perform(g, http.MethodGet, map[string]string{"x-api-key": "key"}))
	assert.Equal(t, 403, perform(g, http.MethodPost, map[string]string{"x-api-key": "key"}))
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "octofit-test-secret"

func setupTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"subject": c.GetString("subject")}) }
	router.GET("/teams/", ok)
	router.POST("/teams/", ok)
	router.DELETE("/teams/:id/", ok)
	return router
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub":   "665f1c2e9b1e8a3f4c2d1a01",
		"email": "ironman@marvel.com",
		"exp":   expires.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	valid := signToken(t, testSecret, jwt.SigningMethodHS256, time.Now().Add(time.Hour))

	tests := []struct {
		name           string
		secret         string
		method         string
		path           string
		header         string
		expectedStatus int
	}{
		{"reads are public", testSecret, http.MethodGet, "/teams/", "", http.StatusOK},
		{"write without token", testSecret, http.MethodPost, "/teams/", "", http.StatusUnauthorized},
		{"malformed header", testSecret, http.MethodPost, "/teams/", "Token " + valid, http.StatusUnauthorized},
		{"valid token", testSecret, http.MethodPost, "/teams/", "Bearer " + valid, http.StatusOK},
		{"valid token on delete", testSecret, http.MethodDelete, "/teams/t1/", "bearer " + valid, http.StatusOK},
		{"wrong secret", testSecret, http.MethodPost, "/teams/", "Bearer " + signToken(t, "other", jwt.SigningMethodHS256, time.Now().Add(time.Hour)), http.StatusUnauthorized},
		{"expired token", testSecret, http.MethodPost, "/teams/", "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"disabled without secret", "", http.MethodPost, "/teams/", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter(AuthMiddleware(tt.secret))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), `"kind":"unauthorized"`)
			}
		})
	}
}

func TestAuthMiddlewareSetsSubject(t *testing.T) {
	router := setupTestRouter(AuthMiddleware(testSecret))

	req := httptest.NewRequest(http.MethodPost, "/teams/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.SigningMethodHS256, time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"subject": "665f1c2e9b1e8a3f4c2d1a01"}`, w.Body.String())
}

func TestRequestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestTimeout(50 * time.Millisecond))
	router.GET("/slow", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)

		<-c.Request.Context().Done()
		assert.ErrorIs(t, c.Request.Context().Err(), context.DeadlineExceeded)
		c.Status(http.StatusGatewayTimeout)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)

	router = gin.New()
	router.Use(RequestTimeout(0))
	router.GET("/fast", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.False(t, ok)
		c.Status(http.StatusOK)
	})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsPassesThrough(t *testing.T) {
	router := setupTestRouter(Metrics())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

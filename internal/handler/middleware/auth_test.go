//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"gymbook/internal/handler/middleware"
	"gymbook/internal/pkg/cookie"
	"gymbook/tests/common/httptest"
	usecasemock "gymbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)

	router := gin.New()
	router.Use(middleware.NewAuthMiddleware(validator).RequireAuth())
	router.GET("/protected", func(c *gin.Context) {
		uid, ok := middleware.GetUID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "uid missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"uid": uid})
	})
	return router, validator
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid bearer token passes the uid through", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("good-token").Return("user-123", nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "good-token")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "user-123")
	})

	t.Run("cookie token is preferred over the header", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("cookie-token").Return("user-123", nil)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/protected", nil, cookies, "header-token")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("invalid token is 401", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("bad-token").Return("", errors.New("token expired"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "bad-token")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("malformed authorization scheme is 401", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		req := nethttptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

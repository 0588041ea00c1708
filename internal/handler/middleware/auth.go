package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"gymbook/internal/pkg/cookie"
	"gymbook/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxUIDKey = "uid"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		uid, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUIDKey, uid)
		c.Next()
	}
}

// GetUID returns the authenticated provider UID from context.
func GetUID(c *gin.Context) (string, bool) {
	uid, exists := c.Get(ctxUIDKey)
	if !exists {
		return "", false
	}

	id, ok := uid.(string)
	return id, ok && id != ""
}

package api

import (
	"net/http"

	reqdto "gymbook/internal/handler/dto/request"
	resdto "gymbook/internal/handler/dto/response"
	"gymbook/internal/pkg/config"
	"gymbook/internal/pkg/cookie"
	"gymbook/internal/pkg/jwt"
	"gymbook/internal/session"
	"gymbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	session      *session.Session
	jwtService   *jwt.Service
	cookieConfig config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, sess *session.Session, jwtService *jwt.Service, cookieConfig config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		session:      sess,
		jwtService:   jwtService,
		cookieConfig: cookieConfig,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	res, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	h.complete(c, res, err, http.StatusOK)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	res, err := h.authCommands.Register(c.Request.Context(), req.Email, req.Password)
	h.complete(c, res, err, http.StatusCreated)
}

func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req reqdto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	res, err := h.authCommands.GoogleLogin(c.Request.Context(), req.IDToken)
	h.complete(c, res, err, http.StatusOK)
}

// complete maps an auth command result to the wire. Provider rejections
// surface their user-facing message with a 401; only token minting is a
// server fault.
func (h *AuthHandler) complete(c *gin.Context, res *commands.AuthResult, err error, successStatus int) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if !res.Success {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": res.Error,
		})
		return
	}

	cookie.SetTokenCookie(c, h.cookieConfig, res.Token, h.jwtService.TokenDuration())
	c.JSON(successStatus, resdto.AuthResponse{User: resdto.FromUser(res.User)})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.session.SignOut(c.Request.Context())
	cookie.ClearTokenCookie(c, h.cookieConfig)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, loading := h.session.Current()
	if loading {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Session is still initializing",
		})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not signed in",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(user))
}

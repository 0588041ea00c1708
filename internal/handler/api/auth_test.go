//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"gymbook/internal/domain/identity"
	"gymbook/internal/handler/api"
	resdto "gymbook/internal/handler/dto/response"
	"gymbook/internal/pkg/config"
	"gymbook/internal/pkg/cookie"
	"gymbook/internal/pkg/jwt"
	"gymbook/internal/pkg/stream"
	"gymbook/internal/session"
	"gymbook/internal/usecase/commands"
	"gymbook/tests/common/builder"
	"gymbook/tests/common/httptest"
	commandsmock "gymbook/tests/mock/commands"
	identitymock "gymbook/tests/mock/identity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockProvider *identitymock.MockProvider
	session      *session.Session
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockProvider = identitymock.NewMockProvider(s.mockCtrl)
	s.session = session.New(s.mockProvider)

	jwtService := jwt.NewService("test-secret", time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.session, jwtService, config.NewTestConfig().Cookie)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/google", s.handler.GoogleLogin)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: 200 with the user and a token cookie", func() {
		user := builder.NewUserBuilder().Build()
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(&commands.AuthResult{Success: true, User: user, Token: "jwt-token"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(user.UID, response.User.UID)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Equal("jwt-token", tokenCookie.Value)
	})

	s.Run("error: 401 with the provider message on rejection", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(&commands.AuthResult{Success: false, Error: "Incorrect password. Please try again."}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Incorrect password")
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "not-an-email"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 500 when token minting fails", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(nil, commands.ErrTokenGeneration)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: 201 for a new account", func() {
		user := builder.NewUserBuilder().Build()
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(&commands.AuthResult{Success: true, User: user, Token: "jwt-token"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(user.UID, response.User.UID)
	})

	s.Run("error: 401 with the duplicate email message", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(&commands.AuthResult{Success: false, Error: "An account with this email already exists."}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "already exists")
	})
}

func (s *AuthHandlerTestSuite) TestGoogleLogin() {
	url := "/auth/google"

	s.Run("success: 200 for a valid id token", func() {
		user := builder.NewUserBuilder().Build()
		s.mockCommands.EXPECT().GoogleLogin(gomock.Any(), "google-id-token").
			Return(&commands.AuthResult{Success: true, User: user, Token: "jwt-token"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"idToken": "google-id-token"}, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("error: 400 when the id token is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: 204 and the token cookie is cleared", func() {
		s.mockProvider.EXPECT().SignOut(gomock.Any()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Empty(tokenCookie.Value)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("error: 503 while the session is still loading", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "initializing")
	})

	s.Run("success: 200 with the session user once loaded", func() {
		user := builder.NewUserBuilder().Build()
		s.startSession(user)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(user.UID, response.UID)
	})

	s.Run("error: 401 for a guest session", func() {
		s.startSession(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Not signed in")
	})
}

// startSession starts the session against the mock provider and
// delivers one notification carrying u (nil means a guest).
func (s *AuthHandlerTestSuite) startSession(u *identity.User) {
	done := make(chan struct{})
	s.mockProvider.EXPECT().SessionChanges(gomock.Any()).
		DoAndReturn(func(fn func(*identity.User)) *stream.Subscription {
			fn(u)
			return stream.NewSubscription(func() { close(done) }, done)
		})
	s.session.Start()
	s.T().Cleanup(s.session.Stop)
}

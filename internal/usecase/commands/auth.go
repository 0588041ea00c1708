package commands

import (
	"context"

	"gymbook/internal/domain/identity"
	"gymbook/internal/pkg/errs"
	"gymbook/internal/pkg/jwt"
)

var ErrTokenGeneration = errs.New("token generation failed")

// AuthResult mirrors the identity adapter's uniform outcome, extended
// with the app session token minted on success.
type AuthResult struct {
	Success bool
	User    *identity.User
	Token   string
	Error   string
}

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	GoogleLogin(ctx context.Context, idToken string) (*AuthResult, error)
}

type authCommandsImpl struct {
	provider   identity.Provider
	jwtService *jwt.Service
}

func NewAuthCommands(provider identity.Provider, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{provider: provider, jwtService: jwtService}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	return a.complete(a.provider.SignInWithEmail(ctx, email, password))
}

func (a *authCommandsImpl) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	return a.complete(a.provider.CreateAccountWithEmail(ctx, email, password))
}

func (a *authCommandsImpl) GoogleLogin(ctx context.Context, idToken string) (*AuthResult, error) {
	return a.complete(a.provider.SignInWithGoogle(ctx, idToken))
}

// complete turns a provider result into an app session. Provider
// rejections pass through unchanged; only token minting can fail hard.
func (a *authCommandsImpl) complete(res identity.Result) (*AuthResult, error) {
	if !res.Success {
		return &AuthResult{Success: false, Error: res.Error}, nil
	}

	token, err := a.jwtService.GenerateToken(res.User.UID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{Success: true, User: res.User, Token: token}, nil
}

package identity

import (
	"context"

	"gymbook/internal/pkg/stream"
)

// User is the normalized app-level identity, materialized from the
// provider's session object. Email, DisplayName and PhotoURL are
// nullable at the provider.
type User struct {
	UID         string  `json:"uid"`
	Email       *string `json:"email"`
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoURL"`
}

// Result is the uniform outcome of an identity operation. Known
// provider failures never surface as transport errors; they come back
// as Success=false with a human-readable Error.
type Result struct {
	Success bool
	User    *User
	Error   string
}

// Provider wraps the hosted identity service. SessionChanges fires the
// callback once per session transition with the normalized user, or
// nil when signed out.
type Provider interface {
	SignInWithEmail(ctx context.Context, email, password string) Result
	CreateAccountWithEmail(ctx context.Context, email, password string) Result
	SignInWithGoogle(ctx context.Context, idToken string) Result
	SignOut(ctx context.Context) error
	CurrentUser() *User
	SessionChanges(fn func(*User)) *stream.Subscription
}

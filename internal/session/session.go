// Package session holds the current authenticated user for the
// process. It is an explicitly constructed object with a start/stop
// lifecycle, passed down to consumers rather than reached for as
// ambient global state.
package session

import (
	"context"
	"log/slog"
	"sync"

	"gymbook/internal/domain/identity"
	"gymbook/internal/pkg/stream"
)

type Session struct {
	provider identity.Provider

	mu      sync.RWMutex
	user    *identity.User
	loading bool

	sub *stream.Subscription
}

func New(provider identity.Provider) *Session {
	return &Session{
		provider: provider,
		loading:  true,
	}
}

// Start subscribes to provider session changes. The first callback
// clears the loading flag, whatever it carries; nil means a guest.
func (s *Session) Start() {
	s.sub = s.provider.SessionChanges(func(u *identity.User) {
		s.mu.Lock()
		s.user = u
		s.loading = false
		s.mu.Unlock()
	})
}

// Stop tears the provider subscription down. Safe to call more than
// once.
func (s *Session) Stop() {
	if s.sub != nil {
		s.sub.Close()
	}
}

// Current returns the signed-in user (nil for a guest) and whether the
// first provider notification is still pending.
func (s *Session) Current() (*identity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.loading
}

// SignOut delegates to the provider and clears the local user
// regardless of the outcome: a half-dead provider session must not pin
// a user in the app. Provider failures are logged only.
func (s *Session) SignOut(ctx context.Context) {
	if err := s.provider.SignOut(ctx); err != nil {
		slog.Error("provider sign out failed", "error", err.Error())
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

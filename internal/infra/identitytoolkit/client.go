// Package identitytoolkit is the adapter for the hosted identity
// provider. It speaks the provider's REST wire format, normalizes
// provider users into app-level identity.User records, and keeps the
// current session with a change-notification stream.
package identitytoolkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"gymbook/internal/domain/identity"
	"gymbook/internal/pkg/config"
	"gymbook/internal/pkg/errs"
	"gymbook/internal/pkg/stream"
)

type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string

	mu        sync.Mutex
	current   *identity.User
	listeners map[int]func(*identity.User)
	nextID    int
}

var _ identity.Provider = (*Client)(nil)

func NewClient(cfg config.IdentityConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		listeners:  make(map[int]func(*identity.User)),
	}
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type idpSignInRequest struct {
	PostBody          string `json:"postBody"`
	RequestURI        string `json:"requestUri"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type sessionResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) SignInWithEmail(ctx context.Context, email, password string) identity.Result {
	return c.authenticate(ctx, "accounts:signInWithPassword", signInRequest{
		Email: email, Password: password, ReturnSecureToken: true,
	})
}

func (c *Client) CreateAccountWithEmail(ctx context.Context, email, password string) identity.Result {
	return c.authenticate(ctx, "accounts:signUp", signInRequest{
		Email: email, Password: password, ReturnSecureToken: true,
	})
}

// SignInWithGoogle exchanges a Google ID token obtained by the caller
// for a provider session.
func (c *Client) SignInWithGoogle(ctx context.Context, idToken string) identity.Result {
	body := url.Values{}
	body.Set("id_token", idToken)
	body.Set("providerId", "google.com")

	return c.authenticate(ctx, "accounts:signInWithIdp", idpSignInRequest{
		PostBody:          body.Encode(),
		RequestURI:        "http://localhost",
		ReturnSecureToken: true,
	})
}

// SignOut clears the provider session and notifies session listeners
// with nil. The provider keeps no server-side session for this flow,
// so the only failure mode is a not-yet-signed-in client.
func (c *Client) SignOut(_ context.Context) error {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return errs.ErrNotAuthenticated
	}
	c.current = nil
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(nil)
	}
	return nil
}

func (c *Client) CurrentUser() *identity.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// SessionChanges registers fn and fires it immediately with the
// current session state, then once per subsequent transition.
func (c *Client) SessionChanges(fn func(*identity.User)) *stream.Subscription {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	current := c.current
	c.mu.Unlock()

	fn(current)

	done := make(chan struct{})
	return stream.NewSubscription(func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
		close(done)
	}, done)
}

// authenticate posts one wire call and normalizes the outcome into the
// uniform Result. Known provider rejections map to user-facing
// messages; transport failures collapse into the generic message so
// nothing leaks past this boundary.
func (c *Client) authenticate(ctx context.Context, action string, payload any) identity.Result {
	resp, err := c.post(ctx, action, payload)
	if err != nil {
		slog.Error("identity provider request failed", "action", action, "error", err.Error())
		return identity.Result{Success: false, Error: GenericErrorMessage}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("identity provider response read failed", "action", action, "error", err.Error())
		return identity.Result{Success: false, Error: GenericErrorMessage}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		_ = json.Unmarshal(raw, &errResp)
		code := NormalizeCode(errResp.Error.Message)
		slog.Warn("identity provider rejected request", "action", action, "code", code)
		return identity.Result{Success: false, Error: ErrorMessage(code)}
	}

	var session sessionResponse
	if err := json.Unmarshal(raw, &session); err != nil {
		slog.Error("identity provider response decode failed", "action", action, "error", err.Error())
		return identity.Result{Success: false, Error: GenericErrorMessage}
	}

	user := formatUser(session)
	c.setSession(user)
	return identity.Result{Success: true, User: user}
}

func (c *Client) post(ctx context.Context, action string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s?key=%s", c.endpoint, action, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

func (c *Client) setSession(user *identity.User) {
	c.mu.Lock()
	c.current = user
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(user)
	}
}

func (c *Client) snapshotListeners() []func(*identity.User) {
	fns := make([]func(*identity.User), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	return fns
}

// formatUser normalizes the provider session object; empty optional
// fields become nil to keep their nullable semantics.
func formatUser(s sessionResponse) *identity.User {
	return &identity.User{
		UID:         s.LocalID,
		Email:       optional(s.Email),
		DisplayName: optional(s.DisplayName),
		PhotoURL:    optional(s.PhotoURL),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

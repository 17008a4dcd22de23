package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Auth state-change events delivered to OnStateChange listeners.
const (
	EventSignedIn  = "SIGNED_IN"
	EventSignedOut = "SIGNED_OUT"
)

// ErrInvalidCredentials means the backend answered and rejected the login.
var ErrInvalidCredentials = errors.New("store: invalid credentials")

type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Email        string
}

// Auth is the authentication sub-API of the client. It holds at most one
// active session and notifies listeners whenever that session changes,
// including invalidations detected on unrelated requests.
type Auth struct {
	c *Client

	mu        sync.Mutex
	session   *Session
	listeners []func(event string, s *Session)
}

// SignInWithPassword exchanges email+password for a session token.
func (a *Auth) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.c.baseURL+"/auth/v1/token?grant_type=password", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", a.c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized ||
		resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	var body struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
		User         struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if body.AccessToken == "" {
		return nil, ErrInvalidCredentials
	}

	s := &Session{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(body.ExpiresIn) * time.Second),
		Email:        body.User.Email,
	}

	a.mu.Lock()
	a.session = s
	a.mu.Unlock()
	a.emit(EventSignedIn, s)

	return s, nil
}

// Session returns a copy of the active session, or nil.
func (a *Auth) Session() *Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return nil
	}
	s := *a.session
	return &s
}

// SignOut drops the session locally and best-effort revokes it remotely.
func (a *Auth) SignOut(ctx context.Context) error {
	a.mu.Lock()
	s := a.session
	a.session = nil
	a.mu.Unlock()

	a.emit(EventSignedOut, nil)

	if s == nil {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.c.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", a.c.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.AccessToken)

	resp, err := a.c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	resp.Body.Close()
	return nil
}

// OnStateChange registers a listener for session transitions.
func (a *Auth) OnStateChange(fn func(event string, s *Session)) {
	a.mu.Lock()
	a.listeners = append(a.listeners, fn)
	a.mu.Unlock()
}

// invalidate drops a session that the backend stopped honoring.
func (a *Auth) invalidate() {
	a.mu.Lock()
	had := a.session != nil
	a.session = nil
	a.mu.Unlock()
	if had {
		a.emit(EventSignedOut, nil)
	}
}

func (a *Auth) emit(event string, s *Session) {
	a.mu.Lock()
	fns := append(([]func(string, *Session))(nil), a.listeners...)
	a.mu.Unlock()
	for _, fn := range fns {
		fn(event, s)
	}
}

// Package auth implements the admin session gate: the state machine between
// anonymous visitors and an authenticated admin, fed either by the static
// admin key or by a delegated credential exchange against the remote backend.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/linoawt/Linostudiong/internal/cache"
	"github.com/linoawt/Linostudiong/internal/store"
)

type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

var (
	// ErrAccessDenied means the backend (or the key comparison) answered
	// and rejected the credentials. Recoverable by re-prompting.
	ErrAccessDenied = errors.New("auth: access denied")
	// ErrServiceUnavailable means the backend could not be reached at all.
	ErrServiceUnavailable = errors.New("auth: service unavailable")
	// ErrNotAuthenticated is returned for write attempts while anonymous.
	ErrNotAuthenticated = errors.New("auth: not authenticated")
)

const sessionTTL = 30 * 24 * time.Hour

// Gate guards every write path. Session tokens survive restarts in the
// local cache DB; the in-memory state tracks the current process.
type Gate struct {
	adminKey string
	remote   *store.Auth // nil in static-key-only deployments
	sessions *cache.Cache

	mu    sync.Mutex
	state State
}

func NewGate(adminKey string, remote *store.Auth, sessions *cache.Cache) *Gate {
	g := &Gate{adminKey: adminKey, remote: remote, sessions: sessions}
	if remote != nil {
		remote.OnStateChange(func(event string, _ *store.Session) {
			if event == store.EventSignedOut {
				g.forceAnonymous()
			}
		})
	}
	return g
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gate) setState(s State) {
	g.mu.Lock()
	g.state = s
	g.mu.Unlock()
}

// Authenticated reports whether writes are currently allowed.
func (g *Gate) Authenticated() bool {
	return g.State() == Authenticated
}

// Require rejects callers that are not authenticated; writes must never
// silently no-op.
func (g *Gate) Require() error {
	if !g.Authenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// LoginWithKey authenticates against the static shared secret (legacy mode)
// and returns an opaque session token.
func (g *Gate) LoginWithKey(ctx context.Context, key string) (string, error) {
	g.setState(Authenticating)

	if g.adminKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(g.adminKey)) != 1 {
		g.setState(Anonymous)
		return "", ErrAccessDenied
	}

	return g.openSession(ctx)
}

// LoginWithEmail delegates to the remote auth API. Wrong credentials and an
// unreachable backend are reported as distinct errors; both leave the gate
// anonymous.
func (g *Gate) LoginWithEmail(ctx context.Context, email, password string) (string, error) {
	if g.remote == nil {
		return "", ErrServiceUnavailable
	}
	g.setState(Authenticating)

	if _, err := g.remote.SignInWithPassword(ctx, email, password); err != nil {
		g.setState(Anonymous)
		if errors.Is(err, store.ErrInvalidCredentials) {
			return "", ErrAccessDenied
		}
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	return g.openSession(ctx)
}

func (g *Gate) openSession(ctx context.Context) (string, error) {
	token := generateToken()
	if err := g.sessions.CreateSession(ctx, token, sessionTTL); err != nil {
		g.setState(Anonymous)
		return "", fmt.Errorf("create session: %w", err)
	}
	g.setState(Authenticated)
	return token, nil
}

// Validate checks a session token. A valid token from an earlier process
// re-enters the authenticated state.
func (g *Gate) Validate(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	ok, err := g.sessions.SessionExists(ctx, token)
	if err != nil {
		log.Printf("gate: session lookup: %v", err)
		return false
	}
	if ok {
		g.setState(Authenticated)
	}
	return ok
}

// Logout ends the session explicitly.
func (g *Gate) Logout(ctx context.Context, token string) {
	if token != "" {
		_ = g.sessions.DeleteSession(ctx, token)
	}
	if g.remote != nil && g.remote.Session() != nil {
		if err := g.remote.SignOut(ctx); err != nil {
			log.Printf("gate: remote sign-out: %v", err)
		}
	}
	g.setState(Anonymous)
}

// forceAnonymous handles out-of-band session invalidation: the remote
// session died, so every local admin session dies with it, immediately.
func (g *Gate) forceAnonymous() {
	g.setState(Anonymous)
	if err := g.sessions.DeleteAllSessions(context.Background()); err != nil {
		log.Printf("gate: clear sessions: %v", err)
	}
}

func generateToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

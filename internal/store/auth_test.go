package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/v1/token", r.URL.Path)
		require.Equal(t, "password", r.URL.Query().Get("grant_type"))
		w.WriteHeader(status)
		if body != nil {
			json.NewEncoder(w).Encode(body)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSignInWithPassword(t *testing.T) {
	srv := authServer(t, http.StatusOK, map[string]any{
		"access_token":  "tok-abc",
		"refresh_token": "ref-abc",
		"expires_in":    3600,
		"user":          map[string]string{"email": "admin@example.test"},
	})

	c := New(srv.URL, "anon-key")

	var events []string
	c.Auth().OnStateChange(func(event string, s *Session) {
		events = append(events, event)
	})

	s, err := c.Auth().SignInWithPassword(context.Background(), "admin@example.test", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", s.AccessToken)
	assert.Equal(t, "admin@example.test", s.Email)
	assert.Equal(t, []string{EventSignedIn}, events)

	got := c.Auth().Session()
	require.NotNil(t, got)
	assert.Equal(t, "tok-abc", got.AccessToken)
}

func TestSignInRejected(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden} {
		srv := authServer(t, status, map[string]string{"message": "invalid login credentials"})
		c := New(srv.URL, "anon-key")

		_, err := c.Auth().SignInWithPassword(context.Background(), "admin@example.test", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials, "status %d", status)
		assert.Nil(t, c.Auth().Session())
	}
}

func TestSignInBackendDown(t *testing.T) {
	c := New("http://127.0.0.1:1", "anon-key")
	_, err := c.Auth().SignInWithPassword(context.Background(), "admin@example.test", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignOutEmitsEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/v1/token" {
			json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "expires_in": 3600})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "anon-key")
	_, err := c.Auth().SignInWithPassword(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	var events []string
	c.Auth().OnStateChange(func(event string, _ *Session) {
		events = append(events, event)
	})

	require.NoError(t, c.Auth().SignOut(context.Background()))
	assert.Nil(t, c.Auth().Session())
	assert.Equal(t, []string{EventSignedOut}, events)
}

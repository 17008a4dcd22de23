package middleware

import (
	"context"
	"net/http"

	"github.com/linoawt/Linostudiong/internal/auth"
)

type contextKey string

const sessionContextKey contextKey = "adminSession"

// Admin resolves the session cookie against the gate and, when valid, marks
// the request as an authenticated admin request.
func Admin(gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			cookie, err := req.Cookie("session")
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, req)
				return
			}

			if !gate.Validate(req.Context(), cookie.Value) {
				next.ServeHTTP(w, req)
				return
			}

			ctx := context.WithValue(req.Context(), sessionContextKey, cookie.Value)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// SessionToken returns the validated admin session token, or "".
func SessionToken(ctx context.Context) string {
	token, _ := ctx.Value(sessionContextKey).(string)
	return token
}

// IsAdmin reports whether the request carries a validated admin session.
func IsAdmin(ctx context.Context) bool {
	return SessionToken(ctx) != ""
}

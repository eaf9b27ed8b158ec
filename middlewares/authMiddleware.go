package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/PumbaSquek/chiedimi-tutto-subito/helper"
	"github.com/PumbaSquek/chiedimi-tutto-subito/session"
)

// SessionResolver turns a validated user id into a live session, rebuilding
// one (profile lookup plus stored-menu load) when the server no longer has
// it in memory.
type SessionResolver interface {
	ResolveSession(ctx context.Context, userID string) (*session.Session, error)
}

// Context key to store the resolved session
type contextKey string

const SessionKey contextKey = "session"

// Authentication guards protected routes: it expects "Bearer <token>",
// validates the token and attaches the user's session to the request.
func Authentication(tokens *helper.TokenManager, resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientToken := r.Header.Get("Authorization")
			if clientToken == "" {
				http.Error(w, "No Authorization header provided", http.StatusUnauthorized)
				return
			}

			// Token format should be "Bearer <token>"
			tokenParts := strings.Split(clientToken, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				http.Error(w, "Invalid Authorization format", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateToken(tokenParts[1])
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			sess, err := resolver.ResolveSession(r.Context(), claims.Uid)
			if err != nil {
				http.Error(w, "Session could not be established", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext retrieves the session attached by Authentication.
func SessionFromContext(r *http.Request) (*session.Session, bool) {
	sess, ok := r.Context().Value(SessionKey).(*session.Session)
	return sess, ok
}

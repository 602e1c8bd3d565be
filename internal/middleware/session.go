package middleware

import (
	"context"
	"net/http"

	"github.com/bookrack/bookrack-go/internal/crypto"
)

// SessionCookie is the name of the http-only cookie carrying the session token.
const SessionCookie = "token"

type contextKey string

const userIDKey contextKey = "userID"

// SessionAuth returns middleware that resolves the session cookie to a user
// ID. Any failure — missing cookie, bad signature, malformed or expired
// token — redirects to the login page with no further detail, so an invalid
// session looks the same as a fresh visit.
func SessionAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			claims, err := crypto.ParseSessionToken(cookie.Value, secret)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

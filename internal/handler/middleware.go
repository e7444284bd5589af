// Package handler provides the HTTP handlers and router for the game.
package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey string

const tokenCtxKey ctxKey = "session_token"

// SessionCookie resolves the player's session token from a cookie,
// issuing a fresh opaque token when none is present, and stores it in the
// request context. Every game route runs behind this, so all session
// state stays keyed per browser.
func SessionCookie(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if c, err := r.Cookie(cookieName); err == nil {
				token = c.Value
			}
			if token == "" {
				token = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := context.WithValue(r.Context(), tokenCtxKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionToken returns the token placed in the context by SessionCookie.
func sessionToken(r *http.Request) string {
	token, _ := r.Context().Value(tokenCtxKey).(string)
	return token
}

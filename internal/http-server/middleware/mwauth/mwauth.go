// Package mwauth verifies bearer tokens and exposes the caller identity
// to handlers through the request context. Handlers trust the userId it
// delivers and perform no further verification.
package mwauth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/jwt"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"

	"github.com/go-chi/render"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	roleKey
)

// New returns the authentication middleware. Requests without a valid
// bearer token are rejected with 401 before reaching the handler.
func New(log *slog.Logger, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(slog.String("component", "middleware/auth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if token == "" || token == r.Header.Get("Authorization") {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("No token provided"))
				return
			}

			claims, err := jwt.ParseToken(token, secret)
			if err != nil {
				log.Warn("invalid token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, roleKey, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireRole gates a route to the given roles. Must run after New.
func RequireRole(roles ...models.UserRole) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			role := Role(r.Context())

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("Access denied"))
		}

		return http.HandlerFunc(fn)
	}
}

// UserID returns the authenticated caller id, or "" outside New.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func Role(ctx context.Context) models.UserRole {
	role, _ := ctx.Value(roleKey).(models.UserRole)
	return role
}

// WithIdentity injects a caller identity directly, bypassing token
// verification. Test use only.
func WithIdentity(ctx context.Context, userID string, role models.UserRole) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

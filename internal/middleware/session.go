package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"daily-diet-api/internal/models"

	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	userIDKey    contextKey = "user_id"
)

// UserResolver looks up the user owning a session token
type UserResolver interface {
	ResolveUser(ctx context.Context, sessionID string) (*models.User, error)
}

// Session rejects requests without the session cookie and exposes the raw
// token to downstream handlers
func Session(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := SessionIDFromRequest(r, cookieName)
			if sessionID == "" {
				respondError(w, models.ErrUnauthenticated.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ResolveUser loads the user behind the session token. Must run after Session.
func ResolveUser(users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := users.ResolveUser(r.Context(), GetSessionID(r.Context()))
			if err != nil {
				if errors.Is(err, models.ErrUnauthenticated) {
					respondError(w, models.ErrUnauthenticated.Error(), http.StatusUnauthorized)
					return
				}
				log.Error().Err(err).Msg("Failed to resolve session")
				respondError(w, "internal server error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromRequest returns the session cookie value, or "" when absent
func SessionIDFromRequest(r *http.Request, cookieName string) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// GetSessionID extracts the session token from context
func GetSessionID(ctx context.Context) string {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	if !ok {
		return ""
	}
	return sessionID
}

// GetUserID extracts user ID from context
func GetUserID(ctx context.Context) string {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

package handlers

import (
	"net/http"
	"time"

	"daily-diet-api/internal/middleware"
	"daily-diet-api/internal/services"
	"daily-diet-api/internal/validation"

	"github.com/rs/zerolog/log"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService *services.UserService
	cookieName  string
	cookieTTL   time.Duration
}

// NewUserHandler creates a new user handler. New sessions are issued as
// cookieName with a max-age of cookieTTL.
func NewUserHandler(userService *services.UserService, cookieName string, cookieTTL time.Duration) *UserHandler {
	return &UserHandler{
		userService: userService,
		cookieName:  cookieName,
		cookieTTL:   cookieTTL,
	}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := middleware.GetSessionID(ctx)

	users, err := h.userService.ListUsers(ctx, sessionID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to list users")
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := validation.DecodeJSON[services.CreateUserRequest](r.Body)
	if err != nil {
		respondServiceError(w, r, err, "Failed to decode user")
		return
	}

	sessionID := middleware.SessionIDFromRequest(r, h.cookieName)
	newSession := sessionID == ""
	if newSession {
		sessionID = services.NewSessionID()
	}

	user, err := h.userService.CreateUser(ctx, sessionID, req)
	if err != nil {
		respondServiceError(w, r, err, "Failed to create user")
		return
	}

	if newSession {
		http.SetCookie(w, &http.Cookie{
			Name:   h.cookieName,
			Value:  sessionID,
			Path:   "/",
			MaxAge: int(h.cookieTTL.Seconds()),
		})
	}

	log.Info().
		Str("user_id", user.ID).
		Bool("new_session", newSession).
		Msg("User created")

	w.WriteHeader(http.StatusCreated)
}

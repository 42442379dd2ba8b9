package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"daily-diet-api/internal/metrics"
	"daily-diet-api/internal/models"

	"github.com/google/uuid"
)

// UserService handles user-related business logic
type UserService struct {
	userRepo UserStore
}

// NewUserService creates a new user service
func NewUserService(userRepo UserStore) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUserRequest represents a request to register a user
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// NewSessionID generates an opaque session token
func NewSessionID() string {
	return uuid.New().String()
}

// CreateUser registers a user under sessionID
func (s *UserService) CreateUser(ctx context.Context, sessionID string, req CreateUserRequest) (*models.User, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		SessionID: sessionID,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.UsersCreatedTotal.Inc()

	return user, nil
}

// ListUsers returns the users registered under sessionID
func (s *UserService) ListUsers(ctx context.Context, sessionID string) ([]*models.User, error) {
	users, err := s.userRepo.ListBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ResolveUser returns the user owning sessionID. A token that matches no
// user is reported as models.ErrUnauthenticated.
func (s *UserService) ResolveUser(ctx context.Context, sessionID string) (*models.User, error) {
	if sessionID == "" {
		return nil, models.ErrUnauthenticated
	}

	user, err := s.userRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	return user, nil
}

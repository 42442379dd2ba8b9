package services

import (
	"context"

	"daily-diet-api/internal/models"
)

// UserStore persists users. Implemented by repository.UserRepository and
// sqlite.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	ListBySessionID(ctx context.Context, sessionID string) ([]*models.User, error)
	GetBySessionID(ctx context.Context, sessionID string) (*models.User, error)
}

// MealStore persists meals. Lookups, updates and deletes are scoped to the
// owning user and report models.ErrMealNotFound when nothing matches.
type MealStore interface {
	Create(ctx context.Context, meal *models.Meal) error
	ListByUserID(ctx context.Context, userID string) ([]*models.Meal, error)
	GetByID(ctx context.Context, userID, id string) (*models.Meal, error)
	Update(ctx context.Context, meal *models.Meal) error
	Delete(ctx context.Context, userID, id string) error
}

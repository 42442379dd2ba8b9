package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"daily-diet-api/internal/metrics"
	"daily-diet-api/internal/models"
	"daily-diet-api/internal/validation"

	"github.com/google/uuid"
)

// MealService handles meal-related business logic
type MealService struct {
	mealRepo MealStore
}

// NewMealService creates a new meal service
func NewMealService(mealRepo MealStore) *MealService {
	return &MealService{
		mealRepo: mealRepo,
	}
}

// CreateMealRequest represents a request to log a meal
type CreateMealRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
	IsOnDiet    *bool   `json:"is_on_diet" validate:"required"`
}

// UpdateMealRequest replaces every mutable field of a meal
type UpdateMealRequest struct {
	Name        string                `json:"name" validate:"required"`
	Description *string               `json:"description" validate:"required"`
	IsOnDiet    *bool                 `json:"is_on_diet" validate:"required"`
	Date        *validation.Timestamp `json:"date" validate:"required,timestamp"`
}

// ListMeals returns a user's meals, most recent first
func (s *MealService) ListMeals(ctx context.Context, userID string) ([]*models.Meal, error) {
	meals, err := s.mealRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	return meals, nil
}

// GetMeal returns one of a user's meals
func (s *MealService) GetMeal(ctx context.Context, userID, mealID string) (*models.Meal, error) {
	meal, err := s.mealRepo.GetByID(ctx, userID, mealID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}
	return meal, nil
}

// CreateMeal logs a meal dated now
func (s *MealService) CreateMeal(ctx context.Context, userID string, req CreateMealRequest) (*models.Meal, error) {
	now := time.Now()

	meal := &models.Meal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        req.Name,
		Description: deref(req.Description),
		IsOnDiet:    deref(req.IsOnDiet),
		Date:        now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.mealRepo.Create(ctx, meal); err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}

	metrics.MealsCreatedTotal.WithLabelValues(strconv.FormatBool(meal.IsOnDiet)).Inc()

	return meal, nil
}

// UpdateMeal replaces the name, description, diet flag and date of a meal
func (s *MealService) UpdateMeal(ctx context.Context, userID, mealID string, req UpdateMealRequest) (*models.Meal, error) {
	meal, err := s.mealRepo.GetByID(ctx, userID, mealID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}

	meal.Name = req.Name
	meal.Description = deref(req.Description)
	meal.IsOnDiet = deref(req.IsOnDiet)
	if req.Date != nil {
		meal.Date = req.Date.Time
	}
	meal.UpdatedAt = time.Now()

	if err := s.mealRepo.Update(ctx, meal); err != nil {
		return nil, fmt.Errorf("failed to update meal: %w", err)
	}

	metrics.MealsUpdatedTotal.Inc()

	return meal, nil
}

// DeleteMeal removes one of a user's meals
func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID string) error {
	if _, err := s.mealRepo.GetByID(ctx, userID, mealID); err != nil {
		return fmt.Errorf("failed to get meal: %w", err)
	}

	if err := s.mealRepo.Delete(ctx, userID, mealID); err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}

	metrics.MealsDeletedTotal.Inc()

	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

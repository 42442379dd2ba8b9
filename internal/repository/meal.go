package repository

import (
	"context"
	"errors"
	"fmt"

	"daily-diet-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MealRepository handles database operations for meals
type MealRepository struct {
	db *pgxpool.Pool
}

// NewMealRepository creates a new meal repository
func NewMealRepository(db *pgxpool.Pool) *MealRepository {
	return &MealRepository{db: db}
}

// Create creates a new meal
func (r *MealRepository) Create(ctx context.Context, meal *models.Meal) error {
	query := `
		INSERT INTO meals (id, user_id, name, description, is_on_diet, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		meal.ID, meal.UserID, meal.Name, meal.Description, meal.IsOnDiet,
		meal.Date, meal.CreatedAt, meal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create meal: %w", err)
	}
	return nil
}

// ListByUserID retrieves a user's meals, most recent first
func (r *MealRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Meal, error) {
	query := `
		SELECT id, user_id, name, description, is_on_diet, date, created_at, updated_at
		FROM meals
		WHERE user_id = $1
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	defer rows.Close()

	meals := []*models.Meal{}
	for rows.Next() {
		var meal models.Meal
		err := rows.Scan(
			&meal.ID, &meal.UserID, &meal.Name, &meal.Description, &meal.IsOnDiet,
			&meal.Date, &meal.CreatedAt, &meal.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meal: %w", err)
		}
		meals = append(meals, &meal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meals: %w", err)
	}

	return meals, nil
}

// GetByID retrieves one of a user's meals by ID
func (r *MealRepository) GetByID(ctx context.Context, userID, id string) (*models.Meal, error) {
	query := `
		SELECT id, user_id, name, description, is_on_diet, date, created_at, updated_at
		FROM meals
		WHERE id = $1 AND user_id = $2
	`
	var meal models.Meal
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&meal.ID, &meal.UserID, &meal.Name, &meal.Description, &meal.IsOnDiet,
		&meal.Date, &meal.CreatedAt, &meal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrMealNotFound
		}
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}
	return &meal, nil
}

// Update replaces the mutable fields of a meal
func (r *MealRepository) Update(ctx context.Context, meal *models.Meal) error {
	query := `
		UPDATE meals
		SET name = $1, description = $2, is_on_diet = $3, date = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`
	result, err := r.db.Exec(ctx, query,
		meal.Name, meal.Description, meal.IsOnDiet, meal.Date, meal.UpdatedAt,
		meal.ID, meal.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update meal: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.ErrMealNotFound
	}
	return nil
}

// Delete removes one of a user's meals
func (r *MealRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM meals WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.ErrMealNotFound
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"daily-diet-api/internal/models"
)

// MealRepository handles SQLite operations for meals
type MealRepository struct {
	db *sql.DB
}

// NewMealRepository creates a new meal repository
func NewMealRepository(db *sql.DB) *MealRepository {
	return &MealRepository{db: db}
}

// Create creates a new meal
func (r *MealRepository) Create(ctx context.Context, meal *models.Meal) error {
	query := `
		INSERT INTO meals (id, user_id, name, description, is_on_diet, date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		meal.ID, meal.UserID, meal.Name, meal.Description, meal.IsOnDiet,
		meal.Date.UTC(), meal.CreatedAt.UTC(), meal.UpdatedAt.UTC(),
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
		WHERE user_id = ?
		ORDER BY date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	defer rows.Close()

	meals := []*models.Meal{}
	for rows.Next() {
		meal, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meal: %w", err)
		}
		meals = append(meals, meal)
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
		WHERE id = ? AND user_id = ?
	`
	meal, err := scanMeal(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrMealNotFound
		}
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}
	return meal, nil
}

// Update replaces the mutable fields of a meal
func (r *MealRepository) Update(ctx context.Context, meal *models.Meal) error {
	query := `
		UPDATE meals
		SET name = ?, description = ?, is_on_diet = ?, date = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		meal.Name, meal.Description, meal.IsOnDiet, meal.Date.UTC(), meal.UpdatedAt.UTC(),
		meal.ID, meal.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update meal: %w", err)
	}
	return requireAffected(result)
}

// Delete removes one of a user's meals
func (r *MealRepository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM meals WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	return requireAffected(result)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMeal(row scanner) (*models.Meal, error) {
	var meal models.Meal
	err := row.Scan(
		&meal.ID, &meal.UserID, &meal.Name, &meal.Description, &meal.IsOnDiet,
		&meal.Date, &meal.CreatedAt, &meal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return models.ErrMealNotFound
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"daily-diet-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, session_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, user.ID, user.Name, user.Email, user.SessionID, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// ListBySessionID retrieves every user registered under a session
func (r *UserRepository) ListBySessionID(ctx context.Context, sessionID string) ([]*models.User, error) {
	query := `
		SELECT id, name, email, session_id, created_at
		FROM users
		WHERE session_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.SessionID, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// GetBySessionID retrieves the first user registered under a session
func (r *UserRepository) GetBySessionID(ctx context.Context, sessionID string) (*models.User, error) {
	query := `
		SELECT id, name, email, session_id, created_at
		FROM users
		WHERE session_id = $1
		ORDER BY created_at
		LIMIT 1
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&user.ID, &user.Name, &user.Email, &user.SessionID, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by session: %w", err)
	}
	return &user, nil
}

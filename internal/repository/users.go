package repository

import (
	"database/sql"
	"fmt"

	"github.com/creditdesk/credit-service/internal/models"
)

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO credit.users (username, email, password_hash, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM credit.users
		WHERE email = $1`
	err := r.db.QueryRow(query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UsernameTaken reports whether a user with the given username exists
func (r *Repository) UsernameTaken(username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM credit.users WHERE username = $1)`
	if err := r.db.QueryRow(query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

// UserEmailTaken reports whether a user with the given email exists
func (r *Repository) UserEmailTaken(email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM credit.users WHERE email = $1)`
	if err := r.db.QueryRow(query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user email: %w", err)
	}
	return exists, nil
}

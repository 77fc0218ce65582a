// internal/repository/user_repo.go
package repository

import (
	"context"

	"finance-tracker/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user to the database using the provided DBExecutor.
	// Returns util.ErrUserExists if the email is already registered.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByEmail retrieves a user by their email using the provided DBExecutor.
	GetUserByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
	// GetUserByID retrieves a user by their ID using the provided DBExecutor.
	GetUserByID(ctx context.Context, q DBExecutor, id string) (*domain.User, error)
	// SetRefreshToken unconditionally overwrites the user's stored refresh token.
	SetRefreshToken(ctx context.Context, q DBExecutor, userID, token string) error
	// RotateRefreshToken replaces oldToken with newToken only if oldToken is
	// still the stored one. Returns false when the conditional update matched
	// no row, i.e. the token was already superseded.
	RotateRefreshToken(ctx context.Context, q DBExecutor, userID, oldToken, newToken string) (bool, error)
}

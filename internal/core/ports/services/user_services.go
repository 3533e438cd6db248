package services

import (
	"context"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
)

// NewUserParams carries the fields needed to create a web account.
type NewUserParams struct {
	Username   string
	Password   string
	Role       domain.UserRole
	StudentID  string
	Department string
	Year       string
}

// UserSvcFacade defines account management operations
type UserSvcFacade interface {
	// Authenticate verifies the credentials and returns the account. Only
	// admin accounts may sign in to the backend.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// CreateUser registers a new account with a bcrypt-hashed password.
	CreateUser(ctx context.Context, params NewUserParams) (*domain.User, error)

	// GetUserByUsername retrieves an account by login name.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves every account.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// DeleteUser removes an account; callers cannot delete their own.
	DeleteUser(ctx context.Context, userID, requestingUsername string) error

	// EnsureInitialAdmin creates the bootstrap admin account when no admin
	// exists yet.
	EnsureInitialAdmin(ctx context.Context, username, password string) error
}

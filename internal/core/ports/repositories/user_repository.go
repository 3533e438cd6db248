package repositories

import (
	"context"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
)

// UserReader defines read operations for web accounts
type UserReader interface {
	// FindUserByID retrieves an account by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves an account by its login name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves every account.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CountUsersByRole counts accounts holding the given role.
	CountUsersByRole(ctx context.Context, role domain.UserRole) (int, error)
}

// UserWriter defines write operations for web accounts
type UserWriter interface {
	// SaveUser inserts a new account, rejecting duplicate usernames and
	// duplicate student IDs.
	SaveUser(ctx context.Context, user domain.User) error

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chinmay655/Managment-for-library/internal/apperrors"
	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portsrepo "github.com/chinmay655/Managment-for-library/internal/core/ports/repositories"
	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"github.com/chinmay655/Managment-for-library/internal/middleware"
	"github.com/chinmay655/Managment-for-library/internal/utils"
	"github.com/google/uuid"
)

// userService manages the persistent web accounts. Accounts live outside the
// library aggregate, so this service does not touch the facade's lock.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService wires the account service over its repository.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) *userService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
		}
		logger.Error("Failed to look up user for authentication", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}
	// Only administrators may operate the backend.
	if !user.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", apperrors.ErrForbidden)
	}

	logger.Info("User authenticated", slog.String("username", username))
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, params portssvc.NewUserParams) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if params.Username == "" || params.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}
	switch params.Role {
	case domain.RoleAdmin, domain.RoleUser, domain.RoleStudent:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, params.Role)
	}
	if params.Role == domain.RoleStudent && params.StudentID == "" {
		return nil, fmt.Errorf("%w: student accounts require a student ID", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     params.Username,
		PasswordHash: hash,
		Role:         params.Role,
		StudentID:    params.StudentID,
		Department:   params.Department,
		Year:         params.Year,
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User created", slog.String("username", user.Username), slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx)
}

func (s *userService) DeleteUser(ctx context.Context, userID, requestingUsername string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Username == requestingUsername {
		return fmt.Errorf("%w: cannot delete your own account", apperrors.ErrConflict)
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	logger.Info("User deleted", slog.String("username", user.Username))
	return nil
}

func (s *userService) EnsureInitialAdmin(ctx context.Context, username, password string) error {
	admins, err := s.userRepo.CountUsersByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to count admin accounts: %w", err)
	}
	if admins > 0 {
		return nil
	}

	_, err = s.CreateUser(ctx, portssvc.NewUserParams{
		Username: username,
		Password: password,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to create initial admin: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Initial admin account created", slog.String("username", username))
	return nil
}

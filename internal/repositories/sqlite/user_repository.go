// Package sqlite persists web accounts in a local SQLite database. Accounts
// live outside the in-memory library aggregate and must survive restarts.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/chinmay655/Managment-for-library/internal/apperrors"
	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portsrepo "github.com/chinmay655/Managment-for-library/internal/core/ports/repositories"
	"github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id TEXT PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL,
	student_id TEXT,
	department TEXT,
	year TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_student_id
	ON users(student_id) WHERE student_id IS NOT NULL AND student_id != '';
`

// UserRepository stores accounts in SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository opens (or creates) the database at path and applies the
// schema. The caller owns closing the returned repository.
func NewUserRepository(path string) (*UserRepository, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_fk=1", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open users database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply users schema: %w", err)
	}
	return &UserRepository{db: db}, nil
}

// Close releases the underlying database handle.
func (r *UserRepository) Close() error {
	return r.db.Close()
}

// Ensure implementation matches interface
var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users(user_id, username, password_hash, role, student_id, department, year)
		 VALUES(?, ?, ?, ?, ?, ?, ?)`,
		user.UserID, user.Username, user.PasswordHash, string(user.Role),
		user.StudentID, user.Department, user.Year,
	)
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "student_id") {
				return fmt.Errorf("%w: student ID %s already registered", apperrors.ErrDuplicate, user.StudentID)
			}
			return fmt.Errorf("%w: username %s already taken", apperrors.ErrDuplicate, user.Username)
		}
		return fmt.Errorf("failed to save user %s: %w", user.Username, err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, `SELECT user_id, username, password_hash, role, student_id, department, year
		FROM users WHERE user_id = ?`, userID)
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUser(ctx, `SELECT user_id, username, password_hash, role, student_id, department, year
		FROM users WHERE username = ?`, username)
}

func (r *UserRepository) findUser(ctx context.Context, query, key string) (*domain.User, error) {
	var user domain.User
	var role string
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&user.UserID, &user.Username, &user.PasswordHash, &role,
		&user.StudentID, &user.Department, &user.Year,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", key, err)
	}
	user.Role = domain.UserRole(role)
	return &user, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id, username, password_hash, role, student_id, department, year
		FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		var role string
		if err := rows.Scan(&user.UserID, &user.Username, &user.PasswordHash, &role,
			&user.StudentID, &user.Department, &user.Year); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		user.Role = domain.UserRole(role)
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) CountUsersByRole(ctx context.Context, role domain.UserRole) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = ?`, string(role)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users by role %s: %w", role, err)
	}
	return count, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return errors.Is(sqliteErr.ExtendedCode, sqlite3.ErrConstraintUnique) ||
			errors.Is(sqliteErr.ExtendedCode, sqlite3.ErrConstraintPrimaryKey)
	}
	return false
}

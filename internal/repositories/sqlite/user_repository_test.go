package sqlite_test

import (
	"context"
	"testing"

	"github.com/chinmay655/Managment-for-library/internal/apperrors"
	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	"github.com/chinmay655/Managment-for-library/internal/repositories/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *sqlite.UserRepository {
	t.Helper()
	repo, err := sqlite.NewUserRepository(t.TempDir() + "/users.db")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestUserRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	user := domain.User{
		UserID:       "U1",
		Username:     "admin",
		PasswordHash: "hash",
		Role:         domain.RoleAdmin,
	}
	require.NoError(t, repo.SaveUser(ctx, user))

	byName, err := repo.FindUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, user, *byName)

	byID, err := repo.FindUserByID(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, "admin", byID.Username)

	_, err = repo.FindUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.SaveUser(ctx, domain.User{UserID: "U1", Username: "admin", PasswordHash: "h", Role: domain.RoleAdmin}))

	err := repo.SaveUser(ctx, domain.User{UserID: "U2", Username: "admin", PasswordHash: "h", Role: domain.RoleUser})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestUserRepository_DuplicateStudentID(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	student := domain.User{UserID: "U1", Username: "s1", PasswordHash: "h", Role: domain.RoleStudent, StudentID: "ST-1"}
	require.NoError(t, repo.SaveUser(ctx, student))

	err := repo.SaveUser(ctx, domain.User{UserID: "U2", Username: "s2", PasswordHash: "h", Role: domain.RoleStudent, StudentID: "ST-1"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	// Accounts without a student ID never collide on it.
	require.NoError(t, repo.SaveUser(ctx, domain.User{UserID: "U3", Username: "u3", PasswordHash: "h", Role: domain.RoleUser}))
	require.NoError(t, repo.SaveUser(ctx, domain.User{UserID: "U4", Username: "u4", PasswordHash: "h", Role: domain.RoleUser}))
}

func TestUserRepository_CountAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.SaveUser(ctx, domain.User{UserID: "U1", Username: "admin", PasswordHash: "h", Role: domain.RoleAdmin}))
	require.NoError(t, repo.SaveUser(ctx, domain.User{UserID: "U2", Username: "librarian", PasswordHash: "h", Role: domain.RoleUser}))

	admins, err := repo.CountUsersByRole(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, admins)

	require.NoError(t, repo.DeleteUser(ctx, "U2"))
	assert.ErrorIs(t, repo.DeleteUser(ctx, "U2"), apperrors.ErrNotFound)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
}

package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/chinmay655/Managment-for-library/internal/apperrors"
	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"github.com/chinmay655/Managment-for-library/internal/core/services"
	"github.com/chinmay655/Managment-for-library/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) CountUsersByRole(ctx context.Context, role domain.UserRole) (int, error) {
	args := m.Called(ctx, role)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) adminUser(username, password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       "U1",
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	user := suite.adminUser("admin", "admin123")
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "admin").Return(user, nil).Once()

	got, err := suite.service.Authenticate(suite.ctx, "admin", "admin123")
	suite.NoError(err)
	suite.Equal("admin", got.Username)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	user := suite.adminUser("admin", "admin123")
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "admin").Return(user, nil).Once()

	_, err := suite.service.Authenticate(suite.ctx, "admin", "nope")
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUser() {
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "ghost").
		Return(nil, fmt.Errorf("%w: user ghost", apperrors.ErrNotFound)).Once()

	_, err := suite.service.Authenticate(suite.ctx, "ghost", "pw")
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticate_NonAdminRejected() {
	hash, err := utils.HashPassword("pw")
	suite.Require().NoError(err)
	student := &domain.User{UserID: "U2", Username: "student", PasswordHash: hash, Role: domain.RoleStudent}
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "student").Return(student, nil).Once()

	_, authErr := suite.service.Authenticate(suite.ctx, "student", "pw")
	suite.ErrorIs(authErr, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "librarian" &&
			u.Role == domain.RoleUser &&
			u.UserID != "" &&
			u.PasswordHash != "secret" &&
			utils.CheckPasswordHash("secret", u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, portssvc.NewUserParams{
		Username: "librarian",
		Password: "secret",
		Role:     domain.RoleUser,
	})
	suite.NoError(err)
	suite.Equal("librarian", user.Username)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_Validation() {
	_, err := suite.service.CreateUser(suite.ctx, portssvc.NewUserParams{Username: "", Password: "pw", Role: domain.RoleUser})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateUser(suite.ctx, portssvc.NewUserParams{Username: "x", Password: "pw", Role: domain.UserRole("boss")})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateUser(suite.ctx, portssvc.NewUserParams{Username: "x", Password: "pw", Role: domain.RoleStudent})
	suite.ErrorIs(err, apperrors.ErrValidation) // students need a student ID
}

func (suite *UserServiceTestSuite) TestDeleteUser_CannotDeleteOwnAccount() {
	user := &domain.User{UserID: "U1", Username: "admin", Role: domain.RoleAdmin}
	suite.mockRepo.On("FindUserByID", suite.ctx, "U1").Return(user, nil).Once()

	err := suite.service.DeleteUser(suite.ctx, "U1", "admin")
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	user := &domain.User{UserID: "U2", Username: "librarian", Role: domain.RoleUser}
	suite.mockRepo.On("FindUserByID", suite.ctx, "U2").Return(user, nil).Once()
	suite.mockRepo.On("DeleteUser", suite.ctx, "U2").Return(nil).Once()

	suite.NoError(suite.service.DeleteUser(suite.ctx, "U2", "admin"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureInitialAdmin_SkipsWhenAdminExists() {
	suite.mockRepo.On("CountUsersByRole", suite.ctx, domain.RoleAdmin).Return(1, nil).Once()

	suite.NoError(suite.service.EnsureInitialAdmin(suite.ctx, "admin", "admin123"))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestEnsureInitialAdmin_CreatesBootstrapAccount() {
	suite.mockRepo.On("CountUsersByRole", suite.ctx, domain.RoleAdmin).Return(0, nil).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "admin" && u.Role == domain.RoleAdmin
	})).Return(nil).Once()

	suite.NoError(suite.service.EnsureInitialAdmin(suite.ctx, "admin", "admin123"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/apperrors"
	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portsrepo "github.com/chinmay655/Managment-for-library/internal/core/ports/repositories"
	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"github.com/chinmay655/Managment-for-library/internal/dto"
	"github.com/chinmay655/Managment-for-library/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LibraryService ---
type MockLibraryService struct {
	mock.Mock
}

func (m *MockLibraryService) AddBook(ctx context.Context, book domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockLibraryService) RemoveBook(ctx context.Context, bookID string) error {
	args := m.Called(ctx, bookID)
	return args.Error(0)
}
func (m *MockLibraryService) GetBook(ctx context.Context, bookID string) (*domain.Book, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockLibraryService) ListAllBooks(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockLibraryService) ListAvailableBooks(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockLibraryService) SearchBooks(ctx context.Context, query string, field portsrepo.SearchField) ([]domain.Book, error) {
	args := m.Called(ctx, query, field)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockLibraryService) AddMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockLibraryService) RemoveMember(ctx context.Context, memberID string) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}
func (m *MockLibraryService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockLibraryService) ListAllMembers(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockLibraryService) BorrowBook(ctx context.Context, memberID, bookID string) error {
	args := m.Called(ctx, memberID, bookID)
	return args.Error(0)
}
func (m *MockLibraryService) ReturnBook(ctx context.Context, memberID, bookID string) error {
	args := m.Called(ctx, memberID, bookID)
	return args.Error(0)
}
func (m *MockLibraryService) CheckInMember(ctx context.Context, memberID string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}
func (m *MockLibraryService) CheckInVisitor(ctx context.Context, visitorID, name, purpose string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, visitorID, name, purpose)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}
func (m *MockLibraryService) CheckInStaff(ctx context.Context, staffID, name string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, staffID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}
func (m *MockLibraryService) CheckOut(ctx context.Context, visitorID string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, visitorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}
func (m *MockLibraryService) CurrentVisitors(ctx context.Context) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}
func (m *MockLibraryService) DailyAttendance(ctx context.Context, date time.Time) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}
func (m *MockLibraryService) DailyAttendanceStats(ctx context.Context, date time.Time) (domain.AttendanceStats, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(domain.AttendanceStats), args.Error(1)
}
func (m *MockLibraryService) WeeklyAttendanceStats(ctx context.Context, weekStart time.Time) (domain.WeeklyAttendanceStats, error) {
	args := m.Called(ctx, weekStart)
	return args.Get(0).(domain.WeeklyAttendanceStats), args.Error(1)
}
func (m *MockLibraryService) VisitorHistory(ctx context.Context, visitorID string, limit int) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, visitorID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}
func (m *MockLibraryService) PeakHours(ctx context.Context, date time.Time) (domain.PeakHoursReport, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(domain.PeakHoursReport), args.Error(1)
}
func (m *MockLibraryService) ExportAttendanceReport(ctx context.Context, start, end time.Time) ([]domain.AttendanceReportRow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceReportRow), args.Error(1)
}
func (m *MockLibraryService) LibraryStats(ctx context.Context) (domain.LibraryStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.LibraryStats), args.Error(1)
}
func (m *MockLibraryService) OverdueBooks(ctx context.Context, days int) ([]domain.OverdueLoan, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OverdueLoan), args.Error(1)
}
func (m *MockLibraryService) TransactionHistory(ctx context.Context, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockLibraryService) SearchLibrary(ctx context.Context, query string) (domain.LibrarySearchResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.LibrarySearchResult), args.Error(1)
}
func (m *MockLibraryService) SetupNotifications(notifier portssvc.NotificationSvcFacade) {
	m.Called(notifier)
}
func (m *MockLibraryService) SendOverdueReminders(ctx context.Context, days int) (int, int, error) {
	args := m.Called(ctx, days)
	return args.Int(0), args.Int(1), args.Error(2)
}
func (m *MockLibraryService) SendNotification(ctx context.Context, memberID, subject, body string) error {
	args := m.Called(ctx, memberID, subject, body)
	return args.Error(0)
}
func (m *MockLibraryService) SendBulkNotification(ctx context.Context, subject, body string) (int, int, error) {
	args := m.Called(ctx, subject, body)
	return args.Int(0), args.Int(1), args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.LibrarySvcFacade = (*MockLibraryService)(nil)

// --- Test Suite ---
type BooksHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockLibrary *MockLibraryService
	jwtSecret   string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *BooksHandlerTestSuite) generateTestToken(userID string) string {
	claims := middleware.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "library-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Username: "tester",
		Role:     domain.RoleAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *BooksHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockLibrary = new(MockLibraryService)

	v1 := suite.router.Group("/api/v1")
	registerBookRoutes(v1, suite.mockLibrary)
}

func (suite *BooksHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *BooksHandlerTestSuite) TestCreateBook_Success() {
	reqBody := dto.CreateBookRequest{
		BookID:   "B001",
		Title:    "The Go Programming Language",
		Author:   "Donovan",
		ISBN:     "978-0134190440",
		Category: "Programming",
	}
	suite.mockLibrary.On("AddBook", mock.Anything, mock.MatchedBy(func(b domain.Book) bool {
		return b.BookID == "B001" && b.TotalCopies == 1 && b.AvailableCopies == 1
	})).Return(nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/books", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.BookResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("B001", resp.BookID)
	suite.Equal(1, resp.TotalCopies)
	suite.mockLibrary.AssertExpectations(suite.T())
}

func (suite *BooksHandlerTestSuite) TestCreateBook_ExplicitCopies() {
	copies := 5
	reqBody := dto.CreateBookRequest{
		BookID:      "B002",
		Title:       "Clean Code",
		Author:      "Martin",
		TotalCopies: &copies,
	}
	suite.mockLibrary.On("AddBook", mock.Anything, mock.MatchedBy(func(b domain.Book) bool {
		return b.BookID == "B002" && b.TotalCopies == 5
	})).Return(nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/books", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockLibrary.AssertExpectations(suite.T())
}

func (suite *BooksHandlerTestSuite) TestCreateBook_MissingTitle() {
	w := suite.performRequest(http.MethodPost, "/api/v1/books", gin.H{"bookID": "B003", "author": "Nobody"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLibrary.AssertNotCalled(suite.T(), "AddBook")
}

func (suite *BooksHandlerTestSuite) TestCreateBook_Duplicate() {
	reqBody := dto.CreateBookRequest{BookID: "B001", Title: "Dup", Author: "Dup"}
	suite.mockLibrary.On("AddBook", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: book ID B001 already exists", apperrors.ErrDuplicate)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/books", reqBody)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockLibrary.AssertExpectations(suite.T())
}

func (suite *BooksHandlerTestSuite) TestGetBook_Success() {
	book := domain.NewBook("B001", "Dune", "Herbert", "", "Sci-Fi", 2)
	suite.mockLibrary.On("GetBook", mock.Anything, "B001").Return(&book, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/books/B001", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BookResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Dune", resp.Title)
	suite.Equal(2, resp.AvailableCopies)
	suite.mockLibrary.AssertExpectations(suite.T())
}

func (suite *BooksHandlerTestSuite) TestGetBook_NotFound() {
	suite.mockLibrary.On("GetBook", mock.Anything, "missing").
		Return(nil, fmt.Errorf("%w: book missing", apperrors.ErrNotFound)).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/books/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLibrary.AssertExpectations(suite.T())
}

func (suite *BooksHandlerTestSuite) TestListBooks_All() {
	books := []domain.Book{
		domain.NewBook("B001", "Dune", "Herbert", "", "Sci-Fi", 2),
		domain.NewBook("B002", "Emma", "Austen", "", "Classic", 1),
	}
	suite.mockLibrary.On("ListAllBooks", mock.Anything).Return(books, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/books", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.BookResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.mockLibrary.AssertExpectations(suite.T())
}

func (suite *BooksHandlerTestSuite) TestListBooks_AvailableOnly() {
	books := []domain.Book{domain.NewBook("B001", "Dune", "Herbert", "", "Sci-Fi", 2)}
	suite.mockLibrary.On("ListAvailableBooks", mock.Anything).Return(books, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/books?available=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLibrary.AssertNotCalled(suite.T(), "ListAllBooks")
	suite.mockLibrary.AssertExpectations(suite.T())
}

func (suite *BooksHandlerTestSuite) TestSearchBooks_DefaultsToTitle() {
	books := []domain.Book{domain.NewBook("B001", "Dune", "Herbert", "", "Sci-Fi", 2)}
	suite.mockLibrary.On("SearchBooks", mock.Anything, "dune", portsrepo.SearchByTitle).Return(books, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/books/search?q=dune", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLibrary.AssertExpectations(suite.T())
}

func (suite *BooksHandlerTestSuite) TestSearchBooks_RejectsUnknownField() {
	w := suite.performRequest(http.MethodGet, "/api/v1/books/search?q=dune&field=publisher", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLibrary.AssertNotCalled(suite.T(), "SearchBooks")
}

func (suite *BooksHandlerTestSuite) TestDeleteBook_BlockedWhileOnLoan() {
	suite.mockLibrary.On("RemoveBook", mock.Anything, "B001").
		Return(fmt.Errorf("%w: book B001 has copies on loan", apperrors.ErrConflict)).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/books/B001", nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockLibrary.AssertExpectations(suite.T())
}

func (suite *BooksHandlerTestSuite) TestDeleteBook_Success() {
	suite.mockLibrary.On("RemoveBook", mock.Anything, "B001").Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/books/B001", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLibrary.AssertExpectations(suite.T())
}

func (suite *BooksHandlerTestSuite) TestMissingToken_Unauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLibrary.AssertNotCalled(suite.T(), "ListAllBooks")
}

func TestBooksHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BooksHandlerTestSuite))
}

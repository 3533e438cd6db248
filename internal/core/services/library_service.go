package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/apperrors"
	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portsrepo "github.com/chinmay655/Managment-for-library/internal/core/ports/repositories"
	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"github.com/chinmay655/Managment-for-library/internal/middleware"
	"github.com/google/uuid"
)

// reportTimeLayout is the human-readable timestamp format used in exported
// attendance reports.
const reportTimeLayout = "2006-01-02 15:04:05"

// libraryService is the facade over the whole library aggregate. A single
// RWMutex serializes every operation: the memory repositories behind it carry
// no locking of their own.
type libraryService struct {
	mu sync.RWMutex

	catalogRepo    portsrepo.CatalogRepositoryFacade
	memberRepo     portsrepo.MemberRepositoryFacade
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	txnLog         portsrepo.TransactionLogger

	// notifier stays nil until SetupNotifications; notification operations
	// report the gateway unavailable while unset.
	notifier portssvc.NotificationSvcFacade
}

// NewLibraryService wires the facade over its repositories.
func NewLibraryService(repos portsrepo.RepositoryProvider) *libraryService {
	return &libraryService{
		catalogRepo:    repos.CatalogRepo,
		memberRepo:     repos.MemberRepo,
		attendanceRepo: repos.AttendanceRepo,
		txnLog:         repos.TransactionLog,
	}
}

// logTransaction appends an audit entry. Called with the write lock held,
// after the mutation it describes has succeeded.
func (s *libraryService) logTransaction(ctx context.Context, action domain.TransactionAction, description string) {
	err := s.txnLog.Append(ctx, domain.Transaction{
		Timestamp:   time.Now(),
		Action:      action,
		Description: description,
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to append transaction log entry",
			slog.String("error", err.Error()), slog.String("action", string(action)))
	}
}

func (s *libraryService) AddBook(ctx context.Context, book domain.Book) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if book.BookID == "" || book.Title == "" || book.Author == "" {
		return fmt.Errorf("%w: book ID, title and author are required", apperrors.ErrValidation)
	}
	if book.TotalCopies < 0 {
		return fmt.Errorf("%w: total copies cannot be negative", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.catalogRepo.FindBookByID(ctx, book.BookID); err == nil {
		return fmt.Errorf("%w: book %s already exists", apperrors.ErrDuplicate, book.BookID)
	}

	// All copies start on the shelf regardless of what the caller sent.
	entry := domain.NewBook(book.BookID, book.Title, book.Author, book.ISBN, book.Category, book.TotalCopies)
	if err := s.catalogRepo.SaveBook(ctx, entry); err != nil {
		logger.Error("Failed to save book", slog.String("error", err.Error()), slog.String("book_id", book.BookID))
		return fmt.Errorf("failed to add book: %w", err)
	}

	s.logTransaction(ctx, domain.ActionAddBook, fmt.Sprintf("Added book: %s", entry.Title))
	logger.Info("Book added", slog.String("book_id", entry.BookID))
	return nil
}

func (s *libraryService) RemoveBook(ctx context.Context, bookID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.catalogRepo.FindBookByID(ctx, bookID)
	if err != nil {
		return err
	}
	if book.AvailableCopies < book.TotalCopies {
		return fmt.Errorf("%w: book %s has copies on loan", apperrors.ErrConflict, bookID)
	}
	if err := s.catalogRepo.DeleteBook(ctx, bookID); err != nil {
		logger.Error("Failed to delete book", slog.String("error", err.Error()), slog.String("book_id", bookID))
		return fmt.Errorf("failed to remove book: %w", err)
	}

	s.logTransaction(ctx, domain.ActionRemoveBook, fmt.Sprintf("Removed book: %s", book.Title))
	logger.Info("Book removed", slog.String("book_id", bookID))
	return nil
}

func (s *libraryService) GetBook(ctx context.Context, bookID string) (*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalogRepo.FindBookByID(ctx, bookID)
}

func (s *libraryService) ListAllBooks(ctx context.Context) ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalogRepo.ListBooks(ctx)
}

func (s *libraryService) ListAvailableBooks(ctx context.Context) ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalogRepo.ListAvailableBooks(ctx)
}

func (s *libraryService) SearchBooks(ctx context.Context, query string, field portsrepo.SearchField) ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalogRepo.SearchBooks(ctx, query, field)
}

func (s *libraryService) AddMember(ctx context.Context, member domain.Member) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if member.MemberID == "" || member.Name == "" {
		return fmt.Errorf("%w: member ID and name are required", apperrors.ErrValidation)
	}
	if member.MembershipType != domain.Regular && member.MembershipType != domain.Premium {
		return fmt.Errorf("%w: unknown membership type %q", apperrors.ErrValidation, member.MembershipType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.memberRepo.FindMemberByID(ctx, member.MemberID); err == nil {
		return fmt.Errorf("%w: member %s already exists", apperrors.ErrDuplicate, member.MemberID)
	}

	entry := domain.NewMember(member.MemberID, member.Name, member.Email, member.Phone, member.MembershipType, time.Now())
	if err := s.memberRepo.SaveMember(ctx, entry); err != nil {
		logger.Error("Failed to save member", slog.String("error", err.Error()), slog.String("member_id", member.MemberID))
		return fmt.Errorf("failed to add member: %w", err)
	}

	s.logTransaction(ctx, domain.ActionAddMember, fmt.Sprintf("Added member: %s", entry.Name))
	logger.Info("Member added", slog.String("member_id", entry.MemberID))
	return nil
}

func (s *libraryService) RemoveMember(ctx context.Context, memberID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return err
	}
	if len(member.BorrowedBooks) > 0 {
		return fmt.Errorf("%w: member %s still holds %d books", apperrors.ErrConflict, memberID, len(member.BorrowedBooks))
	}
	if err := s.memberRepo.DeleteMember(ctx, memberID); err != nil {
		logger.Error("Failed to delete member", slog.String("error", err.Error()), slog.String("member_id", memberID))
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.logTransaction(ctx, domain.ActionRemoveMember, fmt.Sprintf("Removed member: %s", member.Name))
	logger.Info("Member removed", slog.String("member_id", memberID))
	return nil
}

func (s *libraryService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.memberRepo.FindMemberByID(ctx, memberID)
}

func (s *libraryService) ListAllMembers(ctx context.Context) ([]domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.memberRepo.ListMembers(ctx)
}

func (s *libraryService) BorrowBook(ctx context.Context, memberID, bookID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return err
	}
	book, err := s.catalogRepo.FindBookByID(ctx, bookID)
	if err != nil {
		return err
	}
	if member.Holds(bookID) {
		return fmt.Errorf("%w: member %s already holds book %s", apperrors.ErrDuplicate, memberID, bookID)
	}
	if !member.CanBorrow() {
		return fmt.Errorf("%w: member %s is at their borrowing cap of %d", apperrors.ErrLimitExceeded, memberID, member.MaxBooks())
	}
	if !book.IsAvailable() {
		return fmt.Errorf("%w: no copies of book %s available", apperrors.ErrUnavailable, bookID)
	}

	now := time.Now()
	if err := s.catalogRepo.RecordLoan(ctx, bookID, memberID, now); err != nil {
		return err
	}
	if err := s.memberRepo.RecordBorrow(ctx, memberID, bookID); err != nil {
		// Undo the catalog step so the aggregate stays consistent.
		if _, undoErr := s.catalogRepo.ReleaseLoan(ctx, bookID, memberID); undoErr != nil {
			logger.Error("Failed to undo catalog loan after directory rejection",
				slog.String("error", undoErr.Error()), slog.String("book_id", bookID), slog.String("member_id", memberID))
		}
		return err
	}

	s.logTransaction(ctx, domain.ActionBorrow, fmt.Sprintf("Member %s borrowed %s", member.Name, book.Title))
	logger.Info("Book borrowed", slog.String("book_id", bookID), slog.String("member_id", memberID))
	return nil
}

func (s *libraryService) ReturnBook(ctx context.Context, memberID, bookID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return err
	}
	book, err := s.catalogRepo.FindBookByID(ctx, bookID)
	if err != nil {
		return err
	}

	borrowedAt, err := s.catalogRepo.ReleaseLoan(ctx, bookID, memberID)
	if err != nil {
		return err
	}
	if err := s.memberRepo.RecordReturn(ctx, memberID, bookID, borrowedAt, time.Now()); err != nil {
		// Put the copy back on loan so the aggregate stays consistent.
		if undoErr := s.catalogRepo.RecordLoan(ctx, bookID, memberID, borrowedAt); undoErr != nil {
			logger.Error("Failed to undo catalog release after directory rejection",
				slog.String("error", undoErr.Error()), slog.String("book_id", bookID), slog.String("member_id", memberID))
		}
		return err
	}

	s.logTransaction(ctx, domain.ActionReturn, fmt.Sprintf("Member %s returned %s", member.Name, book.Title))
	logger.Info("Book returned", slog.String("book_id", bookID), slog.String("member_id", memberID))
	return nil
}

func (s *libraryService) LibraryStats(ctx context.Context) (domain.LibraryStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books, err := s.catalogRepo.ListBooks(ctx)
	if err != nil {
		return domain.LibraryStats{}, err
	}
	members, err := s.memberRepo.ListMembers(ctx)
	if err != nil {
		return domain.LibraryStats{}, err
	}

	stats := domain.LibraryStats{
		TotalBooks:   len(books),
		TotalMembers: len(members),
	}
	for _, book := range books {
		stats.TotalCopies += book.TotalCopies
		stats.AvailableCopies += book.AvailableCopies
		stats.BorrowedCopies += len(book.BorrowedBy)
	}
	for _, member := range members {
		if len(member.BorrowedBooks) > 0 {
			stats.ActiveMembers++
		}
	}
	return stats, nil
}

func (s *libraryService) OverdueBooks(ctx context.Context, days int) ([]domain.OverdueLoan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overdueLoans(ctx, days)
}

// overdueLoans collects every loan older than the threshold. Caller must hold
// at least the read lock.
func (s *libraryService) overdueLoans(ctx context.Context, days int) ([]domain.OverdueLoan, error) {
	books, err := s.catalogRepo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	threshold := time.Duration(days) * 24 * time.Hour
	overdue := make([]domain.OverdueLoan, 0)

	for _, book := range books {
		// Sort borrower IDs so results are deterministic.
		borrowerIDs := make([]string, 0, len(book.BorrowedBy))
		for memberID := range book.BorrowedBy {
			borrowerIDs = append(borrowerIDs, memberID)
		}
		sort.Strings(borrowerIDs)

		for _, memberID := range borrowerIDs {
			borrowedAt := book.BorrowedBy[memberID]
			elapsed := now.Sub(borrowedAt)
			if elapsed <= threshold {
				continue
			}
			member, err := s.memberRepo.FindMemberByID(ctx, memberID)
			if err != nil {
				return nil, err
			}
			overdue = append(overdue, domain.OverdueLoan{
				Book:        book,
				Member:      *member,
				BorrowedAt:  borrowedAt,
				DaysOverdue: int(elapsed.Hours() / 24),
			})
		}
	}
	return overdue, nil
}

func (s *libraryService) TransactionHistory(ctx context.Context, limit int) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.txnLog.History(ctx, limit)
}

func (s *libraryService) SearchLibrary(ctx context.Context, query string) (domain.LibrarySearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := domain.LibrarySearchResult{
		Books:   make([]domain.Book, 0),
		Members: make([]domain.Member, 0),
	}
	if strings.TrimSpace(query) == "" {
		return result, nil
	}

	// Books match on title, author or ISBN; de-duplicate across fields.
	seen := make(map[string]bool)
	for _, field := range []portsrepo.SearchField{portsrepo.SearchByTitle, portsrepo.SearchByAuthor, portsrepo.SearchByISBN} {
		found, err := s.catalogRepo.SearchBooks(ctx, query, field)
		if err != nil {
			return domain.LibrarySearchResult{}, err
		}
		for _, book := range found {
			if !seen[book.BookID] {
				seen[book.BookID] = true
				result.Books = append(result.Books, book)
			}
		}
	}

	members, err := s.memberRepo.ListMembers(ctx)
	if err != nil {
		return domain.LibrarySearchResult{}, err
	}
	needle := strings.ToLower(query)
	for _, member := range members {
		if strings.Contains(strings.ToLower(member.Name), needle) ||
			strings.Contains(strings.ToLower(member.Email), needle) ||
			strings.Contains(member.MemberID, query) {
			result.Members = append(result.Members, member)
		}
	}
	return result, nil
}

func (s *libraryService) CheckInMember(ctx context.Context, memberID string) (*domain.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return s.checkIn(ctx, memberID, member.Name, domain.VisitorMember, "")
}

func (s *libraryService) CheckInVisitor(ctx context.Context, visitorID, name, purpose string) (*domain.AttendanceRecord, error) {
	if visitorID == "" || name == "" {
		return nil, fmt.Errorf("%w: visitor ID and name are required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkIn(ctx, visitorID, name, domain.VisitorGuest, purpose)
}

func (s *libraryService) CheckInStaff(ctx context.Context, staffID, name string) (*domain.AttendanceRecord, error) {
	if staffID == "" || name == "" {
		return nil, fmt.Errorf("%w: staff ID and name are required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkIn(ctx, staffID, name, domain.VisitorStaff, "")
}

// checkIn opens a visit. Caller must hold the write lock.
func (s *libraryService) checkIn(ctx context.Context, visitorID, name string, visitorType domain.VisitorType, purpose string) (*domain.AttendanceRecord, error) {
	record := domain.AttendanceRecord{
		RecordID:    uuid.NewString(),
		VisitorID:   visitorID,
		Name:        name,
		VisitorType: visitorType,
		EntryTime:   time.Now(),
		Purpose:     purpose,
		IsActive:    true,
	}
	if err := s.attendanceRepo.CheckIn(ctx, record); err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Visitor checked in",
		slog.String("visitor_id", visitorID), slog.String("visitor_type", string(visitorType)))
	return &record, nil
}

func (s *libraryService) CheckOut(ctx context.Context, visitorID string) (*domain.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.attendanceRepo.CheckOut(ctx, visitorID, time.Now())
	if err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Visitor checked out", slog.String("visitor_id", visitorID))
	return record, nil
}

func (s *libraryService) CurrentVisitors(ctx context.Context) ([]domain.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attendanceRepo.CurrentVisitors(ctx)
}

func (s *libraryService) DailyAttendance(ctx context.Context, date time.Time) ([]domain.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attendanceRepo.DailyAttendance(ctx, date)
}

func (s *libraryService) DailyAttendanceStats(ctx context.Context, date time.Time) (domain.AttendanceStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attendanceRepo.DailyStats(ctx, date)
}

func (s *libraryService) WeeklyAttendanceStats(ctx context.Context, weekStart time.Time) (domain.WeeklyAttendanceStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	weekly := domain.WeeklyAttendanceStats{
		DailyBreakdown: make(map[string]domain.AttendanceStats, 7),
	}
	for day := 0; day < 7; day++ {
		date := weekStart.AddDate(0, 0, day)
		stats, err := s.attendanceRepo.DailyStats(ctx, date)
		if err != nil {
			return domain.WeeklyAttendanceStats{}, err
		}
		weekly.DailyBreakdown[domain.DayKey(date)] = stats
		weekly.TotalVisitors += stats.TotalVisitors
		weekly.Members += stats.Members
		weekly.Visitors += stats.Visitors
		weekly.Staff += stats.Staff
	}
	return weekly, nil
}

func (s *libraryService) VisitorHistory(ctx context.Context, visitorID string, limit int) ([]domain.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attendanceRepo.VisitorHistory(ctx, visitorID, limit)
}

func (s *libraryService) PeakHours(ctx context.Context, date time.Time) (domain.PeakHoursReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.attendanceRepo.DailyAttendance(ctx, date)
	if err != nil {
		return domain.PeakHoursReport{}, err
	}

	report := domain.PeakHoursReport{
		HourlyBreakdown: make(map[int]int),
		PeakHour:        -1,
	}
	hourOrder := make([]int, 0, 24)
	for _, record := range records {
		hour := record.EntryTime.Hour()
		if report.HourlyBreakdown[hour] == 0 {
			hourOrder = append(hourOrder, hour)
		}
		report.HourlyBreakdown[hour]++
	}
	// Ties keep the hour that reached the top first, in check-in order.
	for _, hour := range hourOrder {
		if report.HourlyBreakdown[hour] > report.PeakCount {
			report.PeakHour = hour
			report.PeakCount = report.HourlyBreakdown[hour]
		}
	}
	return report, nil
}

func (s *libraryService) ExportAttendanceReport(ctx context.Context, start, end time.Time) ([]domain.AttendanceReportRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.attendanceRepo.RecordsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.AttendanceReportRow, 0, len(records))
	for _, record := range records {
		row := domain.AttendanceReportRow{
			VisitorID:   record.VisitorID,
			Name:        record.Name,
			VisitorType: record.VisitorType,
			EntryTime:   record.EntryTime.Format(reportTimeLayout),
			ExitTime:    "Still Present",
			Purpose:     record.Purpose,
		}
		if minutes, done := record.DurationMinutes(); done {
			row.ExitTime = record.ExitTime.Format(reportTimeLayout)
			duration := minutes
			row.DurationMinutes = &duration
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *libraryService) SetupNotifications(notifier portssvc.NotificationSvcFacade) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = notifier
}

func (s *libraryService) SendNotification(ctx context.Context, memberID, subject, body string) error {
	s.mu.RLock()
	notifier := s.notifier
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	s.mu.RUnlock()

	if err != nil {
		return err
	}
	if notifier == nil {
		return fmt.Errorf("%w: notifications are not configured", apperrors.ErrUnavailable)
	}
	if member.Email == "" {
		return fmt.Errorf("%w: member %s has no email address", apperrors.ErrValidation, memberID)
	}
	return notifier.SendEmail(ctx, member.Email, subject, body)
}

func (s *libraryService) SendBulkNotification(ctx context.Context, subject, body string) (int, int, error) {
	s.mu.RLock()
	notifier := s.notifier
	members, err := s.memberRepo.ListMembers(ctx)
	s.mu.RUnlock()

	if err != nil {
		return 0, 0, err
	}
	if notifier == nil {
		return 0, 0, fmt.Errorf("%w: notifications are not configured", apperrors.ErrUnavailable)
	}

	// Members without an email count as failures so sent+failed always adds
	// up to the membership.
	recipients := make([]string, 0, len(members))
	noEmail := 0
	for _, member := range members {
		if member.Email == "" {
			noEmail++
			continue
		}
		recipients = append(recipients, member.Email)
	}
	sent, failed := notifier.SendBulkEmails(ctx, recipients, subject, body)
	return sent, failed + noEmail, nil
}

func (s *libraryService) SendOverdueReminders(ctx context.Context, days int) (int, int, error) {
	// Snapshot the overdue loans under the lock, then talk to the transport
	// without holding it.
	s.mu.RLock()
	notifier := s.notifier
	overdue, err := s.overdueLoans(ctx, days)
	s.mu.RUnlock()

	if err != nil {
		return 0, 0, err
	}
	if notifier == nil {
		return 0, 0, fmt.Errorf("%w: notifications are not configured", apperrors.ErrUnavailable)
	}
	sent, failed := notifier.SendOverdueReminders(ctx, overdue)
	return sent, failed, nil
}

package services

import (
	"context"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portsrepo "github.com/chinmay655/Managment-for-library/internal/core/ports/repositories"
)

// CatalogSvc defines book inventory operations
type CatalogSvc interface {
	// AddBook registers a new title in the catalog.
	AddBook(ctx context.Context, book domain.Book) error

	// RemoveBook deletes a title; it fails while any copy is on loan.
	RemoveBook(ctx context.Context, bookID string) error

	// GetBook retrieves a single book by ID.
	GetBook(ctx context.Context, bookID string) (*domain.Book, error)

	// ListAllBooks retrieves the whole catalog.
	ListAllBooks(ctx context.Context) ([]domain.Book, error)

	// ListAvailableBooks retrieves books with at least one lendable copy.
	ListAvailableBooks(ctx context.Context) ([]domain.Book, error)

	// SearchBooks retrieves books matching the query on the given field.
	SearchBooks(ctx context.Context, query string, field portsrepo.SearchField) ([]domain.Book, error)
}

// MemberSvc defines membership directory operations
type MemberSvc interface {
	// AddMember registers a new member.
	AddMember(ctx context.Context, member domain.Member) error

	// RemoveMember deletes a member; it fails while they hold any book.
	RemoveMember(ctx context.Context, memberID string) error

	// GetMember retrieves a single member by ID.
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)

	// ListAllMembers retrieves every registered member.
	ListAllMembers(ctx context.Context) ([]domain.Member, error)
}

// CirculationSvc defines the borrow/return workflow
type CirculationSvc interface {
	// BorrowBook lends one copy of a book to a member, enforcing
	// availability, the member's cap, and the no-double-borrow rule as one
	// atomic operation.
	BorrowBook(ctx context.Context, memberID, bookID string) error

	// ReturnBook takes a copy back from a member, moving the loan into the
	// member's history with its original borrow time.
	ReturnBook(ctx context.Context, memberID, bookID string) error
}

// AttendanceSvc defines visitor tracking operations
type AttendanceSvc interface {
	// CheckInMember opens a visit for a registered member; the member must
	// exist in the directory.
	CheckInMember(ctx context.Context, memberID string) (*domain.AttendanceRecord, error)

	// CheckInVisitor opens a visit for a walk-in guest with a stated purpose.
	CheckInVisitor(ctx context.Context, visitorID, name, purpose string) (*domain.AttendanceRecord, error)

	// CheckInStaff opens a visit for a staff member.
	CheckInStaff(ctx context.Context, staffID, name string) (*domain.AttendanceRecord, error)

	// CheckOut closes the visitor's open visit and returns the completed
	// record.
	CheckOut(ctx context.Context, visitorID string) (*domain.AttendanceRecord, error)

	// CurrentVisitors retrieves everyone currently inside, oldest entry first.
	CurrentVisitors(ctx context.Context) ([]domain.AttendanceRecord, error)

	// DailyAttendance retrieves all records for one calendar date.
	DailyAttendance(ctx context.Context, date time.Time) ([]domain.AttendanceRecord, error)

	// DailyAttendanceStats retrieves the check-in counters for one date.
	DailyAttendanceStats(ctx context.Context, date time.Time) (domain.AttendanceStats, error)

	// WeeklyAttendanceStats rolls up the seven days starting at weekStart.
	WeeklyAttendanceStats(ctx context.Context, weekStart time.Time) (domain.WeeklyAttendanceStats, error)

	// VisitorHistory retrieves a visitor's past visits in check-in order; a
	// positive limit keeps only the most recent visits.
	VisitorHistory(ctx context.Context, visitorID string, limit int) ([]domain.AttendanceRecord, error)

	// PeakHours builds the hour-of-day check-in histogram for one date.
	PeakHours(ctx context.Context, date time.Time) (domain.PeakHoursReport, error)

	// ExportAttendanceReport flattens records in the inclusive date range
	// into report rows.
	ExportAttendanceReport(ctx context.Context, start, end time.Time) ([]domain.AttendanceReportRow, error)
}

// ReportingSvc defines read-only projections over the aggregate
type ReportingSvc interface {
	// LibraryStats computes the current inventory and membership counters.
	LibraryStats(ctx context.Context) (domain.LibraryStats, error)

	// OverdueBooks lists every loan older than the given number of days.
	OverdueBooks(ctx context.Context, days int) ([]domain.OverdueLoan, error)

	// TransactionHistory retrieves the most recent audit entries in
	// chronological order, all of them when limit <= 0.
	TransactionHistory(ctx context.Context, limit int) ([]domain.Transaction, error)

	// SearchLibrary runs the combined admin search across books and members.
	SearchLibrary(ctx context.Context, query string) (domain.LibrarySearchResult, error)
}

// NotificationOps defines the facade's outbound notification surface. All of
// these degrade gracefully when no sender has been configured.
type NotificationOps interface {
	// SetupNotifications attaches the notification service; until called,
	// notification operations report the gateway as unavailable.
	SetupNotifications(notifier NotificationSvcFacade)

	// SendOverdueReminders emails every borrower with a loan older than the
	// given number of days; returns (sent, failed).
	SendOverdueReminders(ctx context.Context, days int) (int, int, error)

	// SendNotification emails a single member at their registered address.
	SendNotification(ctx context.Context, memberID, subject, body string) error

	// SendBulkNotification emails every member with a registered address;
	// returns (sent, failed). Individual transport failures never abort the
	// loop.
	SendBulkNotification(ctx context.Context, subject, body string) (int, int, error)
}

// LibrarySvcFacade combines all library service interfaces.
// This is a facade for clients that need access to all operations.
type LibrarySvcFacade interface {
	CatalogSvc
	MemberSvc
	CirculationSvc
	AttendanceSvc
	ReportingSvc
	NotificationOps
}

package repositories

import (
	"context"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
)

// AttendanceReader defines read operations for attendance records
type AttendanceReader interface {
	// CurrentVisitors retrieves all open visits, oldest entry first.
	CurrentVisitors(ctx context.Context) ([]domain.AttendanceRecord, error)

	// DailyAttendance retrieves every record whose entry falls on the given
	// calendar date.
	DailyAttendance(ctx context.Context, date time.Time) ([]domain.AttendanceRecord, error)

	// DailyStats retrieves the check-in counters for the given calendar date.
	DailyStats(ctx context.Context, date time.Time) (domain.AttendanceStats, error)

	// VisitorHistory retrieves a visitor's records in check-in order; when
	// limit > 0 only the most recent records are kept.
	VisitorHistory(ctx context.Context, visitorID string, limit int) ([]domain.AttendanceRecord, error)

	// RecordsBetween retrieves records whose entry date falls within the
	// inclusive [from, to] calendar-date range.
	RecordsBetween(ctx context.Context, from, to time.Time) ([]domain.AttendanceRecord, error)
}

// AttendanceWriter defines write operations for attendance records
type AttendanceWriter interface {
	// CheckIn opens a visit for the visitor, rejecting a second concurrent
	// visit for the same visitor ID.
	CheckIn(ctx context.Context, record domain.AttendanceRecord) error

	// CheckOut closes the visitor's open visit at the given time and returns
	// the completed record.
	CheckOut(ctx context.Context, visitorID string, at time.Time) (*domain.AttendanceRecord, error)
}

// AttendanceRepositoryFacade combines all attendance repository interfaces
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}

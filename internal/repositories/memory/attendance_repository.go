package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/apperrors"
	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portsrepo "github.com/chinmay655/Managment-for-library/internal/core/ports/repositories"
)

// AttendanceRepository keeps every visit in check-in order plus the per-day
// check-in counters. Records are never deleted; check-out mutates one in
// place.
type AttendanceRepository struct {
	records    []*domain.AttendanceRecord
	dailyStats map[string]*domain.AttendanceStats
}

// NewAttendanceRepository creates an empty attendance store.
func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		dailyStats: make(map[string]*domain.AttendanceStats),
	}
}

// Ensure implementation matches interface
var _ portsrepo.AttendanceRepositoryFacade = (*AttendanceRepository)(nil)

func (r *AttendanceRepository) CheckIn(ctx context.Context, record domain.AttendanceRecord) error {
	if r.activeRecord(record.VisitorID) != nil {
		return fmt.Errorf("%w: visitor %s is already checked in", apperrors.ErrDuplicate, record.VisitorID)
	}

	stored := record
	r.records = append(r.records, &stored)

	dayKey := domain.DayKey(record.EntryTime)
	stats, ok := r.dailyStats[dayKey]
	if !ok {
		stats = &domain.AttendanceStats{}
		r.dailyStats[dayKey] = stats
	}
	stats.TotalVisitors++
	switch record.VisitorType {
	case domain.VisitorMember:
		stats.Members++
	case domain.VisitorGuest:
		stats.Visitors++
	case domain.VisitorStaff:
		stats.Staff++
	}
	return nil
}

func (r *AttendanceRepository) CheckOut(ctx context.Context, visitorID string, at time.Time) (*domain.AttendanceRecord, error) {
	record := r.activeRecord(visitorID)
	if record == nil {
		return nil, fmt.Errorf("%w: visitor %s has no active check-in", apperrors.ErrNotFound, visitorID)
	}
	record.CheckOut(at)
	clone := *record
	return &clone, nil
}

func (r *AttendanceRepository) CurrentVisitors(ctx context.Context) ([]domain.AttendanceRecord, error) {
	current := make([]domain.AttendanceRecord, 0)
	for _, record := range r.records {
		if record.IsActive {
			current = append(current, *record)
		}
	}
	return current, nil
}

func (r *AttendanceRepository) DailyAttendance(ctx context.Context, date time.Time) ([]domain.AttendanceRecord, error) {
	dayKey := domain.DayKey(date)
	matches := make([]domain.AttendanceRecord, 0)
	for _, record := range r.records {
		if domain.DayKey(record.EntryTime) == dayKey {
			matches = append(matches, *record)
		}
	}
	return matches, nil
}

func (r *AttendanceRepository) DailyStats(ctx context.Context, date time.Time) (domain.AttendanceStats, error) {
	if stats, ok := r.dailyStats[domain.DayKey(date)]; ok {
		return *stats, nil
	}
	return domain.AttendanceStats{}, nil
}

func (r *AttendanceRepository) VisitorHistory(ctx context.Context, visitorID string, limit int) ([]domain.AttendanceRecord, error) {
	history := make([]domain.AttendanceRecord, 0)
	for _, record := range r.records {
		if record.VisitorID == visitorID {
			history = append(history, *record)
		}
	}
	// A positive limit keeps the most recent visits, order unchanged.
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	return history, nil
}

func (r *AttendanceRepository) RecordsBetween(ctx context.Context, from, to time.Time) ([]domain.AttendanceRecord, error) {
	// ISO date keys compare lexicographically, so the inclusive range check
	// works on the strings directly.
	fromKey, toKey := domain.DayKey(from), domain.DayKey(to)
	matches := make([]domain.AttendanceRecord, 0)
	for _, record := range r.records {
		dayKey := domain.DayKey(record.EntryTime)
		if dayKey >= fromKey && dayKey <= toKey {
			matches = append(matches, *record)
		}
	}
	return matches, nil
}

// activeRecord scans newest-first for the visitor's open visit.
func (r *AttendanceRepository) activeRecord(visitorID string) *domain.AttendanceRecord {
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].VisitorID == visitorID && r.records[i].IsActive {
			return r.records[i]
		}
	}
	return nil
}

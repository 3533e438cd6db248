package domain

import "time"

// LibraryStats is a read-only projection over the whole aggregate, computed
// fresh on every call.
type LibraryStats struct {
	TotalBooks      int `json:"totalBooks"`
	TotalCopies     int `json:"totalCopies"`
	AvailableCopies int `json:"availableCopies"`
	BorrowedCopies  int `json:"borrowedCopies"`
	TotalMembers    int `json:"totalMembers"`
	ActiveMembers   int `json:"activeMembers"`
}

// OverdueLoan pairs a book with a borrower whose loan exceeded the overdue
// threshold.
type OverdueLoan struct {
	Book        Book      `json:"book"`
	Member      Member    `json:"member"`
	BorrowedAt  time.Time `json:"borrowedAt"`
	DaysOverdue int       `json:"daysOverdue"`
}

// AttendanceStats holds the per-day check-in counters.
type AttendanceStats struct {
	TotalVisitors int `json:"totalVisitors"`
	Members       int `json:"members"`
	Visitors      int `json:"visitors"`
	Staff         int `json:"staff"`
}

// WeeklyAttendanceStats aggregates seven consecutive days of counters with a
// per-day breakdown keyed by calendar date.
type WeeklyAttendanceStats struct {
	AttendanceStats
	DailyBreakdown map[string]AttendanceStats `json:"dailyBreakdown"`
}

// PeakHoursReport is the hour-of-day histogram for one date. PeakHour is the
// hour with the most check-ins; ties keep the hour encountered first.
type PeakHoursReport struct {
	HourlyBreakdown map[int]int `json:"hourlyBreakdown"`
	PeakHour        int         `json:"peakHour"`
	PeakCount       int         `json:"peakCount"`
}

// LibrarySearchResult is the combined admin search outcome across books and
// members.
type LibrarySearchResult struct {
	Books   []Book   `json:"books"`
	Members []Member `json:"members"`
}

// AttendanceReportRow is one flattened line of the exported attendance report.
// ExitTime is "Still Present" and DurationMinutes nil while the visit is open.
type AttendanceReportRow struct {
	VisitorID       string      `json:"visitorID"`
	Name            string      `json:"name"`
	VisitorType     VisitorType `json:"visitorType"`
	EntryTime       string      `json:"entryTime"`
	ExitTime        string      `json:"exitTime"`
	DurationMinutes *int        `json:"durationMinutes"`
	Purpose         string      `json:"purpose"`
}

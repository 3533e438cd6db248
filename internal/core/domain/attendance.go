package domain

import "time"

// VisitorType classifies who is checking in.
type VisitorType string

const (
	VisitorMember VisitorType = "member"
	VisitorGuest  VisitorType = "visitor"
	VisitorStaff  VisitorType = "staff"
)

// AttendanceRecord is a single visit. A visitor may have many historical
// records, but at most one with IsActive set. Records are never deleted;
// check-out fills ExitTime and clears IsActive.
type AttendanceRecord struct {
	RecordID    string      `json:"recordID"`
	VisitorID   string      `json:"visitorID"`
	Name        string      `json:"name"`
	VisitorType VisitorType `json:"visitorType"`
	EntryTime   time.Time   `json:"entryTime"`
	ExitTime    *time.Time  `json:"exitTime,omitempty"`
	Purpose     string      `json:"purpose,omitempty"`
	IsActive    bool        `json:"isActive"`
}

// CheckOut marks the visit as finished.
func (r *AttendanceRecord) CheckOut(at time.Time) {
	exit := at
	r.ExitTime = &exit
	r.IsActive = false
}

// DurationMinutes returns the visit length in whole minutes, rounded down.
// The second return value is false while the visitor is still present.
func (r *AttendanceRecord) DurationMinutes() (int, bool) {
	if r.ExitTime == nil {
		return 0, false
	}
	return int(r.ExitTime.Sub(r.EntryTime).Seconds() / 60), true
}

// DayKey normalizes a timestamp to its calendar date, used to bucket
// attendance records and daily counters.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

package dto

import (
	"time"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
)

// CheckInMemberRequest opens a visit for a registered member.
type CheckInMemberRequest struct {
	MemberID string `json:"memberID" binding:"required"`
}

// CheckInVisitorRequest opens a visit for a walk-in guest.
type CheckInVisitorRequest struct {
	VisitorID string `json:"visitorID" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Purpose   string `json:"purpose"`
}

// CheckInStaffRequest opens a visit for a staff member.
type CheckInStaffRequest struct {
	StaffID string `json:"staffID" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

// CheckOutRequest closes a visitor's open visit.
type CheckOutRequest struct {
	VisitorID string `json:"visitorID" binding:"required"`
}

// AttendanceDateParams selects a calendar date; today when omitted.
type AttendanceDateParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// AttendanceRangeParams selects an inclusive calendar-date range.
type AttendanceRangeParams struct {
	Start string `form:"start" binding:"required,datetime=2006-01-02"`
	End   string `form:"end" binding:"required,datetime=2006-01-02"`
}

// VisitorHistoryParams limits how many past visits are returned.
type VisitorHistoryParams struct {
	Limit int `form:"limit,default=0" binding:"omitempty,gte=0"`
}

// AttendanceRecordResponse defines the data returned for one visit.
type AttendanceRecordResponse struct {
	RecordID        string             `json:"recordID"`
	VisitorID       string             `json:"visitorID"`
	Name            string             `json:"name"`
	VisitorType     domain.VisitorType `json:"visitorType"`
	EntryTime       time.Time          `json:"entryTime"`
	ExitTime        *time.Time         `json:"exitTime,omitempty"`
	Purpose         string             `json:"purpose,omitempty"`
	IsActive        bool               `json:"isActive"`
	DurationMinutes *int               `json:"durationMinutes,omitempty"`
}

// ToAttendanceRecordResponse converts a domain.AttendanceRecord to its DTO
func ToAttendanceRecordResponse(record *domain.AttendanceRecord) AttendanceRecordResponse {
	res := AttendanceRecordResponse{
		RecordID:    record.RecordID,
		VisitorID:   record.VisitorID,
		Name:        record.Name,
		VisitorType: record.VisitorType,
		EntryTime:   record.EntryTime,
		ExitTime:    record.ExitTime,
		Purpose:     record.Purpose,
		IsActive:    record.IsActive,
	}
	if minutes, done := record.DurationMinutes(); done {
		res.DurationMinutes = &minutes
	}
	return res
}

// ToListAttendanceRecordResponse converts a slice of records to DTOs
func ToListAttendanceRecordResponse(records []domain.AttendanceRecord) []AttendanceRecordResponse {
	res := make([]AttendanceRecordResponse, len(records))
	for i := range records {
		res[i] = ToAttendanceRecordResponse(&records[i])
	}
	return res
}

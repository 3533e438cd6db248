package dto

import (
	"time"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
)

// CreateMemberRequest defines the data needed to register a member.
type CreateMemberRequest struct {
	MemberID       string `json:"memberID" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	MembershipType string `json:"membershipType" binding:"required,membershiptype"`
}

// BorrowingRecordResponse is one completed loan in a member's history.
type BorrowingRecordResponse struct {
	BookID     string    `json:"bookID"`
	BorrowedAt time.Time `json:"borrowedAt"`
	ReturnedAt time.Time `json:"returnedAt"`
}

// MemberResponse defines the data returned for a member.
type MemberResponse struct {
	MemberID         string                    `json:"memberID"`
	Name             string                    `json:"name"`
	Email            string                    `json:"email"`
	Phone            string                    `json:"phone"`
	MembershipType   domain.MembershipType     `json:"membershipType"`
	MaxBooks         int                       `json:"maxBooks"`
	JoinDate         time.Time                 `json:"joinDate"`
	BorrowedBooks    []string                  `json:"borrowedBooks"`
	BorrowingHistory []BorrowingRecordResponse `json:"borrowingHistory"`
}

// ToMemberResponse converts a domain.Member to MemberResponse DTO
func ToMemberResponse(member *domain.Member) MemberResponse {
	history := make([]BorrowingRecordResponse, len(member.BorrowingHistory))
	for i, record := range member.BorrowingHistory {
		history[i] = BorrowingRecordResponse(record)
	}
	borrowed := member.BorrowedBooks
	if borrowed == nil {
		borrowed = []string{}
	}
	return MemberResponse{
		MemberID:         member.MemberID,
		Name:             member.Name,
		Email:            member.Email,
		Phone:            member.Phone,
		MembershipType:   member.MembershipType,
		MaxBooks:         member.MaxBooks(),
		JoinDate:         member.JoinDate,
		BorrowedBooks:    borrowed,
		BorrowingHistory: history,
	}
}

// ToListMemberResponse converts a slice of domain.Member to MemberResponse DTOs
func ToListMemberResponse(members []domain.Member) []MemberResponse {
	res := make([]MemberResponse, len(members))
	for i := range members {
		res[i] = ToMemberResponse(&members[i])
	}
	return res
}

package domain

import (
	"fmt"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/apperrors"
)

// MembershipType distinguishes the borrowing tiers.
type MembershipType string

const (
	Regular MembershipType = "Regular"
	Premium MembershipType = "Premium"
)

// MaxBooks returns the borrowing cap for the membership tier.
func (t MembershipType) MaxBooks() int {
	if t == Premium {
		return 5
	}
	return 3
}

// BorrowingRecord is one completed loan in a member's history.
type BorrowingRecord struct {
	BookID     string    `json:"bookID"`
	BorrowedAt time.Time `json:"borrowedAt"`
	ReturnedAt time.Time `json:"returnedAt"`
}

// Member represents a registered library member. BorrowedBooks keeps the IDs
// of currently held books in borrow order; BorrowingHistory is append-only,
// gaining one record per return.
type Member struct {
	MemberID         string            `json:"memberID"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	MembershipType   MembershipType    `json:"membershipType"`
	JoinDate         time.Time         `json:"joinDate"`
	BorrowedBooks    []string          `json:"borrowedBooks"`
	BorrowingHistory []BorrowingRecord `json:"borrowingHistory"`
}

// NewMember registers a member with an empty borrowed set.
func NewMember(memberID, name, email, phone string, membershipType MembershipType, joinedAt time.Time) Member {
	return Member{
		MemberID:       memberID,
		Name:           name,
		Email:          email,
		Phone:          phone,
		MembershipType: membershipType,
		JoinDate:       joinedAt,
	}
}

// MaxBooks is the member's borrowing cap, derived from the membership tier.
func (m *Member) MaxBooks() int {
	return m.MembershipType.MaxBooks()
}

// CanBorrow reports whether the member is below their borrowing cap.
func (m *Member) CanBorrow() bool {
	return len(m.BorrowedBooks) < m.MaxBooks()
}

// Holds reports whether the member currently has the given book on loan.
func (m *Member) Holds(bookID string) bool {
	for _, id := range m.BorrowedBooks {
		if id == bookID {
			return true
		}
	}
	return false
}

// Borrow appends the book to the member's borrowed set.
func (m *Member) Borrow(bookID string) error {
	if m.Holds(bookID) {
		return fmt.Errorf("%w: member %s already holds book %s", apperrors.ErrDuplicate, m.MemberID, bookID)
	}
	if !m.CanBorrow() {
		return fmt.Errorf("%w: member %s holds %d of %d books", apperrors.ErrLimitExceeded, m.MemberID, len(m.BorrowedBooks), m.MaxBooks())
	}
	m.BorrowedBooks = append(m.BorrowedBooks, bookID)
	return nil
}

// Return removes the book from the borrowed set and appends a history record.
// The borrowedAt timestamp is the one captured by the catalog when the copy
// was lent out, so history keeps the true loan interval.
func (m *Member) Return(bookID string, borrowedAt, returnedAt time.Time) error {
	for i, id := range m.BorrowedBooks {
		if id == bookID {
			m.BorrowedBooks = append(m.BorrowedBooks[:i], m.BorrowedBooks[i+1:]...)
			m.BorrowingHistory = append(m.BorrowingHistory, BorrowingRecord{
				BookID:     bookID,
				BorrowedAt: borrowedAt,
				ReturnedAt: returnedAt,
			})
			return nil
		}
	}
	return fmt.Errorf("%w: member %s has not borrowed book %s", apperrors.ErrNotFound, m.MemberID, bookID)
}

// Clone returns a deep copy of the member.
func (m *Member) Clone() Member {
	clone := *m
	clone.BorrowedBooks = append([]string(nil), m.BorrowedBooks...)
	clone.BorrowingHistory = append([]BorrowingRecord(nil), m.BorrowingHistory...)
	return clone
}

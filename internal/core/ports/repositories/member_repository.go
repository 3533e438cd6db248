package repositories

import (
	"context"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
)

// MemberReader defines read operations for the member directory
type MemberReader interface {
	// FindMemberByID retrieves a specific member by their unique identifier.
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// ListMembers retrieves every registered member.
	ListMembers(ctx context.Context) ([]domain.Member, error)
}

// MemberWriter defines write operations for the member directory
type MemberWriter interface {
	// SaveMember inserts or replaces a member keyed by their MemberID.
	SaveMember(ctx context.Context, member domain.Member) error

	// DeleteMember removes a member from the directory.
	DeleteMember(ctx context.Context, memberID string) error

	// RecordBorrow adds a book to a member's current loans, enforcing the
	// per-tier cap and rejecting duplicates.
	RecordBorrow(ctx context.Context, memberID, bookID string) error

	// RecordReturn moves a book from the member's current loans into their
	// borrowing history, preserving the original borrow time.
	RecordReturn(ctx context.Context, memberID, bookID string, borrowedAt, returnedAt time.Time) error
}

// MemberRepositoryFacade combines all member repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}

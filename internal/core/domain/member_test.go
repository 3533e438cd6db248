package domain_test

import (
	"testing"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/apperrors"
	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipType_MaxBooks(t *testing.T) {
	tests := []struct {
		name           string
		membershipType domain.MembershipType
		want           int
	}{
		{name: "regular members may hold three books", membershipType: domain.Regular, want: 3},
		{name: "premium members may hold five books", membershipType: domain.Premium, want: 5},
		{name: "unknown tiers fall back to the regular cap", membershipType: domain.MembershipType("Gold"), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.membershipType.MaxBooks())
		})
	}
}

func TestMember_BorrowCap(t *testing.T) {
	member := domain.NewMember("M1", "Ada", "ada@example.com", "555-0100", domain.Regular, time.Now())

	for _, bookID := range []string{"B1", "B2", "B3"} {
		require.NoError(t, member.Borrow(bookID))
	}
	assert.False(t, member.CanBorrow())

	err := member.Borrow("B4")
	assert.ErrorIs(t, err, apperrors.ErrLimitExceeded)
	assert.Equal(t, []string{"B1", "B2", "B3"}, member.BorrowedBooks)
}

func TestMember_DuplicateBorrowRejected(t *testing.T) {
	member := domain.NewMember("M1", "Ada", "ada@example.com", "555-0100", domain.Premium, time.Now())
	require.NoError(t, member.Borrow("B1"))

	err := member.Borrow("B1")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Len(t, member.BorrowedBooks, 1)
}

func TestMember_ReturnKeepsTrueBorrowTime(t *testing.T) {
	borrowedAt := time.Now().Add(-72 * time.Hour)
	returnedAt := time.Now()

	member := domain.NewMember("M1", "Ada", "ada@example.com", "555-0100", domain.Regular, time.Now())
	require.NoError(t, member.Borrow("B1"))

	require.NoError(t, member.Return("B1", borrowedAt, returnedAt))
	assert.Empty(t, member.BorrowedBooks)
	require.Len(t, member.BorrowingHistory, 1)
	assert.Equal(t, "B1", member.BorrowingHistory[0].BookID)
	assert.Equal(t, borrowedAt, member.BorrowingHistory[0].BorrowedAt)
	assert.Equal(t, returnedAt, member.BorrowingHistory[0].ReturnedAt)
}

func TestMember_ReturnUnknownBook(t *testing.T) {
	member := domain.NewMember("M1", "Ada", "ada@example.com", "555-0100", domain.Regular, time.Now())

	err := member.Return("B9", time.Now(), time.Now())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, member.BorrowingHistory)
}

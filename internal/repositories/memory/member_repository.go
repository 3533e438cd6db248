package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/apperrors"
	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portsrepo "github.com/chinmay655/Managment-for-library/internal/core/ports/repositories"
)

// MemberRepository keeps members keyed by ID in registration order.
type MemberRepository struct {
	members map[string]*domain.Member
	order   []string
}

// NewMemberRepository creates an empty member store.
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{
		members: make(map[string]*domain.Member),
	}
}

// Ensure implementation matches interface
var _ portsrepo.MemberRepositoryFacade = (*MemberRepository)(nil)

func (r *MemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	member, ok := r.members[memberID]
	if !ok {
		return nil, fmt.Errorf("%w: member %s", apperrors.ErrNotFound, memberID)
	}
	clone := member.Clone()
	return &clone, nil
}

func (r *MemberRepository) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members := make([]domain.Member, 0, len(r.order))
	for _, memberID := range r.order {
		members = append(members, r.members[memberID].Clone())
	}
	return members, nil
}

func (r *MemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	clone := member.Clone()
	if _, exists := r.members[member.MemberID]; !exists {
		r.order = append(r.order, member.MemberID)
	}
	r.members[member.MemberID] = &clone
	return nil
}

func (r *MemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	if _, ok := r.members[memberID]; !ok {
		return fmt.Errorf("%w: member %s", apperrors.ErrNotFound, memberID)
	}
	delete(r.members, memberID)
	for i, id := range r.order {
		if id == memberID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemberRepository) RecordBorrow(ctx context.Context, memberID, bookID string) error {
	member, ok := r.members[memberID]
	if !ok {
		return fmt.Errorf("%w: member %s", apperrors.ErrNotFound, memberID)
	}
	return member.Borrow(bookID)
}

func (r *MemberRepository) RecordReturn(ctx context.Context, memberID, bookID string, borrowedAt, returnedAt time.Time) error {
	member, ok := r.members[memberID]
	if !ok {
		return fmt.Errorf("%w: member %s", apperrors.ErrNotFound, memberID)
	}
	return member.Return(bookID, borrowedAt, returnedAt)
}

package memory

import (
	"context"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portsrepo "github.com/chinmay655/Managment-for-library/internal/core/ports/repositories"
)

// TransactionRepository is the append-only audit log.
type TransactionRepository struct {
	entries []domain.Transaction
}

// NewTransactionRepository creates an empty audit log.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionLogger = (*TransactionRepository)(nil)

func (r *TransactionRepository) Append(ctx context.Context, txn domain.Transaction) error {
	r.entries = append(r.entries, txn)
	return nil
}

func (r *TransactionRepository) History(ctx context.Context, limit int) ([]domain.Transaction, error) {
	start := 0
	if limit > 0 && len(r.entries) > limit {
		start = len(r.entries) - limit
	}
	history := make([]domain.Transaction, len(r.entries)-start)
	copy(history, r.entries[start:])
	return history, nil
}

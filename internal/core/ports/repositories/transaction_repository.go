package repositories

import (
	"context"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
)

// TransactionLogger defines the append-only audit log of domain actions.
type TransactionLogger interface {
	// Append records a completed domain action.
	Append(ctx context.Context, txn domain.Transaction) error

	// History retrieves the most recent entries in chronological order,
	// capped at limit when limit > 0.
	History(ctx context.Context, limit int) ([]domain.Transaction, error)
}

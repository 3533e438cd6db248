package dto

import (
	"time"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
)

// TransactionHistoryParams limits how many audit entries are returned.
type TransactionHistoryParams struct {
	Limit int `form:"limit,default=0" binding:"omitempty,gte=0"`
}

// TransactionResponse defines the data returned for one audit entry.
type TransactionResponse struct {
	Timestamp   time.Time                `json:"timestamp"`
	Action      domain.TransactionAction `json:"action"`
	Description string                   `json:"description"`
}

// ToListTransactionResponse converts audit entries to DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = TransactionResponse(txn)
	}
	return res
}

package domain

import "time"

// TransactionAction tags an audit-log entry with the operation that produced it.
type TransactionAction string

const (
	ActionAddBook      TransactionAction = "ADD_BOOK"
	ActionRemoveBook   TransactionAction = "REMOVE_BOOK"
	ActionAddMember    TransactionAction = "ADD_MEMBER"
	ActionRemoveMember TransactionAction = "REMOVE_MEMBER"
	ActionBorrow       TransactionAction = "BORROW"
	ActionReturn       TransactionAction = "RETURN"
)

// Transaction is one immutable audit-log entry. It records a completed domain
// action, not a database transaction.
type Transaction struct {
	Timestamp   time.Time         `json:"timestamp"`
	Action      TransactionAction `json:"action"`
	Description string            `json:"description"`
}

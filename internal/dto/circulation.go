package dto

// BorrowBookRequest defines the data needed to lend a book to a member.
type BorrowBookRequest struct {
	MemberID string `json:"memberID" binding:"required"`
	BookID   string `json:"bookID" binding:"required"`
}

// ReturnBookRequest defines the data needed to take a book back.
type ReturnBookRequest struct {
	MemberID string `json:"memberID" binding:"required"`
	BookID   string `json:"bookID" binding:"required"`
}

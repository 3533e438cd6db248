package domain

import (
	"fmt"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/apperrors"
)

// Book represents a title in the catalog together with its loanable copies.
// BorrowedBy maps the borrowing member's ID to the time the copy was lent out,
// so AvailableCopies + len(BorrowedBy) == TotalCopies holds at all times.
type Book struct {
	BookID          string               `json:"bookID"`
	Title           string               `json:"title"`
	Author          string               `json:"author"`
	ISBN            string               `json:"isbn"`
	Category        string               `json:"category"`
	TotalCopies     int                  `json:"totalCopies"`
	AvailableCopies int                  `json:"availableCopies"`
	BorrowedBy      map[string]time.Time `json:"borrowedBy"`
}

// NewBook creates a catalog entry with all copies available.
func NewBook(bookID, title, author, isbn, category string, copies int) Book {
	return Book{
		BookID:          bookID,
		Title:           title,
		Author:          author,
		ISBN:            isbn,
		Category:        category,
		TotalCopies:     copies,
		AvailableCopies: copies,
		BorrowedBy:      make(map[string]time.Time),
	}
}

// IsAvailable reports whether at least one copy can be lent out.
func (b *Book) IsAvailable() bool {
	return b.AvailableCopies > 0
}

// Lend hands one copy to the given member, recording the borrow time.
func (b *Book) Lend(memberID string, at time.Time) error {
	if !b.IsAvailable() {
		return fmt.Errorf("%w: no copies of book %s available", apperrors.ErrUnavailable, b.BookID)
	}
	if _, held := b.BorrowedBy[memberID]; held {
		return fmt.Errorf("%w: member %s already holds book %s", apperrors.ErrDuplicate, memberID, b.BookID)
	}
	b.AvailableCopies--
	b.BorrowedBy[memberID] = at
	return nil
}

// TakeBack accepts a copy back from the given member and returns the time it
// was originally lent out.
func (b *Book) TakeBack(memberID string) (time.Time, error) {
	borrowedAt, held := b.BorrowedBy[memberID]
	if !held {
		return time.Time{}, fmt.Errorf("%w: member %s is not a borrower of book %s", apperrors.ErrNotFound, memberID, b.BookID)
	}
	b.AvailableCopies++
	delete(b.BorrowedBy, memberID)
	return borrowedAt, nil
}

// BorrowerInfo returns a copy of the borrower map so callers cannot mutate
// catalog state.
func (b *Book) BorrowerInfo() map[string]time.Time {
	info := make(map[string]time.Time, len(b.BorrowedBy))
	for memberID, at := range b.BorrowedBy {
		info[memberID] = at
	}
	return info
}

// Clone returns a deep copy of the book.
func (b *Book) Clone() Book {
	clone := *b
	clone.BorrowedBy = b.BorrowerInfo()
	return clone
}

package dto

import (
	"time"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
)

// CreateBookRequest defines the data needed to register a book.
// TotalCopies defaults to 1 when omitted.
type CreateBookRequest struct {
	BookID      string `json:"bookID" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	ISBN        string `json:"isbn"`
	Category    string `json:"category"`
	TotalCopies *int   `json:"totalCopies" binding:"omitempty,gte=0"`
}

// SearchBooksParams defines query parameters for catalog search.
type SearchBooksParams struct {
	Query string `form:"q" binding:"required"`
	Field string `form:"field,default=title" binding:"omitempty,oneof=title author category isbn"`
}

// BookResponse defines the data returned for a book.
type BookResponse struct {
	BookID          string               `json:"bookID"`
	Title           string               `json:"title"`
	Author          string               `json:"author"`
	ISBN            string               `json:"isbn"`
	Category        string               `json:"category"`
	TotalCopies     int                  `json:"totalCopies"`
	AvailableCopies int                  `json:"availableCopies"`
	BorrowedBy      map[string]time.Time `json:"borrowedBy"`
}

// ToBookResponse converts a domain.Book to BookResponse DTO
func ToBookResponse(book *domain.Book) BookResponse {
	return BookResponse{
		BookID:          book.BookID,
		Title:           book.Title,
		Author:          book.Author,
		ISBN:            book.ISBN,
		Category:        book.Category,
		TotalCopies:     book.TotalCopies,
		AvailableCopies: book.AvailableCopies,
		BorrowedBy:      book.BorrowerInfo(),
	}
}

// ToListBookResponse converts a slice of domain.Book to BookResponse DTOs
func ToListBookResponse(books []domain.Book) []BookResponse {
	res := make([]BookResponse, len(books))
	for i := range books {
		res[i] = ToBookResponse(&books[i])
	}
	return res
}

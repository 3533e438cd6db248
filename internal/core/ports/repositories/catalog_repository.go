package repositories

import (
	"context"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
)

// SearchField selects which book attribute a catalog search matches against.
type SearchField string

const (
	SearchByTitle    SearchField = "title"
	SearchByAuthor   SearchField = "author"
	SearchByCategory SearchField = "category"
	SearchByISBN     SearchField = "isbn"
)

// CatalogReader defines read operations for the book catalog
type CatalogReader interface {
	// FindBookByID retrieves a specific book by its unique identifier.
	FindBookByID(ctx context.Context, bookID string) (*domain.Book, error)

	// ListBooks retrieves every book in the catalog.
	ListBooks(ctx context.Context) ([]domain.Book, error)

	// ListAvailableBooks retrieves books with at least one lendable copy.
	ListAvailableBooks(ctx context.Context) ([]domain.Book, error)

	// SearchBooks retrieves books whose given field contains the query.
	// Title, author and category match case-insensitively; ISBN matches
	// exactly as typed. An empty query matches nothing.
	SearchBooks(ctx context.Context, query string, field SearchField) ([]domain.Book, error)
}

// CatalogWriter defines write operations for the book catalog
type CatalogWriter interface {
	// SaveBook inserts or replaces a book keyed by its BookID.
	SaveBook(ctx context.Context, book domain.Book) error

	// DeleteBook removes a book from the catalog.
	DeleteBook(ctx context.Context, bookID string) error

	// RecordLoan marks one copy of a book as lent to a member at the given time.
	RecordLoan(ctx context.Context, bookID, memberID string, at time.Time) error

	// ReleaseLoan clears a member's hold on a book and returns the time the
	// loan was originally recorded.
	ReleaseLoan(ctx context.Context, bookID, memberID string) (time.Time, error)
}

// CatalogRepositoryFacade combines all catalog repository interfaces
type CatalogRepositoryFacade interface {
	CatalogReader
	CatalogWriter
}

// Package memory holds the in-process adapters backing the library aggregate.
// The stores are not goroutine-safe on their own; the library service owns a
// single lock and serializes every call into this package.
package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/apperrors"
	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portsrepo "github.com/chinmay655/Managment-for-library/internal/core/ports/repositories"
)

// CatalogRepository keeps books keyed by ID, remembering insertion order so
// listings and search results are deterministic.
type CatalogRepository struct {
	books map[string]*domain.Book
	order []string
}

// NewCatalogRepository creates an empty catalog store.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		books: make(map[string]*domain.Book),
	}
}

// Ensure implementation matches interface
var _ portsrepo.CatalogRepositoryFacade = (*CatalogRepository)(nil)

func (r *CatalogRepository) FindBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	book, ok := r.books[bookID]
	if !ok {
		return nil, fmt.Errorf("%w: book %s", apperrors.ErrNotFound, bookID)
	}
	clone := book.Clone()
	return &clone, nil
}

func (r *CatalogRepository) ListBooks(ctx context.Context) ([]domain.Book, error) {
	books := make([]domain.Book, 0, len(r.order))
	for _, bookID := range r.order {
		books = append(books, r.books[bookID].Clone())
	}
	return books, nil
}

func (r *CatalogRepository) ListAvailableBooks(ctx context.Context) ([]domain.Book, error) {
	books := make([]domain.Book, 0, len(r.order))
	for _, bookID := range r.order {
		if book := r.books[bookID]; book.IsAvailable() {
			books = append(books, book.Clone())
		}
	}
	return books, nil
}

func (r *CatalogRepository) SearchBooks(ctx context.Context, query string, field portsrepo.SearchField) ([]domain.Book, error) {
	matches := make([]domain.Book, 0)
	if query == "" {
		return matches, nil
	}

	needle := strings.ToLower(query)
	for _, bookID := range r.order {
		book := r.books[bookID]
		var hit bool
		switch field {
		case portsrepo.SearchByTitle:
			hit = strings.Contains(strings.ToLower(book.Title), needle)
		case portsrepo.SearchByAuthor:
			hit = strings.Contains(strings.ToLower(book.Author), needle)
		case portsrepo.SearchByCategory:
			hit = strings.Contains(strings.ToLower(book.Category), needle)
		case portsrepo.SearchByISBN:
			hit = strings.Contains(book.ISBN, query)
		default:
			return nil, fmt.Errorf("%w: unknown search field %q", apperrors.ErrValidation, field)
		}
		if hit {
			matches = append(matches, book.Clone())
		}
	}
	return matches, nil
}

func (r *CatalogRepository) SaveBook(ctx context.Context, book domain.Book) error {
	clone := book.Clone()
	if clone.BorrowedBy == nil {
		clone.BorrowedBy = make(map[string]time.Time)
	}
	if _, exists := r.books[book.BookID]; !exists {
		r.order = append(r.order, book.BookID)
	}
	r.books[book.BookID] = &clone
	return nil
}

func (r *CatalogRepository) DeleteBook(ctx context.Context, bookID string) error {
	if _, ok := r.books[bookID]; !ok {
		return fmt.Errorf("%w: book %s", apperrors.ErrNotFound, bookID)
	}
	delete(r.books, bookID)
	for i, id := range r.order {
		if id == bookID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *CatalogRepository) RecordLoan(ctx context.Context, bookID, memberID string, at time.Time) error {
	book, ok := r.books[bookID]
	if !ok {
		return fmt.Errorf("%w: book %s", apperrors.ErrNotFound, bookID)
	}
	return book.Lend(memberID, at)
}

func (r *CatalogRepository) ReleaseLoan(ctx context.Context, bookID, memberID string) (time.Time, error) {
	book, ok := r.books[bookID]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: book %s", apperrors.ErrNotFound, bookID)
	}
	return book.TakeBack(memberID)
}

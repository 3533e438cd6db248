package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/apperrors"
	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portsrepo "github.com/chinmay655/Managment-for-library/internal/core/ports/repositories"
	"github.com/chinmay655/Managment-for-library/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T) *memory.CatalogRepository {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewCatalogRepository()

	books := []domain.Book{
		domain.NewBook("B1", "The Go Programming Language", "Alan Donovan", "978-0134190440", "Programming", 2),
		domain.NewBook("B2", "Go in Action", "William Kennedy", "978-1617291784", "Programming", 1),
		domain.NewBook("B3", "Dune", "Frank Herbert", "978-0441172719", "Science Fiction", 3),
	}
	for _, book := range books {
		require.NoError(t, repo.SaveBook(ctx, book))
	}
	return repo
}

func TestCatalogRepository_SearchBooks(t *testing.T) {
	ctx := context.Background()
	repo := seedCatalog(t)

	tests := []struct {
		name    string
		query   string
		field   portsrepo.SearchField
		wantIDs []string
	}{
		{name: "title match is case-insensitive", query: "go", field: portsrepo.SearchByTitle, wantIDs: []string{"B1", "B2"}},
		{name: "author substring", query: "herbert", field: portsrepo.SearchByAuthor, wantIDs: []string{"B3"}},
		{name: "category substring", query: "fiction", field: portsrepo.SearchByCategory, wantIDs: []string{"B3"}},
		{name: "isbn matches as typed", query: "0441172719", field: portsrepo.SearchByISBN, wantIDs: []string{"B3"}},
		{name: "empty query matches nothing", query: "", field: portsrepo.SearchByTitle, wantIDs: []string{}},
		{name: "no match", query: "zzz", field: portsrepo.SearchByTitle, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.SearchBooks(ctx, tt.query, tt.field)
			require.NoError(t, err)
			gotIDs := make([]string, 0, len(found))
			for _, book := range found {
				gotIDs = append(gotIDs, book.BookID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}

	_, err := repo.SearchBooks(ctx, "go", portsrepo.SearchField("publisher"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCatalogRepository_ListingsKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := seedCatalog(t)

	require.NoError(t, repo.RecordLoan(ctx, "B2", "M1", time.Now()))

	all, err := repo.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B1", "B2", "B3"}, []string{all[0].BookID, all[1].BookID, all[2].BookID})

	available, err := repo.ListAvailableBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B1", "B3"}, []string{available[0].BookID, available[1].BookID})
}

func TestCatalogRepository_LoanRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := seedCatalog(t)
	lentAt := time.Now().Add(-time.Hour)

	require.NoError(t, repo.RecordLoan(ctx, "B1", "M1", lentAt))

	book, err := repo.FindBookByID(ctx, "B1")
	require.NoError(t, err)
	assert.Equal(t, 1, book.AvailableCopies)

	// Mutating the returned snapshot must not leak into the store.
	book.BorrowedBy["M2"] = time.Now()
	fresh, err := repo.FindBookByID(ctx, "B1")
	require.NoError(t, err)
	assert.Len(t, fresh.BorrowedBy, 1)

	borrowedAt, err := repo.ReleaseLoan(ctx, "B1", "M1")
	require.NoError(t, err)
	assert.Equal(t, lentAt, borrowedAt)

	_, err = repo.ReleaseLoan(ctx, "B1", "M1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogRepository_DeleteBook(t *testing.T) {
	ctx := context.Background()
	repo := seedCatalog(t)

	require.NoError(t, repo.DeleteBook(ctx, "B2"))
	_, err := repo.FindBookByID(ctx, "B2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.DeleteBook(ctx, "B2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portsrepo "github.com/chinmay655/Managment-for-library/internal/core/ports/repositories"
	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"github.com/chinmay655/Managment-for-library/internal/dto"
	"github.com/chinmay655/Managment-for-library/internal/middleware"
	"github.com/gin-gonic/gin"
)

// booksHandler handles HTTP requests for the catalog.
type booksHandler struct {
	library portssvc.LibrarySvcFacade
}

func newBooksHandler(library portssvc.LibrarySvcFacade) *booksHandler {
	return &booksHandler{library: library}
}

// registerBookRoutes registers routes related to the catalog.
func registerBookRoutes(rg *gin.RouterGroup, library portssvc.LibrarySvcFacade) {
	h := newBooksHandler(library)

	books := rg.Group("/books")
	{
		books.POST("", h.createBook)
		books.GET("", h.listBooks)
		books.GET("/search", h.searchBooks)
		books.GET("/:bookID", h.getBook)
		books.DELETE("/:bookID", h.deleteBook)
	}
}

func (h *booksHandler) createBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	copies := 1
	if req.TotalCopies != nil {
		copies = *req.TotalCopies
	}
	book := domain.NewBook(req.BookID, req.Title, req.Author, req.ISBN, req.Category, copies)
	if err := h.library.AddBook(c.Request.Context(), book); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookResponse(&book))
}

func (h *booksHandler) listBooks(c *gin.Context) {
	var (
		books []domain.Book
		err   error
	)
	if c.Query("available") == "true" {
		books, err = h.library.ListAvailableBooks(c.Request.Context())
	} else {
		books, err = h.library.ListAllBooks(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListBookResponse(books))
}

func (h *booksHandler) searchBooks(c *gin.Context) {
	var params dto.SearchBooksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	books, err := h.library.SearchBooks(c.Request.Context(), params.Query, portsrepo.SearchField(params.Field))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListBookResponse(books))
}

func (h *booksHandler) getBook(c *gin.Context) {
	book, err := h.library.GetBook(c.Request.Context(), c.Param("bookID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}

func (h *booksHandler) deleteBook(c *gin.Context) {
	if err := h.library.RemoveBook(c.Request.Context(), c.Param("bookID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"github.com/chinmay655/Managment-for-library/internal/dto"
	"github.com/gin-gonic/gin"
)

// circulationHandler handles the borrow/return workflow.
type circulationHandler struct {
	library portssvc.LibrarySvcFacade
}

func newCirculationHandler(library portssvc.LibrarySvcFacade) *circulationHandler {
	return &circulationHandler{library: library}
}

// registerCirculationRoutes registers the borrow and return routes.
func registerCirculationRoutes(rg *gin.RouterGroup, library portssvc.LibrarySvcFacade) {
	h := newCirculationHandler(library)

	circulation := rg.Group("/circulation")
	{
		circulation.POST("/borrow", h.borrowBook)
		circulation.POST("/return", h.returnBook)
	}
}

func (h *circulationHandler) borrowBook(c *gin.Context) {
	var req dto.BorrowBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	if err := h.library.BorrowBook(c.Request.Context(), req.MemberID, req.BookID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book borrowed successfully"})
}

func (h *circulationHandler) returnBook(c *gin.Context) {
	var req dto.ReturnBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	if err := h.library.ReturnBook(c.Request.Context(), req.MemberID, req.BookID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book returned successfully"})
}

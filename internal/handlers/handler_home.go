package handlers

import (
	"net/http"

	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// homeHandler serves the dashboard summary shown after login.
type homeHandler struct {
	library     portssvc.LibrarySvcFacade
	libraryName string
}

// registerHomeRoutes registers the dashboard route.
func registerHomeRoutes(rg *gin.RouterGroup, library portssvc.LibrarySvcFacade, libraryName string) {
	h := &homeHandler{library: library, libraryName: libraryName}
	rg.GET("/home", h.getHome)
}

func (h *homeHandler) getHome(c *gin.Context) {
	stats, err := h.library.LibraryStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	visitors, err := h.library.CurrentVisitors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"libraryName":     h.libraryName,
		"stats":           stats,
		"currentVisitors": len(visitors),
	})
}

package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"github.com/chinmay655/Managment-for-library/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportsHandler serves read-only projections and notification triggers.
type reportsHandler struct {
	library     portssvc.LibrarySvcFacade
	overdueDays int
}

func newReportsHandler(library portssvc.LibrarySvcFacade, overdueDays int) *reportsHandler {
	return &reportsHandler{library: library, overdueDays: overdueDays}
}

// registerReportRoutes registers reporting, search and notification routes.
func registerReportRoutes(rg *gin.RouterGroup, library portssvc.LibrarySvcFacade, overdueDays int) {
	h := newReportsHandler(library, overdueDays)

	reports := rg.Group("/reports")
	{
		reports.GET("/stats", h.libraryStats)
		reports.GET("/overdue", h.overdueBooks)
		reports.GET("/transactions", h.transactionHistory)
	}
	rg.GET("/search", h.searchLibrary)

	notifications := rg.Group("/notifications")
	{
		notifications.POST("/overdue-reminders", h.sendOverdueReminders)
		notifications.POST("/send", h.sendNotification)
		notifications.POST("/broadcast", h.sendBulkNotification)
	}
}

func (h *reportsHandler) libraryStats(c *gin.Context) {
	stats, err := h.library.LibraryStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// overdueDaysParam reads the ?days= override, falling back to the configured
// threshold.
func (h *reportsHandler) overdueDaysParam(c *gin.Context) (int, bool) {
	daysStr := c.Query("days")
	if daysStr == "" {
		return h.overdueDays, true
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil || days < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid days, expected a non-negative integer"})
		return 0, false
	}
	return days, true
}

func (h *reportsHandler) overdueBooks(c *gin.Context) {
	days, ok := h.overdueDaysParam(c)
	if !ok {
		return
	}
	overdue, err := h.library.OverdueBooks(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overdue)
}

func (h *reportsHandler) transactionHistory(c *gin.Context) {
	var params dto.TransactionHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	history, err := h.library.TransactionHistory(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(history))
}

func (h *reportsHandler) searchLibrary(c *gin.Context) {
	result, err := h.library.SearchLibrary(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *reportsHandler) sendOverdueReminders(c *gin.Context) {
	days, ok := h.overdueDaysParam(c)
	if !ok {
		return
	}
	sent, failed, err := h.library.SendOverdueReminders(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent, "failed": failed})
}

type sendNotificationRequest struct {
	MemberID string `json:"memberID" binding:"required"`
	Subject  string `json:"subject" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

func (h *reportsHandler) sendNotification(c *gin.Context) {
	var req sendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	if err := h.library.SendNotification(c.Request.Context(), req.MemberID, req.Subject, req.Body); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification sent"})
}

type broadcastRequest struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

func (h *reportsHandler) sendBulkNotification(c *gin.Context) {
	var req broadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	sent, failed, err := h.library.SendBulkNotification(c.Request.Context(), req.Subject, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent, "failed": failed})
}

package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"github.com/chinmay655/Managment-for-library/internal/dto"
	"github.com/gin-gonic/gin"
)

// attendanceHandler handles visitor tracking requests.
type attendanceHandler struct {
	library portssvc.LibrarySvcFacade
}

func newAttendanceHandler(library portssvc.LibrarySvcFacade) *attendanceHandler {
	return &attendanceHandler{library: library}
}

// registerAttendanceRoutes registers visitor tracking routes.
func registerAttendanceRoutes(rg *gin.RouterGroup, library portssvc.LibrarySvcFacade) {
	h := newAttendanceHandler(library)

	attendance := rg.Group("/attendance")
	{
		attendance.POST("/checkin/member", h.checkInMember)
		attendance.POST("/checkin/visitor", h.checkInVisitor)
		attendance.POST("/checkin/staff", h.checkInStaff)
		attendance.POST("/checkout", h.checkOut)
		attendance.GET("/current", h.currentVisitors)
		attendance.GET("/daily", h.dailyAttendance)
		attendance.GET("/stats/daily", h.dailyStats)
		attendance.GET("/stats/weekly", h.weeklyStats)
		attendance.GET("/peak-hours", h.peakHours)
		attendance.GET("/history/:visitorID", h.visitorHistory)
		attendance.GET("/report", h.exportReport)
	}
}

// parseDateParam reads an optional ?date=YYYY-MM-DD query, defaulting to today.
func parseDateParam(c *gin.Context) (time.Time, bool) {
	var params dto.AttendanceDateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	if params.Date == "" {
		return time.Now(), true
	}
	date, err := time.ParseInLocation("2006-01-02", params.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func (h *attendanceHandler) checkInMember(c *gin.Context) {
	var req dto.CheckInMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	record, err := h.library.CheckInMember(c.Request.Context(), req.MemberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAttendanceRecordResponse(record))
}

func (h *attendanceHandler) checkInVisitor(c *gin.Context) {
	var req dto.CheckInVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	record, err := h.library.CheckInVisitor(c.Request.Context(), req.VisitorID, req.Name, req.Purpose)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAttendanceRecordResponse(record))
}

func (h *attendanceHandler) checkInStaff(c *gin.Context) {
	var req dto.CheckInStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	record, err := h.library.CheckInStaff(c.Request.Context(), req.StaffID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAttendanceRecordResponse(record))
}

func (h *attendanceHandler) checkOut(c *gin.Context) {
	var req dto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	record, err := h.library.CheckOut(c.Request.Context(), req.VisitorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceRecordResponse(record))
}

func (h *attendanceHandler) currentVisitors(c *gin.Context) {
	records, err := h.library.CurrentVisitors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListAttendanceRecordResponse(records))
}

func (h *attendanceHandler) dailyAttendance(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}
	records, err := h.library.DailyAttendance(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListAttendanceRecordResponse(records))
}

func (h *attendanceHandler) dailyStats(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}
	stats, err := h.library.DailyAttendanceStats(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *attendanceHandler) weeklyStats(c *gin.Context) {
	// The week defaults to the seven days ending today.
	weekStart := time.Now().AddDate(0, 0, -6)
	if startStr := c.Query("start"); startStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid start date, expected YYYY-MM-DD"})
			return
		}
		weekStart = parsed
	}
	stats, err := h.library.WeeklyAttendanceStats(c.Request.Context(), weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *attendanceHandler) peakHours(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}
	report, err := h.library.PeakHours(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *attendanceHandler) visitorHistory(c *gin.Context) {
	var params dto.VisitorHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	records, err := h.library.VisitorHistory(c.Request.Context(), c.Param("visitorID"), params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListAttendanceRecordResponse(records))
}

func (h *attendanceHandler) exportReport(c *gin.Context) {
	var params dto.AttendanceRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid range, expected start and end as YYYY-MM-DD"})
		return
	}
	start, _ := time.ParseInLocation("2006-01-02", params.Start, time.Local)
	end, _ := time.ParseInLocation("2006-01-02", params.End, time.Local)

	rows, err := h.library.ExportAttendanceReport(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

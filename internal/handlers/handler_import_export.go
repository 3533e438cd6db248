package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/apperrors"
	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"github.com/chinmay655/Managment-for-library/internal/dto"
	"github.com/chinmay655/Managment-for-library/internal/middleware"
	"github.com/gin-gonic/gin"
)

// importExportHandler moves catalog, member, user and attendance data in and
// out as CSV. Import files carry a header row; statuses are reported per line.
type importExportHandler struct {
	library     portssvc.LibrarySvcFacade
	userService portssvc.UserSvcFacade
}

func newImportExportHandler(library portssvc.LibrarySvcFacade, userService portssvc.UserSvcFacade) *importExportHandler {
	return &importExportHandler{library: library, userService: userService}
}

// registerImportExportRoutes registers the CSV import and export routes.
func registerImportExportRoutes(rg *gin.RouterGroup, library portssvc.LibrarySvcFacade, userService portssvc.UserSvcFacade) {
	h := newImportExportHandler(library, userService)

	imports := rg.Group("/import", middleware.RequireAdmin())
	{
		imports.POST("/books", h.importBooks)
		imports.POST("/students", h.importStudents)
	}
	exports := rg.Group("/export")
	{
		exports.GET("/books", h.exportBooks)
		exports.GET("/members", h.exportMembers)
		exports.GET("/users", middleware.RequireAdmin(), h.exportUsers)
		exports.GET("/attendance", h.exportAttendance)
	}
}

// readCSVUpload parses the uploaded "file" form field and returns its data
// rows, the header excluded.
func readCSVUpload(c *gin.Context) ([][]string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing CSV upload in 'file' field"})
		return nil, false
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to open upload"})
		return nil, false
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // rows are validated individually
	rows, err := reader.ReadAll()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Malformed CSV: " + err.Error()})
		return nil, false
	}
	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "CSV file is empty"})
		return nil, false
	}
	return rows[1:], true
}

// importBooks expects columns: book_id,title,author,isbn,category,copies.
func (h *importExportHandler) importBooks(c *gin.Context) {
	rows, ok := readCSVUpload(c)
	if !ok {
		return
	}

	summary := dto.ImportSummaryResponse{Rows: make([]dto.ImportRowResult, 0, len(rows))}
	for i, row := range rows {
		line := i + 2 // header is line 1
		summary.Total++

		if len(row) < 3 || row[0] == "" || row[1] == "" || row[2] == "" {
			summary.Rows = append(summary.Rows, dto.ImportRowResult{Line: line, Status: "Missing required fields"})
			continue
		}
		copies := 1
		if len(row) > 5 && row[5] != "" {
			parsed, err := strconv.Atoi(row[5])
			if err != nil || parsed < 0 {
				summary.Rows = append(summary.Rows, dto.ImportRowResult{Line: line, Status: "Missing required fields"})
				continue
			}
			copies = parsed
		}
		isbn, category := "", ""
		if len(row) > 3 {
			isbn = row[3]
		}
		if len(row) > 4 {
			category = row[4]
		}

		book := domain.NewBook(row[0], row[1], row[2], isbn, category, copies)
		err := h.library.AddBook(c.Request.Context(), book)
		switch {
		case err == nil:
			summary.Imported++
			summary.Rows = append(summary.Rows, dto.ImportRowResult{Line: line, Status: "Imported"})
		case errors.Is(err, apperrors.ErrDuplicate):
			summary.Rows = append(summary.Rows, dto.ImportRowResult{Line: line, Status: "Book ID exists"})
		default:
			summary.Rows = append(summary.Rows, dto.ImportRowResult{Line: line, Status: "Missing required fields"})
		}
	}
	c.JSON(http.StatusOK, summary)
}

// importStudents expects columns: username,password,student_id,department,year.
func (h *importExportHandler) importStudents(c *gin.Context) {
	rows, ok := readCSVUpload(c)
	if !ok {
		return
	}

	summary := dto.ImportSummaryResponse{Rows: make([]dto.ImportRowResult, 0, len(rows))}
	for i, row := range rows {
		line := i + 2
		summary.Total++

		if len(row) < 3 || row[0] == "" || row[1] == "" || row[2] == "" {
			summary.Rows = append(summary.Rows, dto.ImportRowResult{Line: line, Status: "Missing required fields"})
			continue
		}
		if _, err := h.userService.GetUserByUsername(c.Request.Context(), row[0]); err == nil {
			summary.Rows = append(summary.Rows, dto.ImportRowResult{Line: line, Status: "Username exists"})
			continue
		}
		department, year := "", ""
		if len(row) > 3 {
			department = row[3]
		}
		if len(row) > 4 {
			year = row[4]
		}

		_, err := h.userService.CreateUser(c.Request.Context(), portssvc.NewUserParams{
			Username:   row[0],
			Password:   row[1],
			Role:       domain.RoleStudent,
			StudentID:  row[2],
			Department: department,
			Year:       year,
		})
		switch {
		case err == nil:
			summary.Imported++
			summary.Rows = append(summary.Rows, dto.ImportRowResult{Line: line, Status: "Imported"})
		case errors.Is(err, apperrors.ErrDuplicate):
			// Username was checked above, so the collision is the student ID.
			summary.Rows = append(summary.Rows, dto.ImportRowResult{Line: line, Status: "Student ID exists"})
		default:
			summary.Rows = append(summary.Rows, dto.ImportRowResult{Line: line, Status: "Missing required fields"})
		}
	}
	c.JSON(http.StatusOK, summary)
}

// writeCSV streams records as a CSV attachment.
func writeCSV(c *gin.Context, filename string, records [][]string) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(c.Writer)
	if err := writer.WriteAll(records); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to stream CSV",
			slog.String("error", err.Error()), slog.String("filename", filename))
	}
}

func (h *importExportHandler) exportBooks(c *gin.Context) {
	books, err := h.library.ListAllBooks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	records := [][]string{{"book_id", "title", "author", "isbn", "category", "total_copies", "available_copies"}}
	for _, book := range books {
		records = append(records, []string{
			book.BookID, book.Title, book.Author, book.ISBN, book.Category,
			strconv.Itoa(book.TotalCopies), strconv.Itoa(book.AvailableCopies),
		})
	}
	writeCSV(c, "books.csv", records)
}

func (h *importExportHandler) exportMembers(c *gin.Context) {
	members, err := h.library.ListAllMembers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	records := [][]string{{"member_id", "name", "email", "phone", "membership_type", "books_borrowed"}}
	for _, member := range members {
		records = append(records, []string{
			member.MemberID, member.Name, member.Email, member.Phone,
			string(member.MembershipType), strconv.Itoa(len(member.BorrowedBooks)),
		})
	}
	writeCSV(c, "members.csv", records)
}

func (h *importExportHandler) exportUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	records := [][]string{{"username", "role", "student_id", "department", "year"}}
	for _, user := range users {
		records = append(records, []string{
			user.Username, string(user.Role), user.StudentID, user.Department, user.Year,
		})
	}
	writeCSV(c, "users.csv", records)
}

// exportAttendance dumps today's records.
func (h *importExportHandler) exportAttendance(c *gin.Context) {
	records, err := h.library.DailyAttendance(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	rows := [][]string{{"visitor_id", "name", "type", "entry_time", "exit_time", "purpose"}}
	for _, record := range records {
		exitTime := "Still Present"
		if record.ExitTime != nil {
			exitTime = record.ExitTime.Format("2006-01-02 15:04:05")
		}
		rows = append(rows, []string{
			record.VisitorID, record.Name, string(record.VisitorType),
			record.EntryTime.Format("2006-01-02 15:04:05"), exitTime, record.Purpose,
		})
	}
	writeCSV(c, "attendance.csv", rows)
}

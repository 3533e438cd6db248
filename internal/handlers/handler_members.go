package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"github.com/chinmay655/Managment-for-library/internal/dto"
	"github.com/chinmay655/Managment-for-library/internal/middleware"
	"github.com/gin-gonic/gin"
)

// membersHandler handles HTTP requests for the member directory.
type membersHandler struct {
	library portssvc.LibrarySvcFacade
}

func newMembersHandler(library portssvc.LibrarySvcFacade) *membersHandler {
	return &membersHandler{library: library}
}

// registerMemberRoutes registers routes related to members.
func registerMemberRoutes(rg *gin.RouterGroup, library portssvc.LibrarySvcFacade) {
	h := newMembersHandler(library)

	members := rg.Group("/members")
	{
		members.POST("", h.createMember)
		members.GET("", h.listMembers)
		members.GET("/:memberID", h.getMember)
		members.DELETE("/:memberID", h.deleteMember)
	}
}

func (h *membersHandler) createMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	member := domain.NewMember(req.MemberID, req.Name, req.Email, req.Phone, domain.MembershipType(req.MembershipType), time.Now())
	if err := h.library.AddMember(c.Request.Context(), member); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberResponse(&member))
}

func (h *membersHandler) listMembers(c *gin.Context) {
	members, err := h.library.ListAllMembers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListMemberResponse(members))
}

func (h *membersHandler) getMember(c *gin.Context) {
	member, err := h.library.GetMember(c.Request.Context(), c.Param("memberID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *membersHandler) deleteMember(c *gin.Context) {
	if err := h.library.RemoveMember(c.Request.Context(), c.Param("memberID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

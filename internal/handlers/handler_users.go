package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"github.com/chinmay655/Managment-for-library/internal/dto"
	"github.com/chinmay655/Managment-for-library/internal/middleware"
	"github.com/gin-gonic/gin"
)

// usersHandler handles account administration. All of these routes sit
// behind the admin role guard.
type usersHandler struct {
	userService portssvc.UserSvcFacade
}

func newUsersHandler(userService portssvc.UserSvcFacade) *usersHandler {
	return &usersHandler{userService: userService}
}

// registerUserRoutes registers account administration routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUsersHandler(userService)

	users := rg.Group("/users", middleware.RequireAdmin())
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.DELETE("/:userID", h.deleteUser)
	}
}

func (h *usersHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), portssvc.NewUserParams{
		Username:   req.Username,
		Password:   req.Password,
		Role:       domain.UserRole(req.Role),
		StudentID:  req.StudentID,
		Department: req.Department,
		Year:       req.Year,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *usersHandler) listUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

func (h *usersHandler) deleteUser(c *gin.Context) {
	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("userID"), username); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

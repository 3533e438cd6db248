package middleware

import (
	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// Keys used to store the authenticated identity on the request context.
// Using a custom type prevents collisions.
const (
	userIDKey   = contextKey("userID")
	usernameKey = contextKey("username")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok
}

// GetUsernameFromContext retrieves the authenticated username from the request.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	username, ok := c.Request.Context().Value(usernameKey).(string)
	return username, ok
}

// GetUserRoleFromContext retrieves the authenticated user's role from the request.
func GetUserRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	role, ok := c.Request.Context().Value(userRoleKey).(domain.UserRole)
	return role, ok
}

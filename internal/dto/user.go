package dto

import (
	"github.com/chinmay655/Managment-for-library/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a web account.
type CreateUserRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required,oneof=admin user student"`
	StudentID  string `json:"studentID"`
	Department string `json:"department"`
	Year       string `json:"year"`
}

// UserResponse defines the data returned for an account. The password hash
// never leaves the service layer.
type UserResponse struct {
	UserID     string          `json:"userID"`
	Username   string          `json:"username"`
	Role       domain.UserRole `json:"role"`
	StudentID  string          `json:"studentID,omitempty"`
	Department string          `json:"department,omitempty"`
	Year       string          `json:"year,omitempty"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:     user.UserID,
		Username:   user.Username,
		Role:       user.Role,
		StudentID:  user.StudentID,
		Department: user.Department,
		Year:       user.Year,
	}
}

// ToListUserResponse converts a slice of domain.User to UserResponse DTOs
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = ToUserResponse(&users[i])
	}
	return res
}

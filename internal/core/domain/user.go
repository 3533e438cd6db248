package domain

// UserRole is the access level of a web-account user. Accounts are separate
// from library members: they control who may operate the system, not who may
// borrow books.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleUser    UserRole = "user"
	RoleStudent UserRole = "student"
)

// User is a persistent account for the web layer. StudentID, Department and
// Year are only set for student accounts.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	StudentID    string   `json:"studentID,omitempty"`
	Department   string   `json:"department,omitempty"`
	Year         string   `json:"year,omitempty"`
}

// IsAdmin reports whether the account has administrative access.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

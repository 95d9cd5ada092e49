package domain

import "time"

// Role represents the role of a user inside a business
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ValidRole returns true if r is a known role
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a registered user owned by a business
type User struct {
	ID           int64
	BusinessID   int64
	Name         string
	Surname      string
	Email        string
	PasswordHash string
	Phone        string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

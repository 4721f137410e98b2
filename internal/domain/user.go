package domain

import "time"

// Role values stored on a user record.
const (
	RoleMember     = "member"
	RoleEditor     = "editor"
	RoleSuperadmin = "superadmin"
)

// User represents a registered account of the blog.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	Role         string
	Date         time.Time
}

package model

import "time"

// UserRole names a dashboard role. Roles are descriptive only; no endpoint
// checks them.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleValidator UserRole = "validator"
	RoleMapper    UserRole = "mapper"
	RoleViewer    UserRole = "viewer"
)

// User is a dashboard operator.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

package entity

import "time"

// Application roles. Reports are ADMIN-only.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User is an API account (shop staff).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

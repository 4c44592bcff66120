// Package entities contains core business entities.
package entities

import (
	"strings"
	"time"
)

// Role enumerates account kinds.
type Role string

const (
	// RoleManager authors feedback for direct reports.
	RoleManager Role = "manager"
	// RoleEmployee receives and acknowledges feedback.
	RoleEmployee Role = "employee"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleManager || r == RoleEmployee
}

// User is a domain representation of an account as returned by the API.
type User struct {
	ID        int
	Username  string
	Email     string
	Role      Role
	ManagerID *int
	CreatedAt time.Time
}

// IsManager reports whether the user has the manager role.
func (u User) IsManager() bool {
	return u.Role == RoleManager
}

// LoginRequest carries login form input.
type LoginRequest struct {
	Username string
}

// RegisterRequest carries signup form input.
type RegisterRequest struct {
	Username  string
	Email     string
	Role      Role
	ManagerID *int
}

// Normalize trims text fields and drops the manager for manager accounts.
func (r RegisterRequest) Normalize() RegisterRequest {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	if r.Role == RoleManager {
		r.ManagerID = nil
	}
	return r
}

// Session is the outcome of a successful login or registration.
type Session struct {
	AccessToken string
	TokenType   string
	User        User
}

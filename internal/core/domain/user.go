package domain

import (
	"errors"
	"strings"
	"time"
)

// Roles form a closed set validated at registration. The stored form keeps
// the ROLE_ prefix; authorization decisions use the stripped capability.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

const (
	CapabilityUser  = "USER"
	CapabilityAdmin = "ADMIN"
)

const rolePrefix = "ROLE_"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrPasswordMismatch = errors.New("passwords do not match")
var ErrInvalidRole = errors.New("invalid role")
var ErrUserExists = errors.New("username already exists")
var ErrUserNotFound = errors.New("user not found")

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// Capability returns the authorization label for a stored role, stripping
// the ROLE_ prefix ("ROLE_ADMIN" → "ADMIN").
func Capability(role string) string {
	return strings.TrimPrefix(role, rolePrefix)
}

// Identity is the authenticated caller resolved for a single request.
// It is immutable and attached at most once by the auth gateway; requests
// without one are anonymous.
type Identity struct {
	Username   string
	Capability string
}

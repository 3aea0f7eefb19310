package models

import "time"

// Role is the account type chosen at registration.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Ability is a capability tag carried by an access token. Routes require a
// specific ability and reject tokens that do not carry it.
type Ability string

const (
	AbilityUserAccess  Ability = "user-access"
	AbilityAdminAccess Ability = "admin-access"
)

// User represents an account entity used for authentication and authorization.
// PasswordHash is never serialized.
type User struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`

	// PasswordHash holds the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"-"`
}

// IsAdmin reports whether the user registered with the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Ability returns the single ability granted to tokens issued for u.
func (u User) Ability() Ability {
	if u.IsAdmin() {
		return AbilityAdminAccess
	}
	return AbilityUserAccess
}

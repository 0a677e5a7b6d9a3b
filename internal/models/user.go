// Package models contains the domain structures shared between the business
// logic and the storage layer.
package models

import "time"

// Roles assigned to a session. Admin is never stored; the reserved credential
// pair from config produces it at login time.
const (
	RoleUser     = "user"
	RoleReseller = "reseller"
	RoleAdmin    = "admin"
)

// User is a registered buyer. Users are never deleted and never mutated after
// registration.
type User struct {
	Email        string    // Unique key
	PasswordHash string    // bcrypt hash of the registration password
	CreatedAt    time.Time // Registration instant
}

// Session is the authenticated principal handed back by login and register.
type Session struct {
	Email      string `json:"email"`
	IsAdmin    bool   `json:"is_admin"`
	IsReseller bool   `json:"is_reseller"`
	Token      string `json:"token"`
}

// Role returns the role string encoded into the session token.
func (s Session) Role() string {
	switch {
	case s.IsAdmin:
		return RoleAdmin
	case s.IsReseller:
		return RoleReseller
	default:
		return RoleUser
	}
}

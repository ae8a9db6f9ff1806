package domain

import (
	"errors"
	"strings"
)

const (
	RoleAdmin  = "admin"
	RoleWaiter = "waiter"
	RoleChef   = "chef"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("wrong password or email")

// User models a staff member who can authenticate against the API.
// PasswordHash is never serialized.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// ValidRole reports whether role is one of the recognized roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleWaiter, RoleChef:
		return true
	}
	return false
}

// UserKey identifies a user either by id or by email. Exactly one side is
// set; the tag is derived once at the boundary instead of re-checking
// "looks like an email" in every operation.
type UserKey struct {
	ID    string
	Email string
}

// ParseUserKey classifies a path segment as an email (contains '@') or an id.
// Emails are lowercased so lookups are case-insensitive.
func ParseUserKey(s string) UserKey {
	if strings.Contains(s, "@") {
		return UserKey{Email: strings.ToLower(s)}
	}
	return UserKey{ID: s}
}

// ByEmail reports whether the key carries an email.
func (k UserKey) ByEmail() bool { return k.Email != "" }

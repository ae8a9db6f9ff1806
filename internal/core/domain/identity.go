package domain

import "errors"

var ErrUnauthorized = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidToken = errors.New("invalid token")
var ErrTooManyAttempts = errors.New("too many login attempts")

// Identity is the resolved caller of an authenticated request.
// A request with no Identity in its context is anonymous.
type Identity struct {
	ID    string
	Email string
	Role  string
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// Matches reports whether key refers to this identity, by id or by email.
func (i Identity) Matches(key UserKey) bool {
	if key.ByEmail() {
		return i.Email == key.Email
	}
	return i.ID == key.ID
}

package ports

import "context"

type AuthService interface {
	// Login verifies email+password and returns a signed access token.
	Login(ctx context.Context, email, password string) (string, error)
}

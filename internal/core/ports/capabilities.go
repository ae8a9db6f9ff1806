package ports

import "context"

// TokenManager is the opaque token capability: sign a subject into a bearer
// token and verify a token back into its subject.
type TokenManager interface {
	Sign(userID string) (string, error)
	// Verify returns the subject (uid claim) or domain.ErrInvalidToken when
	// the token is malformed, expired or carries a bad signature.
	Verify(token string) (string, error)
}

// PasswordHasher is the one-way hash capability used for stored passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare returns nil when plain matches hash.
	Compare(hash, plain string) error
}

// LoginLimiter throttles authentication attempts per key (the login email).
type LoginLimiter interface {
	// Allow records one attempt and reports whether it is within budget.
	Allow(ctx context.Context, key string) (bool, error)
	// Reset clears the attempt counter after a successful login.
	Reset(ctx context.Context, key string) error
}

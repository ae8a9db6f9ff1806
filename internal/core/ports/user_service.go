package ports

import (
	"context"

	"github.com/burger-queen/ordering-api/internal/core/domain"
)

// CreateUserInput carries registration data. Role is optional; an
// unrecognized role falls back to waiter.
type CreateUserInput struct {
	Email    string
	Password string
	Role     string
}

// UpdateUserInput is a partial update; nil means "leave unchanged".
type UpdateUserInput struct {
	Email    *string
	Password *string
	Role     *string
}

// UserService is the User Directory: user CRUD with email uniqueness and
// password policy enforcement.
type UserService interface {
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
	Get(ctx context.Context, key domain.UserKey) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	// Update applies the patch on behalf of actor. A non-admin actor trying
	// to change a role is rejected before any field is applied.
	Update(ctx context.Context, actor domain.Identity, key domain.UserKey, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, key domain.UserKey) error
	// EnsureAdmin creates the bootstrap admin account when absent.
	EnsureAdmin(ctx context.Context, email, password string) error
}

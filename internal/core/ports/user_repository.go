package ports

import (
	"context"

	"github.com/burger-queen/ordering-api/internal/core/domain"
)

// UserRepository defines persistence operations for the users collection.
// Create and Update must surface storage-level unique-email violations as
// domain.ErrEmailTaken; the unique index is the source of truth, any
// in-service pre-check is an optimization only.
type UserRepository interface {
	// List returns one page of users in insertion order plus the total count.
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
	FindByKey(ctx context.Context, key domain.UserKey) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

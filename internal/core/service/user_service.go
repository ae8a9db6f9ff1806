package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/burger-queen/ordering-api/internal/core/domain"
	"github.com/burger-queen/ordering-api/internal/core/ports"
)

var emailRx = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// UserService implements the User Directory.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

func (s *UserService) List(ctx context.Context, page, limit int) ([]*domain.User, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *UserService) Get(ctx context.Context, key domain.UserKey) (*domain.User, error) {
	return s.repo.FindByKey(ctx, key)
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !emailRx.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	// Unrecognized role values never escalate; they fall back to waiter.
	role := in.Role
	if !domain.ValidRole(role) {
		role = domain.RoleWaiter
	}

	// Friendly pre-check only. The unique index on email is authoritative:
	// a concurrent create racing past this check still fails on insert.
	if _, err := s.repo.FindByKey(ctx, domain.UserKey{Email: email}); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, actor domain.Identity, key domain.UserKey, in ports.UpdateUserInput) (*domain.User, error) {
	if in.Email == nil && in.Password == nil && in.Role == nil {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}

	user, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	// Role changes are admin-only; reject before touching any other field.
	if in.Role != nil && *in.Role != user.Role && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if !emailRx.MatchString(email) {
			return nil, fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
		}
		user.Email = email
	}
	if in.Password != nil {
		if err := validatePassword(*in.Password); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if in.Role != nil {
		if !domain.ValidRole(*in.Role) {
			return nil, fmt.Errorf("%w: invalid role", domain.ErrInvalidInput)
		}
		user.Role = *in.Role
	}

	return s.repo.Update(ctx, user.ID, user)
}

func (s *UserService) Delete(ctx context.Context, key domain.UserKey) error {
	user, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, user.ID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", user.ID).Msg("user deleted")
	return nil
}

// EnsureAdmin seeds the bootstrap admin account on startup when it does not
// exist yet. A concurrent replica losing the insert race is fine.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(email)
	_, err := s.repo.FindByKey(ctx, domain.UserKey{Email: email})
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	_, err = s.repo.Create(ctx, &domain.User{Email: email, PasswordHash: hash, Role: domain.RoleAdmin})
	if errors.Is(err, domain.ErrEmailTaken) {
		return nil
	}
	if err == nil {
		s.logger.Info().Str("email", email).Msg("bootstrap admin created")
	}
	return err
}

// validatePassword enforces the password policy: at least 8 characters with
// one lowercase letter, one uppercase letter and one digit.
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidInput)
	}
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !lower || !upper || !digit {
		return fmt.Errorf("%w: password needs a lowercase letter, an uppercase letter and a digit", domain.ErrInvalidInput)
	}
	return nil
}

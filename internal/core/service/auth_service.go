package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/burger-queen/ordering-api/internal/core/domain"
	"github.com/burger-queen/ordering-api/internal/core/ports"
)

// AuthService implements login: credential check plus token issuance.
type AuthService struct {
	users   ports.UserRepository
	tokens  ports.TokenManager
	hasher  ports.PasswordHasher
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenManager, hasher ports.PasswordHasher, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, hasher: hasher, limiter: limiter, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email or password cannot be empty", domain.ErrInvalidInput)
	}
	email = strings.ToLower(email)

	// Throttling fails open: a broken limiter must not take login down.
	ok, err := s.limiter.Allow(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login limiter unavailable")
	} else if !ok {
		return "", domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByKey(ctx, domain.UserKey{Email: email})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if s.hasher.Compare(user.PasswordHash, password) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		return "", err
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login limiter reset failed")
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")
	return token, nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/burger-queen/ordering-api/internal/core/domain"
	"github.com/burger-queen/ordering-api/internal/core/ports"
)

func newUserFixture(t *testing.T) (*UserService, *stubUserRepo) {
	t.Helper()
	repo := newStubUserRepo()
	return NewUserService(repo, stubHasher{}, zerolog.Nop()), repo
}

func strPtr(s string) *string { return &s }

func TestUserService_Create_Success(t *testing.T) {
	svc, _ := newUserFixture(t)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "Bob@Example.COM",
		Password: "Secret123",
		Role:     domain.RoleChef,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.Email != "bob@example.com" {
		t.Fatalf("email not lowercased: %q", user.Email)
	}
	if user.Role != domain.RoleChef {
		t.Fatalf("unexpected role: %q", user.Role)
	}
	if user.PasswordHash == "Secret123" {
		t.Fatalf("password stored in plaintext")
	}
	if user.ID == "" {
		t.Fatalf("expected an assigned id")
	}
}

func TestUserService_Create_InvalidRoleDefaultsToWaiter(t *testing.T) {
	svc, _ := newUserFixture(t)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "bob@example.com",
		Password: "Secret123",
		Role:     "superuser",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.Role != domain.RoleWaiter {
		t.Fatalf("expected waiter fallback, got %q", user.Role)
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	svc, _ := newUserFixture(t)

	cases := []struct {
		name string
		in   ports.CreateUserInput
	}{
		{"bad email", ports.CreateUserInput{Email: "not-an-email", Password: "Secret123"}},
		{"short password", ports.CreateUserInput{Email: "a@b.com", Password: "Ab1"}},
		{"no uppercase", ports.CreateUserInput{Email: "a@b.com", Password: "secret123"}},
		{"no digit", ports.CreateUserInput{Email: "a@b.com", Password: "SecretPass"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), tc.in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc, _ := newUserFixture(t)

	in := ports.CreateUserInput{Email: "bob@example.com", Password: "Secret123"}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Update_RoleChangeRequiresAdmin(t *testing.T) {
	svc, repo := newUserFixture(t)
	user := seedUser(t, repo, "bob@example.com", "Secret123", domain.RoleWaiter)

	actor := domain.Identity{ID: user.ID, Email: user.Email, Role: domain.RoleWaiter}
	_, err := svc.Update(context.Background(), actor, domain.UserKey{ID: user.ID}, ports.UpdateUserInput{
		Role: strPtr(domain.RoleAdmin),
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	stored, _ := repo.FindByKey(context.Background(), domain.UserKey{ID: user.ID})
	if stored.Role != domain.RoleWaiter {
		t.Fatalf("role changed despite rejection: %q", stored.Role)
	}
}

func TestUserService_Update_AdminChangesRole(t *testing.T) {
	svc, repo := newUserFixture(t)
	user := seedUser(t, repo, "bob@example.com", "Secret123", domain.RoleWaiter)

	admin := domain.Identity{ID: "u99", Role: domain.RoleAdmin}
	updated, err := svc.Update(context.Background(), admin, domain.UserKey{ID: user.ID}, ports.UpdateUserInput{
		Role: strPtr(domain.RoleChef),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleChef {
		t.Fatalf("expected chef, got %q", updated.Role)
	}
}

func TestUserService_Update_InvalidRoleRejected(t *testing.T) {
	svc, repo := newUserFixture(t)
	user := seedUser(t, repo, "bob@example.com", "Secret123", domain.RoleWaiter)

	admin := domain.Identity{ID: "u99", Role: domain.RoleAdmin}
	_, err := svc.Update(context.Background(), admin, domain.UserKey{ID: user.ID}, ports.UpdateUserInput{
		Role: strPtr("superuser"),
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_Update_EmptyPatch(t *testing.T) {
	svc, repo := newUserFixture(t)
	user := seedUser(t, repo, "bob@example.com", "Secret123", domain.RoleWaiter)

	actor := domain.Identity{ID: user.ID, Role: domain.RoleWaiter}
	_, err := svc.Update(context.Background(), actor, domain.UserKey{ID: user.ID}, ports.UpdateUserInput{})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_Update_PasswordRehashed(t *testing.T) {
	svc, repo := newUserFixture(t)
	user := seedUser(t, repo, "bob@example.com", "Secret123", domain.RoleWaiter)

	actor := domain.Identity{ID: user.ID, Role: domain.RoleWaiter}
	updated, err := svc.Update(context.Background(), actor, domain.UserKey{ID: user.ID}, ports.UpdateUserInput{
		Password: strPtr("NewSecret1"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash != "hashed:NewSecret1" {
		t.Fatalf("password not rehashed: %q", updated.PasswordHash)
	}
}

func TestUserService_Update_ByEmailKey(t *testing.T) {
	svc, repo := newUserFixture(t)
	user := seedUser(t, repo, "bob@example.com", "Secret123", domain.RoleWaiter)

	actor := domain.Identity{ID: user.ID, Email: user.Email, Role: domain.RoleWaiter}
	updated, err := svc.Update(context.Background(), actor, domain.UserKey{Email: "bob@example.com"}, ports.UpdateUserInput{
		Email: strPtr("robert@example.com"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Email != "robert@example.com" {
		t.Fatalf("email not updated: %q", updated.Email)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc, repo := newUserFixture(t)
	user := seedUser(t, repo, "bob@example.com", "Secret123", domain.RoleWaiter)

	if err := svc.Delete(context.Background(), domain.UserKey{Email: "bob@example.com"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByKey(context.Background(), domain.UserKey{ID: user.ID}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after delete")
	}

	if err := svc.Delete(context.Background(), domain.UserKey{Email: "bob@example.com"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_EnsureAdmin(t *testing.T) {
	svc, repo := newUserFixture(t)

	if err := svc.EnsureAdmin(context.Background(), "Admin@Example.com", "Bootstrap1"); err != nil {
		t.Fatalf("first EnsureAdmin failed: %v", err)
	}

	admin, err := repo.FindByKey(context.Background(), domain.UserKey{Email: "admin@example.com"})
	if err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", admin.Role)
	}

	// Second run is a no-op, not a conflict.
	if err := svc.EnsureAdmin(context.Background(), "admin@example.com", "Bootstrap1"); err != nil {
		t.Fatalf("second EnsureAdmin failed: %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one admin, got %d users", len(repo.users))
	}
}

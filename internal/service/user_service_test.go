package service

import (
	"errors"
	"testing"

	"github.com/rastechno/internal/db"
)

func setupUserService(t *testing.T) (*UserService, func()) {
	t.Helper()
	gdb, cleanup := openTestDB(t, &db.User{})
	return NewUserService(gdb), cleanup
}

func TestEnsureAdminCreatesAccountOnce(t *testing.T) {
	svc, cleanup := setupUserService(t)
	defer cleanup()

	if err := svc.EnsureAdmin("admin", "secret-pass"); err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}
	// 再次调用不应报错，也不应重置密码
	if err := svc.EnsureAdmin("admin", "different-pass"); err != nil {
		t.Fatalf("repeated EnsureAdmin returned error: %v", err)
	}

	user, err := svc.Authenticate("admin", "secret-pass")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user.Role != db.RoleAdmin {
		t.Fatalf("expected admin role, got %s", user.Role)
	}

	if _, err := svc.Authenticate("admin", "different-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected original password to stay valid only, got %v", err)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc, cleanup := setupUserService(t)
	defer cleanup()

	if err := svc.EnsureAdmin("admin", "secret-pass"); err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}

	if _, err := svc.Authenticate("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate("nobody", "secret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestChangePasswordRequiresOldPassword(t *testing.T) {
	svc, cleanup := setupUserService(t)
	defer cleanup()

	if err := svc.EnsureAdmin("admin", "secret-pass"); err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}
	user, err := svc.Authenticate("admin", "secret-pass")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong", "new-secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "secret-pass", "short"); !errors.Is(err, ErrUserInvalidInput) {
		t.Fatalf("expected ErrUserInvalidInput for short password, got %v", err)
	}

	if err := svc.ChangePassword(user.ID, "secret-pass", "new-secret"); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}
	if _, err := svc.Authenticate("admin", "new-secret"); err != nil {
		t.Fatalf("expected new password to work, got %v", err)
	}
}

package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tripplanner/internal/auth"
	"tripplanner/internal/storage"
	"tripplanner/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "tripplanner-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(newTestStore(t), auth.NewSessionManager("test-secret", time.Hour))
}

func TestRegister(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "a@x.com", "alice", "password1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected user ID to be assigned")
	}
	if user.PasswordHash == "password1" || user.PasswordHash == "" {
		t.Error("expected password to be stored hashed")
	}
	if user.IsAdmin {
		t.Error("expected new users to not be admins")
	}

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, "a@x.com", "alice2", "password1")
		if !errors.Is(err, ErrDuplicateIdentity) {
			t.Errorf("expected ErrDuplicateIdentity, got %v", err)
		}
	})

	t.Run("duplicate nickname rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, "a2@x.com", "alice", "password1")
		if !errors.Is(err, ErrDuplicateIdentity) {
			t.Errorf("expected ErrDuplicateIdentity, got %v", err)
		}
	})

	t.Run("distinct identity succeeds", func(t *testing.T) {
		if _, err := svc.Register(ctx, "b@x.com", "bob", "password2"); err != nil {
			t.Errorf("expected registration to succeed, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name                      string
			email, nickname, password string
		}{
			{"empty email", "", "carol", "password3"},
			{"email without at-sign", "not-an-email", "carol", "password3"},
			{"empty nickname", "c@x.com", "", "password3"},
			{"short password", "c@x.com", "carol", "short"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Register(ctx, tc.email, tc.nickname, tc.password)
				if !errors.Is(err, ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
			})
		}
	})
}

func TestAuthenticate(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "a@x.com", "alice", "password1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("correct credentials yield a working token", func(t *testing.T) {
		user, token, err := svc.Authenticate(ctx, "a@x.com", "password1")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.ID != registered.ID {
			t.Errorf("expected user %d, got %d", registered.ID, user.ID)
		}

		resolved, err := svc.UserFromToken(ctx, token)
		if err != nil {
			t.Fatalf("UserFromToken failed: %v", err)
		}
		if resolved.ID != registered.ID {
			t.Errorf("token resolved to user %d, expected %d", resolved.ID, registered.ID)
		}
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, _, errWrong := svc.Authenticate(ctx, "a@x.com", "wrong-password")
		_, _, errUnknown := svc.Authenticate(ctx, "nobody@x.com", "password1")

		if !errors.Is(errWrong, ErrInvalidCredentials) {
			t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrong)
		}
		if !errors.Is(errUnknown, ErrInvalidCredentials) {
			t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
		}
		if errWrong.Error() != errUnknown.Error() {
			t.Error("expected identical error text for both failure modes")
		}
	})
}

func TestUserFromToken(t *testing.T) {
	sessions := auth.NewSessionManager("test-secret", time.Hour)
	store := newTestStore(t)
	svc := NewAuthService(store, sessions)
	ctx := context.Background()

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.UserFromToken(ctx, "not-a-token")
		if !errors.Is(err, ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("valid token for deleted user", func(t *testing.T) {
		user, err := svc.Register(ctx, "gone@x.com", "ghost", "password1")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		token, err := sessions.CreateToken(user.ID)
		if err != nil {
			t.Fatalf("CreateToken failed: %v", err)
		}
		if err := store.DeleteUser(ctx, user.ID); err != nil {
			t.Fatalf("DeleteUser failed: %v", err)
		}

		_, err = svc.UserFromToken(ctx, token)
		if !errors.Is(err, ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})
}

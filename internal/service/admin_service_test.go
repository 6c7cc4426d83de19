package service

import (
	"context"
	"errors"
	"testing"

	"tripplanner/internal/models"
	"tripplanner/internal/storage"
)

func seedAdmin(t *testing.T, store storage.Store, email, nickname string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Nickname: nickname, PasswordHash: "x", IsAdmin: true}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seed admin %s: %v", nickname, err)
	}
	return user
}

func TestAdminListUsers(t *testing.T) {
	store := newTestStore(t)
	svc := NewAdminService(store)
	ctx := context.Background()

	admin := seedAdmin(t, store, "root@x.com", "root")
	alice := seedUser(t, store, "a@x.com", "alice")

	t.Run("regular user forbidden", func(t *testing.T) {
		_, err := svc.ListUsers(ctx, alice)
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("admin sees everyone", func(t *testing.T) {
		users, err := svc.ListUsers(ctx, admin)
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if len(users) != 2 {
			t.Errorf("expected 2 users, got %d", len(users))
		}
	})
}

func TestAdminDeleteUser(t *testing.T) {
	store := newTestStore(t)
	admin := NewAdminService(store)
	trips := NewTripService(store)
	ctx := context.Background()

	root := seedAdmin(t, store, "root@x.com", "root")
	alice := seedUser(t, store, "a@x.com", "alice")
	bob := seedUser(t, store, "b@x.com", "bob")

	trip, err := trips.Create(ctx, alice.ID, "Ski Trip", "", 0)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := trips.AddMember(ctx, alice.ID, trip.ID, "bob"); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	t.Run("regular user forbidden", func(t *testing.T) {
		if err := admin.DeleteUser(ctx, alice, bob.ID); !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("admin cannot delete themselves", func(t *testing.T) {
		if err := admin.DeleteUser(ctx, root, root.ID); !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("missing user is NotFound", func(t *testing.T) {
		if err := admin.DeleteUser(ctx, root, 9999); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("deletion cascades organized trips", func(t *testing.T) {
		if err := admin.DeleteUser(ctx, root, alice.ID); err != nil {
			t.Fatalf("DeleteUser failed: %v", err)
		}

		// Alice's trip is gone, so Bob sees NotFound rather than Forbidden.
		_, err := trips.Get(ctx, bob.ID, trip.ID)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

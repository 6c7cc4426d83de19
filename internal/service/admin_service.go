package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tripplanner/internal/models"
	"tripplanner/internal/storage"
)

// AdminService implements account administration. The IsAdmin flag gates
// these operations and nothing else: admins get no special access to trips.
type AdminService struct {
	store storage.Store
}

// NewAdminService creates a new AdminService with the given storage backend.
func NewAdminService(store storage.Store) *AdminService {
	return &AdminService{store: store}
}

// ListUsers returns every account, ordered by ID. Admin only.
func (s *AdminService) ListUsers(ctx context.Context, actor *models.User) ([]models.User, error) {
	if !actor.IsAdmin {
		return nil, fmt.Errorf("list users: %w", ErrForbidden)
	}

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes an account; trips they organize and their memberships
// cascade. Admin only, and admins cannot delete their own account.
func (s *AdminService) DeleteUser(ctx context.Context, actor *models.User, targetID int64) error {
	if !actor.IsAdmin {
		return fmt.Errorf("delete user %d: %w", targetID, ErrForbidden)
	}
	if targetID == actor.ID {
		return fmt.Errorf("%w: cannot delete your own account", ErrValidation)
	}

	if err := s.store.DeleteUser(ctx, targetID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("user %d: %w", targetID, ErrNotFound)
		}
		return fmt.Errorf("delete user: %w", err)
	}

	slog.Info("User deleted", "user_id", targetID, "deleted_by", actor.ID)
	return nil
}

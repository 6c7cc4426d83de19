// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"tripplanner/internal/models"
)

var (
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (email, nickname, or an existing membership pair). It is
	// the store-level backstop for the service's pre-checks: under
	// concurrent requests the pre-check can pass for both, and the
	// constraint decides.
	ErrDuplicate = errors.New("row already exists")

	// ErrNotFound is returned by updates and deletes that matched no row.
	ErrNotFound = errors.New("row not found")
)

// Store defines the persistence operations for users, trips, memberships and
// expenses. This abstraction allows swapping storage backends (SQLite,
// PostgreSQL, etc.) without changing the service layer.
//
// Lookups return (nil, nil) when the row does not exist.
type Store interface {
	// CreateUser persists a new user, assigning ID and CreatedAt.
	// Returns ErrDuplicate if the email or nickname is taken.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByNickname(ctx context.Context, nickname string) (*models.User, error)

	// GetUsersByIDs retrieves multiple users keyed by ID. Missing users
	// are omitted from the result.
	GetUsersByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error)

	// ListUsers returns all users ordered by ID.
	ListUsers(ctx context.Context) ([]models.User, error)

	// DeleteUser removes a user and cascades to their organized trips and
	// memberships. Returns ErrNotFound if no such user exists.
	DeleteUser(ctx context.Context, id int64) error

	// CreateTrip persists a new trip, assigning ID and CreatedAt.
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, id int64) (*models.Trip, error)

	// UpdateTrip rewrites name, description and budget.
	// Returns ErrNotFound if no such trip exists.
	UpdateTrip(ctx context.Context, trip *models.Trip) error

	// DeleteTrip removes a trip and cascades to its memberships and
	// expenses. Returns ErrNotFound if no such trip exists.
	DeleteTrip(ctx context.Context, id int64) error

	// ListTripsByOrganizer returns trips organized by the user, ordered by ID.
	ListTripsByOrganizer(ctx context.Context, userID int64) ([]models.Trip, error)

	// ListTripsByMember returns trips the user holds a membership for,
	// ordered by ID.
	ListTripsByMember(ctx context.Context, userID int64) ([]models.Trip, error)

	// CreateMembership persists a membership, assigning JoinedAt.
	// Returns ErrDuplicate if the (user, trip) pair already exists.
	CreateMembership(ctx context.Context, membership *models.Membership) error

	// DeleteMembership removes one membership row.
	// Returns ErrNotFound if the pair does not exist.
	DeleteMembership(ctx context.Context, userID, tripID int64) error

	// ListMembershipsByTrip returns a trip's memberships ordered by user ID.
	ListMembershipsByTrip(ctx context.Context, tripID int64) ([]models.Membership, error)

	// CreateExpense persists an expense, assigning ID and CreatedAt.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpensesByTrip returns a trip's expenses ordered by ID.
	ListExpensesByTrip(ctx context.Context, tripID int64) ([]models.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}

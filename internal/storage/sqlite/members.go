package sqlite

import (
	"context"
	"fmt"
	"time"

	"tripplanner/internal/models"
	"tripplanner/internal/storage"
)

// CreateMembership inserts a membership row and populates JoinedAt.
// The (user_id, trip_id) primary key enforces at most one row per pair.
func (s *SQLiteStore) CreateMembership(ctx context.Context, membership *models.Membership) error {
	if membership.JoinedAt == 0 {
		membership.JoinedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO trip_members (user_id, trip_id, joined_at) VALUES (?, ?, ?)",
		membership.UserID, membership.TripID, membership.JoinedAt,
	)
	if isUniqueViolation(err) {
		return storage.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}
	return nil
}

// DeleteMembership removes one membership row.
func (s *SQLiteStore) DeleteMembership(ctx context.Context, userID, tripID int64) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM trip_members WHERE user_id = ? AND trip_id = ?",
		userID, tripID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListMembershipsByTrip returns a trip's memberships ordered by user ID.
func (s *SQLiteStore) ListMembershipsByTrip(ctx context.Context, tripID int64) ([]models.Membership, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id, trip_id, joined_at FROM trip_members WHERE trip_id = ? ORDER BY user_id",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []models.Membership
	for rows.Next() {
		var m models.Membership
		if err := rows.Scan(&m.UserID, &m.TripID, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating memberships: %w", err)
	}

	return memberships, nil
}

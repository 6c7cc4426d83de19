package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tripplanner/internal/models"
	"tripplanner/internal/storage"
)

const tripColumns = "id, name, description, budget, organizer_id, created_at"

// CreateTrip inserts a new trip and populates ID and CreatedAt.
func (s *SQLiteStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if trip.CreatedAt == 0 {
		trip.CreatedAt = time.Now().Unix()
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO trips (name, description, budget, organizer_id, created_at) VALUES (?, ?, ?, ?, ?)",
		trip.Name, trip.Description, trip.Budget, trip.OrganizerID, trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	trip.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read trip id: %w", err)
	}
	return nil
}

// GetTrip retrieves a trip by ID.
func (s *SQLiteStore) GetTrip(ctx context.Context, id int64) (*models.Trip, error) {
	trip := &models.Trip{}
	err := s.db.QueryRowContext(ctx,
		"SELECT "+tripColumns+" FROM trips WHERE id = ?", id,
	).Scan(&trip.ID, &trip.Name, &trip.Description, &trip.Budget, &trip.OrganizerID, &trip.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// UpdateTrip rewrites the mutable trip fields: name, description and budget.
// The organizer reference never changes.
func (s *SQLiteStore) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE trips SET name = ?, description = ?, budget = ? WHERE id = ?",
		trip.Name, trip.Description, trip.Budget, trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
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

// DeleteTrip removes a trip. Memberships and expenses cascade.
func (s *SQLiteStore) DeleteTrip(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
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

// ListTripsByOrganizer returns all trips the user organizes, ordered by ID.
func (s *SQLiteStore) ListTripsByOrganizer(ctx context.Context, userID int64) ([]models.Trip, error) {
	return s.listTrips(ctx,
		"SELECT "+tripColumns+" FROM trips WHERE organizer_id = ? ORDER BY id", userID)
}

// ListTripsByMember returns all trips the user holds a membership for,
// ordered by ID.
func (s *SQLiteStore) ListTripsByMember(ctx context.Context, userID int64) ([]models.Trip, error) {
	return s.listTrips(ctx,
		`SELECT t.id, t.name, t.description, t.budget, t.organizer_id, t.created_at
		 FROM trips t
		 JOIN trip_members m ON m.trip_id = t.id
		 WHERE m.user_id = ?
		 ORDER BY t.id`, userID)
}

func (s *SQLiteStore) listTrips(ctx context.Context, query string, args ...interface{}) ([]models.Trip, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var trip models.Trip
		if err := rows.Scan(&trip.ID, &trip.Name, &trip.Description, &trip.Budget, &trip.OrganizerID, &trip.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trips: %w", err)
	}

	return trips, nil
}

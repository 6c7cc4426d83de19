package sqlite

import (
	"context"
	"fmt"
	"time"

	"tripplanner/internal/models"
)

// CreateExpense inserts an expense row and populates ID and CreatedAt.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO expenses (trip_id, payer_id, title, amount, created_at) VALUES (?, ?, ?, ?, ?)",
		expense.TripID, expense.PayerID, expense.Title, expense.Amount, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	expense.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense id: %w", err)
	}
	return nil
}

// ListExpensesByTrip returns a trip's expenses ordered by ID.
func (s *SQLiteStore) ListExpensesByTrip(ctx context.Context, tripID int64) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, trip_id, payer_id, title, amount, created_at FROM expenses WHERE trip_id = ? ORDER BY id",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.TripID, &e.PayerID, &e.Title, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

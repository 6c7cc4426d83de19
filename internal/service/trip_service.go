package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"tripplanner/internal/budget"
	"tripplanner/internal/models"
	"tripplanner/internal/policy"
	"tripplanner/internal/storage"
)

// TripService implements trip CRUD, membership mutations and expense
// tracking. Every operation takes the authenticated caller's user ID and
// consults the authorization policy before touching anything.
//
// Failure ordering is fixed: the existence check runs before the access
// check, so a missing trip is ErrNotFound even when the caller could not
// have viewed it, and ErrForbidden always refers to a row that exists.
type TripService struct {
	store storage.Store
}

// NewTripService creates a new TripService with the given storage backend.
func NewTripService(store storage.Store) *TripService {
	return &TripService{store: store}
}

// TripMember is one member of a trip with their join timestamp.
type TripMember struct {
	UserID   int64
	Nickname string
	JoinedAt int64
}

// TripDetail aggregates everything a viewer sees on a single trip.
type TripDetail struct {
	Trip     models.Trip
	Members  []TripMember
	Expenses []models.Expense
	Summary  budget.Summary
}

// Create makes a new trip owned by organizerID. The name is required;
// the budget defaults to zero.
func (s *TripService) Create(ctx context.Context, organizerID int64, name, description string, budgetAmount float64) (*models.Trip, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if budgetAmount < 0 {
		return nil, fmt.Errorf("%w: budget cannot be negative", ErrValidation)
	}

	trip := &models.Trip{
		Name:        name,
		Description: description,
		Budget:      budgetAmount,
		OrganizerID: organizerID,
	}
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	slog.Info("Trip created", "trip_id", trip.ID, "organizer_id", organizerID)
	return trip, nil
}

// ListForUser returns every trip the user can view: trips they organize
// unioned with trips they are a member of, deduplicated and ordered by
// ascending trip ID so repeated calls see the same order.
func (s *TripService) ListForUser(ctx context.Context, userID int64) ([]models.Trip, error) {
	organized, err := s.store.ListTripsByOrganizer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list organized trips: %w", err)
	}
	member, err := s.store.ListTripsByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list member trips: %w", err)
	}

	seen := make(map[int64]bool, len(organized)+len(member))
	trips := make([]models.Trip, 0, len(organized)+len(member))
	for _, t := range append(organized, member...) {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		trips = append(trips, t)
	}
	sort.Slice(trips, func(i, j int) bool { return trips[i].ID < trips[j].ID })

	return trips, nil
}

// Get returns the trip with its members, expenses and budget summary if the
// caller may view it.
func (s *TripService) Get(ctx context.Context, userID, tripID int64) (*TripDetail, error) {
	trip, memberships, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(userID, trip, memberships) {
		return nil, fmt.Errorf("view trip %d: %w", tripID, ErrForbidden)
	}

	memberIDs := make([]int64, len(memberships))
	for i, m := range memberships {
		memberIDs[i] = m.UserID
	}
	users, err := s.store.GetUsersByIDs(ctx, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}

	members := make([]TripMember, 0, len(memberships))
	for _, m := range memberships {
		member := TripMember{UserID: m.UserID, JoinedAt: m.JoinedAt}
		if u := users[m.UserID]; u != nil {
			member.Nickname = u.Nickname
		}
		members = append(members, member)
	}

	expenses, err := s.store.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}

	return &TripDetail{
		Trip:     *trip,
		Members:  members,
		Expenses: expenses,
		Summary:  budget.Summarize(trip.Budget, expenses, 1+len(memberships)),
	}, nil
}

// Update mutates name, description and budget in place. Organizer only.
func (s *TripService) Update(ctx context.Context, userID, tripID int64, name, description string, budgetAmount float64) (*models.Trip, error) {
	trip, _, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutate(userID, trip) {
		return nil, fmt.Errorf("update trip %d: %w", tripID, ErrForbidden)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if budgetAmount < 0 {
		return nil, fmt.Errorf("%w: budget cannot be negative", ErrValidation)
	}

	trip.Name = name
	trip.Description = description
	trip.Budget = budgetAmount
	if err := s.store.UpdateTrip(ctx, trip); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("update trip %d: %w", tripID, ErrNotFound)
		}
		return nil, fmt.Errorf("update trip: %w", err)
	}

	slog.Info("Trip updated", "trip_id", tripID, "user_id", userID)
	return trip, nil
}

// Delete removes the trip; memberships and expenses cascade. Organizer only.
func (s *TripService) Delete(ctx context.Context, userID, tripID int64) error {
	trip, _, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if !policy.CanMutate(userID, trip) {
		return fmt.Errorf("delete trip %d: %w", tripID, ErrForbidden)
	}

	if err := s.store.DeleteTrip(ctx, tripID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("delete trip %d: %w", tripID, ErrNotFound)
		}
		return fmt.Errorf("delete trip: %w", err)
	}

	slog.Info("Trip deleted", "trip_id", tripID, "user_id", userID)
	return nil
}

// AddMember grants the user with the given nickname view access to the trip.
// Organizer only; the organizer themselves and existing members are rejected.
func (s *TripService) AddMember(ctx context.Context, userID, tripID int64, nickname string) (*models.Membership, error) {
	trip, memberships, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutate(userID, trip) {
		return nil, fmt.Errorf("add member to trip %d: %w", tripID, ErrForbidden)
	}

	target, err := s.store.GetUserByNickname(ctx, nickname)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if target == nil {
		return nil, fmt.Errorf("user %q: %w", nickname, ErrNotFound)
	}

	if err := policy.CheckAddMember(userID, trip, target.ID, memberships); err != nil {
		switch {
		case errors.Is(err, policy.ErrOrganizerMember):
			return nil, ErrSelfMembership
		case errors.Is(err, policy.ErrAlreadyMember):
			return nil, ErrDuplicateMembership
		default:
			return nil, fmt.Errorf("add member to trip %d: %w", tripID, ErrForbidden)
		}
	}

	membership := &models.Membership{UserID: target.ID, TripID: tripID}
	if err := s.store.CreateMembership(ctx, membership); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			// Lost the race against a concurrent add.
			return nil, ErrDuplicateMembership
		}
		return nil, fmt.Errorf("create membership: %w", err)
	}

	slog.Info("Member added", "trip_id", tripID, "user_id", target.ID, "added_by", userID)
	return membership, nil
}

// RemoveMember revokes a member's access to the trip. Organizer only.
func (s *TripService) RemoveMember(ctx context.Context, userID, tripID int64, nickname string) error {
	trip, _, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if !policy.CanMutate(userID, trip) {
		return fmt.Errorf("remove member from trip %d: %w", tripID, ErrForbidden)
	}

	target, err := s.store.GetUserByNickname(ctx, nickname)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if target == nil {
		return fmt.Errorf("user %q: %w", nickname, ErrNotFound)
	}

	if err := s.store.DeleteMembership(ctx, target.ID, tripID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("membership of %q: %w", nickname, ErrNotFound)
		}
		return fmt.Errorf("delete membership: %w", err)
	}

	slog.Info("Member removed", "trip_id", tripID, "user_id", target.ID, "removed_by", userID)
	return nil
}

// AddExpense records money the caller paid on the trip. Anyone with view
// access may record their own expenses.
func (s *TripService) AddExpense(ctx context.Context, userID, tripID int64, title string, amount float64) (*models.Expense, error) {
	trip, memberships, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(userID, trip, memberships) {
		return nil, fmt.Errorf("add expense to trip %d: %w", tripID, ErrForbidden)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	expense := &models.Expense{
		TripID:  tripID,
		PayerID: userID,
		Title:   title,
		Amount:  amount,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	slog.Info("Expense added", "trip_id", tripID, "expense_id", expense.ID, "payer_id", userID)
	return expense, nil
}

// loadTrip fetches a trip and its membership set, translating a missing row
// into ErrNotFound before any access decision is made.
func (s *TripService) loadTrip(ctx context.Context, tripID int64) (*models.Trip, []models.Membership, error) {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, nil, fmt.Errorf("load trip: %w", err)
	}
	if trip == nil {
		return nil, nil, fmt.Errorf("trip %d: %w", tripID, ErrNotFound)
	}

	memberships, err := s.store.ListMembershipsByTrip(ctx, tripID)
	if err != nil {
		return nil, nil, fmt.Errorf("load memberships: %w", err)
	}
	return trip, memberships, nil
}

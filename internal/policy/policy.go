// Package policy holds the pure authorization rules for trips.
//
// Decisions are made over already-loaded rows: the caller fetches the trip
// and its membership set, then asks the policy. The functions never touch
// storage, which keeps every rule directly testable.
//
// The User.IsAdmin flag grants no bypass here: trip access is strictly
// organizer-or-member.
package policy

import (
	"errors"

	"tripplanner/internal/models"
)

var (
	// ErrNotOrganizer means the acting user lacks mutate rights on the trip.
	ErrNotOrganizer = errors.New("only the organizer may modify the trip")

	// ErrOrganizerMember means the target of an add-member call is the
	// organizer, whose access is already implicit.
	ErrOrganizerMember = errors.New("organizer cannot be added as a member")

	// ErrAlreadyMember means the target already holds a membership row.
	ErrAlreadyMember = errors.New("user is already a member")
)

// CanView reports whether userID may read the trip: the organizer and every
// member can, nobody else.
func CanView(userID int64, trip *models.Trip, members []models.Membership) bool {
	if userID == trip.OrganizerID {
		return true
	}
	for _, m := range members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// CanMutate reports whether userID may update or delete the trip, or change
// its membership. Only the organizer can.
func CanMutate(userID int64, trip *models.Trip) bool {
	return userID == trip.OrganizerID
}

// CheckAddMember decides whether actorID may add targetID as a member of the
// trip, given its current membership set. It returns nil when allowed, or one
// of ErrNotOrganizer, ErrOrganizerMember, ErrAlreadyMember.
func CheckAddMember(actorID int64, trip *models.Trip, targetID int64, members []models.Membership) error {
	if !CanMutate(actorID, trip) {
		return ErrNotOrganizer
	}
	if targetID == trip.OrganizerID {
		return ErrOrganizerMember
	}
	for _, m := range members {
		if m.UserID == targetID {
			return ErrAlreadyMember
		}
	}
	return nil
}

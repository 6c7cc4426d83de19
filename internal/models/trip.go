package models

// Trip represents a planning unit: one organizer, any number of members.
type Trip struct {
	// ID is the unique numeric identifier, assigned by the store.
	ID int64

	// Name is the required display name.
	Name string

	// Description is optional free text.
	Description string

	// Budget is the planned spending limit. Zero means no budget set.
	Budget float64

	// OrganizerID references the user who created the trip. It is set at
	// creation and never changes.
	OrganizerID int64

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64
}

// Membership grants a user view access to a trip. At most one row exists
// per (user, trip) pair, and the organizer never holds one: organizer
// access is implicit.
type Membership struct {
	UserID   int64
	TripID   int64
	JoinedAt int64
}

// Expense records money spent against a trip's budget by one payer.
type Expense struct {
	ID        int64
	TripID    int64
	PayerID   int64
	Title     string
	Amount    float64
	CreatedAt int64
}

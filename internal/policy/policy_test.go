package policy

import (
	"errors"
	"testing"

	"tripplanner/internal/models"
)

func TestCanView(t *testing.T) {
	trip := &models.Trip{ID: 1, OrganizerID: 10}
	members := []models.Membership{
		{UserID: 20, TripID: 1},
		{UserID: 30, TripID: 1},
	}

	tests := []struct {
		name   string
		userID int64
		want   bool
	}{
		{"organizer can view", 10, true},
		{"member can view", 20, true},
		{"second member can view", 30, true},
		{"outsider cannot view", 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanView(tt.userID, trip, members); got != tt.want {
				t.Errorf("CanView(%d) = %v, want %v", tt.userID, got, tt.want)
			}
		})
	}
}

func TestCanMutate(t *testing.T) {
	trip := &models.Trip{ID: 1, OrganizerID: 10}
	members := []models.Membership{{UserID: 20, TripID: 1}}

	if !CanMutate(10, trip) {
		t.Error("expected organizer to have mutate rights")
	}
	if CanMutate(20, trip) {
		t.Error("expected member to lack mutate rights")
	}
	// Members can view but never mutate.
	if !CanView(20, trip, members) {
		t.Error("expected member to retain view access")
	}
}

func TestCheckAddMember(t *testing.T) {
	trip := &models.Trip{ID: 1, OrganizerID: 10}
	members := []models.Membership{{UserID: 20, TripID: 1}}

	tests := []struct {
		name     string
		actorID  int64
		targetID int64
		wantErr  error
	}{
		{"organizer adds new member", 10, 30, nil},
		{"non-organizer denied", 20, 30, ErrNotOrganizer},
		{"outsider denied", 40, 30, ErrNotOrganizer},
		{"organizer as target rejected", 10, 10, ErrOrganizerMember},
		{"duplicate member rejected", 10, 20, ErrAlreadyMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAddMember(tt.actorID, trip, tt.targetID, members)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckAddMember(%d, %d) = %v, want %v", tt.actorID, tt.targetID, err, tt.wantErr)
			}
		})
	}
}

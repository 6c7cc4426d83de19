// Package service implements the application operations on top of the store,
// enforcing the authorization policy.
//
// Error Handling:
// This package defines sentinel errors for every failure the HTTP boundary
// needs to distinguish. Operations wrap them with context using
// fmt.Errorf("%w") and handlers check with errors.Is. Anything that does not
// match a sentinel is an internal store failure and surfaces as 500.
package service

import "errors"

// Sentinel errors for service operations.
var (
	// ErrDuplicateIdentity indicates the email or nickname is already taken.
	// HTTP Status: 400 Bad Request
	ErrDuplicateIdentity = errors.New("email or nickname already registered")

	// ErrInvalidCredentials indicates a failed login. Unknown email and
	// wrong password are deliberately indistinguishable so account
	// existence does not leak.
	// HTTP Status: 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotAuthenticated indicates a missing, invalid or expired session.
	// HTTP Status: 401 Unauthorized
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound indicates the requested row does not exist. The
	// existence check always runs before the access check, so a missing
	// trip is 404 even for callers who could never have seen it.
	// HTTP Status: 404 Not Found
	ErrNotFound = errors.New("not found")

	// ErrForbidden indicates the row exists but the caller lacks access.
	// HTTP Status: 403 Forbidden
	ErrForbidden = errors.New("access denied")

	// ErrSelfMembership indicates an attempt to add the organizer as a
	// member of their own trip.
	// HTTP Status: 400 Bad Request
	ErrSelfMembership = errors.New("cannot add yourself as a member")

	// ErrDuplicateMembership indicates the target user is already a member.
	// HTTP Status: 400 Bad Request
	ErrDuplicateMembership = errors.New("user is already a member")

	// ErrValidation indicates malformed input (empty name, negative
	// amount, short password).
	// HTTP Status: 400 Bad Request
	ErrValidation = errors.New("invalid input")
)

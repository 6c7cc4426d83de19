package models

// User represents a registered account.
type User struct {
	// ID is the unique numeric identifier, assigned by the store.
	ID int64

	// Email is the user's login email (globally unique).
	Email string

	// Nickname is the display name (globally unique), used when
	// inviting members to a trip.
	Nickname string

	// PasswordHash is the bcrypt digest of the password. The plaintext
	// is never persisted or logged.
	PasswordHash string

	// IsAdmin marks administrator accounts. Admins manage user accounts;
	// the flag grants no access to other users' trips.
	IsAdmin bool

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

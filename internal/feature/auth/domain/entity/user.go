// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
type User struct {
	// ID is the unique identifier for the user (document store object id, hex).
	ID string

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time
}

package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrMalformedCredentials is returned when the Authorization header is absent,
	// not valid base64, or does not decode to a non-empty email:password pair.
	ErrMalformedCredentials = errors.New("malformed credentials")

	// ErrInvalidCredentials is returned when the email or password is wrong.
	// Lookup failure and password mismatch are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionNotFound is returned when a token is unknown, expired or revoked.
	ErrSessionNotFound = errors.New("session not found")

	// ErrCacheUnavailable is returned when the session cache cannot be reached.
	// Callers on read paths must treat this as unauthenticated (fail closed).
	ErrCacheUnavailable = errors.New("session cache unavailable")
)

package usecase

import (
	"context"
	"time"
)

// SessionStore abstracts the TTL cache holding live session tokens.
// The cache entry is the sole source of truth for token validity; nothing
// about a session is replicated elsewhere.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SessionStore interface {
	// Create stores token -> userID with the given time-to-live.
	Create(ctx context.Context, token, userID string, ttl time.Duration) error

	// Resolve returns the userID for a token.
	// Returns ErrSessionNotFound for unknown or expired tokens and
	// ErrCacheUnavailable when the cache cannot be reached. The TTL is
	// never refreshed on lookup.
	Resolve(ctx context.Context, token string) (string, error)

	// Revoke deletes a token and reports whether it existed.
	// Revoking an unknown token is not an error.
	Revoke(ctx context.Context, token string) (bool, error)
}

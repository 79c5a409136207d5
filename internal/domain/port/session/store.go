package session

import "context"

// Store maps opaque session tokens to user IDs
type Store interface {
	// Create starts a session for a user and returns its token
	Create(ctx context.Context, userID uint64) (string, error)

	// Resolve returns the user ID bound to a token
	//
	// Possible errors:
	// - ErrSessionNotFound: If the token is unknown or expired
	Resolve(ctx context.Context, token string) (uint64, error)

	// Destroy ends a session. Unknown tokens are ignored.
	Destroy(ctx context.Context, token string) error
}

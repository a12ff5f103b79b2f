// Package session implements the opaque token stores used for login
// sessions and account verification tokens. Both map a generated UUID
// token to a user ID with a fixed time-to-live.
package session

import (
	"context"
	"time"
)

// Default lifetimes. The in-memory store is process-local and short
// lived; the redis store survives restarts and is shared across
// instances, so it keeps sessions longer.
const (
	MemorySessionTTL = time.Hour
	RedisSessionTTL  = 24 * time.Hour
	VerifyTokenTTL   = 48 * time.Hour
)

// Store maps opaque tokens to user IDs. Resolve returns an empty user ID
// when the token is absent or expired; Revoke is idempotent.
type Store interface {
	Create(ctx context.Context, userID string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

package domain

import (
	"context"
	"time"
)

// RateLimitRepository is the keyed store behind the per-client throttle.
// One record per client identifier, overwritten on every accepted mutation;
// records are never deleted.
type RateLimitRepository interface {
	// LastRequest returns the client's last recorded request time, or
	// ErrNotFound when the client has no record yet.
	LastRequest(ctx context.Context, clientID string) (time.Time, error)
	// Record upserts the client's last request time. Last writer wins.
	Record(ctx context.Context, clientID string, at time.Time) error
}

// RateLimiter throttles public mutations per client identifier.
// Allow and Record are split on purpose: the caller records only after the
// guarded operation succeeds, so a failed booking attempt does not consume
// the window.
type RateLimiter interface {
	// Allow returns ErrRateLimited while the client is inside the window.
	Allow(ctx context.Context, clientID string) error
	Record(ctx context.Context, clientID string) error
}

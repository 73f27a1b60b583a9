package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nevadotrek/internal/domain"
)

type rateLimiter struct {
	repo   domain.RateLimitRepository
	window time.Duration
	now    func() time.Time
}

// NewRateLimiter creates a fixed-window RateLimiter over the given store.
// A client identifier may issue one mutating request per window; there is no
// burst allowance.
func NewRateLimiter(repo domain.RateLimitRepository, window time.Duration) domain.RateLimiter {
	return &rateLimiter{
		repo:   repo,
		window: window,
		now:    time.Now,
	}
}

func (l *rateLimiter) Allow(ctx context.Context, clientID string) error {
	last, err := l.repo.LastRequest(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read rate limit: %w", err)
	}
	if l.now().Sub(last) < l.window {
		return domain.ErrRateLimited
	}
	return nil
}

func (l *rateLimiter) Record(ctx context.Context, clientID string) error {
	if err := l.repo.Record(ctx, clientID, l.now()); err != nil {
		return fmt.Errorf("record rate limit: %w", err)
	}
	return nil
}

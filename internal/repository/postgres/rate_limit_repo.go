package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"nevadotrek/internal/domain"
)

type rateLimitRepository struct {
	DB *sql.DB
}

func NewRateLimitRepository(db *sql.DB) domain.RateLimitRepository {
	return &rateLimitRepository{
		DB: db,
	}
}

func (r *rateLimitRepository) LastRequest(ctx context.Context, clientID string) (time.Time, error) {
	query := `SELECT last_request FROM rate_limits WHERE client_id = $1`
	var last time.Time
	err := r.DB.QueryRowContext(ctx, query, clientID).Scan(&last)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, err
	}
	return last, nil
}

func (r *rateLimitRepository) Record(ctx context.Context, clientID string, at time.Time) error {
	// Last writer wins; near-simultaneous requests from one client may both
	// pass the check, which the throttle accepts.
	query := `
		INSERT INTO rate_limits (client_id, last_request)
		VALUES ($1, $2)
		ON CONFLICT (client_id) DO UPDATE SET last_request = EXCLUDED.last_request
	`
	_, err := r.DB.ExecContext(ctx, query, clientID, at)
	return err
}

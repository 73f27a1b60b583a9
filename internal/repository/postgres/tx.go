package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"nevadotrek/internal/domain"
)

// maxTxRetries bounds how often a transaction is retried after a
// serialization or deadlock failure before the operation is surfaced as
// domain.ErrStoreUnavailable.
const maxTxRetries = 3

// withTx runs fn inside a serializable transaction, retrying serialization
// and deadlock failures. Business-logic errors returned by fn roll the
// transaction back and pass through unchanged, so callers never see a
// retryable store failure dressed up as a domain conflict.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err != nil {
			return fmt.Errorf("%w: begin transaction: %v", domain.ErrStoreUnavailable, err)
		}

		err = fn(tx)
		if err == nil {
			err = tx.Commit()
			if err == nil {
				return nil
			}
		}
		_ = tx.Rollback()

		if !isRetryable(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("%w: transaction retries exhausted: %v", domain.ErrStoreUnavailable, lastErr)
}

// isRetryable reports whether err is a serialization failure (40001) or
// deadlock (40P01), the two cases where rerunning the whole transaction is
// the correct response.
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

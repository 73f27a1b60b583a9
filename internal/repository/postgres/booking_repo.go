package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nevadotrek/internal/domain"
)

type bookingRepository struct {
	DB *sql.DB
	// now is swapped out in tests for deterministic booking ids.
	now func() time.Time
}

func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{
		DB:  db,
		now: time.Now,
	}
}

const bookingColumns = `id, event_id, tour_id, tour_name, customer, pax, price_per_person, total_price, status, is_event_origin, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	var customer []byte
	err := row.Scan(
		&b.ID, &b.EventID, &b.TourID, &b.TourName, &customer, &b.Pax,
		&b.PricePerPerson, &b.TotalPrice, &b.Status, &b.IsEventOrigin,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Customer = json.RawMessage(customer)
	return b, nil
}

func insertBooking(ctx context.Context, tx *sql.Tx, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, event_id, tour_id, tour_name, customer, pax, price_per_person, total_price, status, is_event_origin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := tx.ExecContext(ctx, query,
		b.ID, b.EventID, b.TourID, b.TourName, []byte(b.Customer), b.Pax,
		b.PricePerPerson, b.TotalPrice, b.Status, b.IsEventOrigin,
		b.CreatedAt, b.UpdatedAt,
	)
	return err
}

func updateEventCapacity(ctx context.Context, tx *sql.Tx, e *domain.Event) error {
	query := `UPDATE tour_events SET booked_slots = $1, status = $2 WHERE id = $3`
	_, err := tx.ExecContext(ctx, query, e.BookedSlots, e.Status, e.ID)
	return err
}

func (r *bookingRepository) CreateWithEvent(ctx context.Context, event *domain.Event, booking *domain.Booking) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		query := `
			INSERT INTO tour_events (id, tour_id, tour_name, start_date, end_date, max_capacity, booked_slots, type, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`
		_, err := tx.ExecContext(ctx, query,
			event.ID, event.TourID, event.TourName, event.StartDate, event.EndDate,
			event.MaxCapacity, event.BookedSlots, event.Type, event.Status, event.CreatedAt,
		)
		if err != nil {
			// The event key is derived from tour id and start slot, so a
			// concurrent first booking for the same slot lands here.
			if isUniqueViolation(err) {
				return domain.ErrEventExists
			}
			return fmt.Errorf("insert event: %w", err)
		}

		if err := insertBooking(ctx, tx, booking); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}
		return nil
	})
}

func (r *bookingRepository) Join(ctx context.Context, eventID string, pax int, customer json.RawMessage, tiers []domain.PricingTier) (*domain.Booking, int, error) {
	var booking *domain.Booking
	var totalPax int

	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		// Lock the event row so capacity checks see committed state and
		// concurrent joins to the same event serialize here.
		query := `SELECT ` + eventColumns + ` FROM tour_events WHERE id = $1 FOR UPDATE`
		event, err := scanEvent(tx.QueryRowContext(ctx, query, eventID))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("lock event: %w", err)
		}

		if err := event.Join(pax); err != nil {
			return err
		}
		totalPax = event.BookedSlots

		// The group price reflects the aggregate size after joining; the
		// joining party pays that rate for its own pax only.
		pricePerPerson := domain.ResolvePrice(tiers, totalPax)
		booking = domain.NewJoiningBooking(event, pax, pricePerPerson, customer, r.now())

		if err := updateEventCapacity(ctx, tx, event); err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		if err := insertBooking(ctx, tx, booking); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return booking, totalPax, nil
}

func (r *bookingRepository) ChangeStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	var booking *domain.Booking

	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
		b, err := scanBooking(tx.QueryRowContext(ctx, query, bookingID))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("lock booking: %w", err)
		}

		// Same-status updates (including cancelling twice) are no-ops, so a
		// repeated cancellation never releases capacity again.
		if b.Status == status {
			booking = b
			return nil
		}
		if !domain.CanTransition(b.Status, status) {
			return fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, b.Status, status)
		}

		if status == domain.BookingStatusCancelled {
			eventQuery := `SELECT ` + eventColumns + ` FROM tour_events WHERE id = $1 FOR UPDATE`
			event, err := scanEvent(tx.QueryRowContext(ctx, eventQuery, b.EventID))
			switch {
			case errors.Is(err, sql.ErrNoRows):
				// Event gone but booking still present: update the booking
				// anyway and skip the capacity release.
			case err != nil:
				return fmt.Errorf("lock event: %w", err)
			default:
				event.Release(b.Pax)
				if err := updateEventCapacity(ctx, tx, event); err != nil {
					return fmt.Errorf("update event: %w", err)
				}
			}
		}

		updateQuery := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at`
		if err := tx.QueryRowContext(ctx, updateQuery, status, b.ID).Scan(&b.UpdatedAt); err != nil {
			return fmt.Errorf("update booking: %w", err)
		}
		b.Status = status
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *bookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	where := []string{}
	args := []any{}

	add := func(clause string, arg any) {
		where = append(where, fmt.Sprintf(clause, len(args)+1))
		args = append(args, arg)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.TourID != "" {
		add("tour_id = $%d", filter.TourID)
	}
	if filter.EventID != "" {
		add("event_id = $%d", filter.EventID)
	}
	if filter.From != nil {
		add("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("created_at <= $%d", *filter.To)
	}
	for i, clause := range where {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

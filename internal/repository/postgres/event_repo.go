package postgres

import (
	"context"
	"database/sql"
	"errors"

	"nevadotrek/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, tour_id, tour_name, start_date, end_date, max_capacity, booked_slots, type, status, created_at, published_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var publishedAt sql.NullTime
	err := row.Scan(
		&e.ID, &e.TourID, &e.TourName, &e.StartDate, &e.EndDate,
		&e.MaxCapacity, &e.BookedSlots, &e.Type, &e.Status, &e.CreatedAt, &publishedAt,
	)
	if err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		e.PublishedAt = &publishedAt.Time
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM tour_events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Publish(ctx context.Context, id string) (*domain.Event, error) {
	// COALESCE keeps the original published_at when the event is already
	// public, making the operation idempotent.
	query := `
		UPDATE tour_events
		SET type = 'public', published_at = COALESCE(published_at, NOW())
		WHERE id = $1
		RETURNING ` + eventColumns
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

package domain

import (
	"context"
	"strings"
	"time"
)

// EventType says who may book into an event.
type EventType string

// EventStatus is the capacity state of an event.
type EventStatus string

const (
	// EventTypePrivate events accept bookings only at creation time.
	EventTypePrivate EventType = "private"
	// EventTypePublic events accept joins until full.
	EventTypePublic EventType = "public"

	EventStatusActive    EventStatus = "active"
	EventStatusFull      EventStatus = "full"
	EventStatusCancelled EventStatus = "cancelled"
)

// DefaultEventDuration is the span between an event's start and end when the
// tour does not say otherwise.
const DefaultEventDuration = 3 * 24 * time.Hour

// Event is one scheduled departure of a tour, shared by one or more bookings.
// Its id is derived from the tour id and start slot (see EventKey), so two
// bookings targeting the same slot collide by construction.
type Event struct {
	ID          string      `json:"id"`
	TourID      string      `json:"tour_id"`
	TourName    string      `json:"tour_name"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	MaxCapacity int         `json:"max_capacity"`
	BookedSlots int         `json:"booked_slots"`
	Type        EventType   `json:"type"`
	Status      EventStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	PublishedAt *time.Time  `json:"published_at,omitempty"`
}

// EventKey derives the deterministic event id for a tour and start slot:
// the tour id plus the start timestamp in UTC with millisecond precision,
// colons and dots replaced so the key stays URL-safe.
// Example: trek-nevado + 2025-12-01T10:00:00Z -> trek-nevado-2025-12-01T10-00-00-000Z.
func EventKey(tourID string, start time.Time) string {
	iso := start.UTC().Format("2006-01-02T15:04:05.000Z")
	iso = strings.ReplaceAll(iso, ":", "-")
	iso = strings.ReplaceAll(iso, ".", "-")
	return tourID + "-" + iso
}

// NewEvent builds the private event created by a first booking of pax people.
func NewEvent(tour *Tour, start time.Time, pax, maxCapacity int, now time.Time) *Event {
	e := &Event{
		ID:          EventKey(tour.ID, start),
		TourID:      tour.ID,
		TourName:    tour.Name.EN,
		StartDate:   start,
		EndDate:     start.Add(DefaultEventDuration),
		MaxCapacity: maxCapacity,
		BookedSlots: pax,
		Type:        EventTypePrivate,
		CreatedAt:   now,
	}
	e.recomputeStatus()
	return e
}

// Join adds pax people to the event. It fails when the event is private,
// already full, or when pax would overflow the remaining capacity; on
// success BookedSlots and Status are updated in place.
func (e *Event) Join(pax int) error {
	if e.Type != EventTypePublic {
		return ErrEventNotPublic
	}
	if e.Status == EventStatusFull {
		return ErrEventFull
	}
	if e.BookedSlots+pax > e.MaxCapacity {
		return &CapacityExceededError{Remaining: e.MaxCapacity - e.BookedSlots}
	}
	e.BookedSlots += pax
	e.recomputeStatus()
	return nil
}

// Release gives pax slots back after a booking is cancelled, flooring at 0.
// Status is recomputed from the capacity invariant rather than from the
// previous status, so a full event drops back to active.
func (e *Event) Release(pax int) {
	e.BookedSlots -= pax
	if e.BookedSlots < 0 {
		e.BookedSlots = 0
	}
	e.recomputeStatus()
}

func (e *Event) recomputeStatus() {
	if e.Status == EventStatusCancelled {
		return
	}
	if e.BookedSlots >= e.MaxCapacity {
		e.Status = EventStatusFull
		return
	}
	e.Status = EventStatusActive
}

// EventRepository defines storage operations for events outside the booking
// transactions, which live on BookingRepository.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*Event, error)
	// Publish marks the event public. Idempotent: publishing an already
	// public event keeps its original published_at.
	Publish(ctx context.Context, id string) (*Event, error)
}

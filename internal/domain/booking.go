package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus validates a caller-supplied status string.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusPaid, BookingStatusCancelled:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown booking status %q", ErrInvalidInput, s)
}

// CanTransition reports whether a booking may move from one status to
// another. Staying in the same status is always allowed (a no-op).
// Cancellation is reachable from every state, including paid (refund path);
// otherwise the lifecycle only moves forward: pending -> confirmed -> paid.
func CanTransition(from, to BookingStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case BookingStatusPending:
		return to == BookingStatusConfirmed || to == BookingStatusCancelled
	case BookingStatusConfirmed:
		return to == BookingStatusPaid || to == BookingStatusCancelled
	case BookingStatusPaid:
		return to == BookingStatusCancelled
	}
	return false
}

// Booking is a customer's claim on pax slots within one event. The tour id
// and name are denormalized so booking lists do not need tour lookups.
type Booking struct {
	ID             string          `json:"id"`
	EventID        string          `json:"event_id"`
	TourID         string          `json:"tour_id"`
	TourName       string          `json:"tour_name"`
	Customer       json.RawMessage `json:"customer"`
	Pax            int             `json:"pax"`
	PricePerPerson int64           `json:"price_per_person"`
	TotalPrice     int64           `json:"total_price"`
	Status         BookingStatus   `json:"status"`
	IsEventOrigin  bool            `json:"is_event_origin"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewBookingID builds a booking id from the creation time plus a random
// suffix. Uniqueness matters; ordering does not (lists sort on created_at).
func NewBookingID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return "booking-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}

func newBooking(event *Event, pax int, pricePerPerson int64, customer json.RawMessage, isOrigin bool, now time.Time) *Booking {
	return &Booking{
		ID:             NewBookingID(now),
		EventID:        event.ID,
		TourID:         event.TourID,
		TourName:       event.TourName,
		Customer:       customer,
		Pax:            pax,
		PricePerPerson: pricePerPerson,
		TotalPrice:     pricePerPerson * int64(pax),
		Status:         BookingStatusPending,
		IsEventOrigin:  isOrigin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NewOriginBooking builds the booking whose creation also created the event.
func NewOriginBooking(event *Event, pax int, pricePerPerson int64, customer json.RawMessage, now time.Time) *Booking {
	return newBooking(event, pax, pricePerPerson, customer, true, now)
}

// NewJoiningBooking builds a booking that joins an existing public event.
func NewJoiningBooking(event *Event, pax int, pricePerPerson int64, customer json.RawMessage, now time.Time) *Booking {
	return newBooking(event, pax, pricePerPerson, customer, false, now)
}

// BookingFilter narrows ListBookings results. Zero values mean "no filter".
// From and To bound the booking creation time.
type BookingFilter struct {
	Status  BookingStatus
	TourID  string
	EventID string
	From    *time.Time
	To      *time.Time
}

// CreateBookingInput is the validated input for BookingService.CreateBooking.
type CreateBookingInput struct {
	TourID         string
	StartDate      time.Time
	Pax            int
	Customer       json.RawMessage
	ClientID       string
	BypassThrottle bool
}

// CreateBookingResult identifies what a successful CreateBooking created.
type CreateBookingResult struct {
	BookingID string `json:"booking_id"`
	EventID   string `json:"event_id"`
}

// JoinEventInput is the validated input for BookingService.JoinEvent.
type JoinEventInput struct {
	EventID        string
	Pax            int
	Customer       json.RawMessage
	ClientID       string
	BypassThrottle bool
}

// JoinEventResult reports the outcome of a successful join.
type JoinEventResult struct {
	BookingID         string `json:"booking_id"`
	TotalPaxAfterJoin int    `json:"total_pax_after_join"`
}

// BookingService coordinates the transactional booking operations.
type BookingService interface {
	// CreateBooking creates a new private event for the tour and start
	// slot together with its origin booking.
	CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	// JoinEvent adds a booking to an existing public event.
	JoinEvent(ctx context.Context, in JoinEventInput) (*JoinEventResult, error)
	// ChangeBookingStatus moves a booking through its lifecycle. Admin only.
	ChangeBookingStatus(ctx context.Context, bookingID, status string) (*Booking, error)
	// ListBookings returns bookings matching the filter. Admin only.
	ListBookings(ctx context.Context, filter BookingFilter) ([]*Booking, error)
	// PublishEvent opens a private event for public joins. Admin only.
	PublishEvent(ctx context.Context, eventID string) (*Event, error)
}

// BookingRepository defines storage operations for bookings. The three
// mutating operations are each one atomic transaction: either every read and
// write inside them commits together or none do.
type BookingRepository interface {
	// CreateWithEvent inserts the event and its origin booking together.
	// Returns ErrEventExists when the event key is already taken.
	CreateWithEvent(ctx context.Context, event *Event, booking *Booking) error

	// Join locks the event row, re-validates type, status, and capacity,
	// resolves the price per person from the total pax after joining, and
	// inserts the booking. Returns the created booking and the new total.
	Join(ctx context.Context, eventID string, pax int, customer json.RawMessage, tiers []PricingTier) (*Booking, int, error)

	// ChangeStatus moves a booking through its lifecycle. A transition into
	// cancelled releases the booking's pax back to the event in the same
	// transaction; cancelling twice is a no-op and releases nothing. A
	// missing event does not block the booking update.
	ChangeStatus(ctx context.Context, bookingID string, status BookingStatus) (*Booking, error)

	// List returns bookings matching the filter, newest first.
	List(ctx context.Context, filter BookingFilter) ([]*Booking, error)
}

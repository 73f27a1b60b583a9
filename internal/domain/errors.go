package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories. Controllers map
// these to HTTP status codes; services wrap anything else with context.
var (
	// ErrNotFound is returned when a tour, event, or booking does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned for missing or malformed caller input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when the admin secret is missing or wrong.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTourExists is returned when creating a tour whose id is taken.
	ErrTourExists = errors.New("tour with this id already exists")

	// ErrTourInactive is returned when booking against a deactivated tour.
	ErrTourInactive = errors.New("tour is not active")

	// ErrEventExists is returned when a booking targets an event slot that
	// already has an event. Two concurrent first bookings for the same
	// tour and start date collide here; exactly one wins.
	ErrEventExists = errors.New("event already exists")

	// ErrEventFull is returned when joining an event with no free slots.
	ErrEventFull = errors.New("event is already full")

	// ErrEventNotPublic is returned when joining a private event.
	ErrEventNotPublic = errors.New("cannot join a private event")

	// ErrInvalidTransition is returned for a booking status change that the
	// lifecycle does not allow, e.g. pending directly to paid.
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrRateLimited is returned when a client identifier issues a second
	// mutating request inside the throttle window.
	ErrRateLimited = errors.New("too many requests")

	// ErrStoreUnavailable is returned when the store could not complete a
	// transaction after retries. The whole operation is safe to retry;
	// nothing partial was committed.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// CapacityExceededError is returned when a join would overflow the event.
// Remaining is the number of slots still free at the time of the attempt.
type CapacityExceededError struct {
	Remaining int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("not enough space: only %d spots left", e.Remaining)
}

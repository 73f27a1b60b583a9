package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nevadotrek/internal/domain"
)

type bookingService struct {
	tourRepo    domain.TourRepository
	eventRepo   domain.EventRepository
	bookingRepo domain.BookingRepository
	limiter     domain.RateLimiter
	maxCapacity int
	now         func() time.Time
}

// NewBookingService creates the booking coordinator. maxCapacity is the fixed
// capacity given to every event created by a first booking.
func NewBookingService(
	tourRepo domain.TourRepository,
	eventRepo domain.EventRepository,
	bookingRepo domain.BookingRepository,
	limiter domain.RateLimiter,
	maxCapacity int,
) domain.BookingService {
	return &bookingService{
		tourRepo:    tourRepo,
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
		limiter:     limiter,
		maxCapacity: maxCapacity,
		now:         time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, in domain.CreateBookingInput) (*domain.CreateBookingResult, error) {
	if in.TourID == "" {
		return nil, fmt.Errorf("%w: tour id is required", domain.ErrInvalidInput)
	}
	if in.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", domain.ErrInvalidInput)
	}
	if in.Pax < 1 {
		return nil, fmt.Errorf("%w: pax must be at least 1", domain.ErrInvalidInput)
	}
	if in.Pax > s.maxCapacity {
		return nil, &domain.CapacityExceededError{Remaining: s.maxCapacity}
	}
	if len(in.Customer) == 0 {
		return nil, fmt.Errorf("%w: customer is required", domain.ErrInvalidInput)
	}

	if !in.BypassThrottle {
		if err := s.limiter.Allow(ctx, in.ClientID); err != nil {
			return nil, err
		}
	}

	tour, err := s.tourRepo.GetByID(ctx, in.TourID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get tour: %w", err)
	}
	if !tour.IsActive {
		return nil, domain.ErrTourInactive
	}

	pricePerPerson := domain.ResolvePrice(tour.PricingTiers, in.Pax)

	now := s.now()
	event := domain.NewEvent(tour, in.StartDate, in.Pax, s.maxCapacity, now)
	booking := domain.NewOriginBooking(event, in.Pax, pricePerPerson, in.Customer, now)

	if err := s.bookingRepo.CreateWithEvent(ctx, event, booking); err != nil {
		if errors.Is(err, domain.ErrEventExists) || errors.Is(err, domain.ErrStoreUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("create event with booking: %w", err)
	}

	s.recordThrottle(ctx, in.ClientID, in.BypassThrottle)

	return &domain.CreateBookingResult{
		BookingID: booking.ID,
		EventID:   event.ID,
	}, nil
}

func (s *bookingService) JoinEvent(ctx context.Context, in domain.JoinEventInput) (*domain.JoinEventResult, error) {
	if in.EventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrInvalidInput)
	}
	if in.Pax < 1 {
		return nil, fmt.Errorf("%w: pax must be at least 1", domain.ErrInvalidInput)
	}
	if len(in.Customer) == 0 {
		return nil, fmt.Errorf("%w: customer is required", domain.ErrInvalidInput)
	}

	if !in.BypassThrottle {
		if err := s.limiter.Allow(ctx, in.ClientID); err != nil {
			return nil, err
		}
	}

	// This read only locates the tour; type, status, and capacity are all
	// re-checked against the locked row inside the join transaction.
	event, err := s.eventRepo.GetByID(ctx, in.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	tour, err := s.tourRepo.GetByID(ctx, event.TourID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get tour: %w", err)
	}
	if !tour.IsActive {
		return nil, domain.ErrTourInactive
	}

	booking, totalPax, err := s.bookingRepo.Join(ctx, in.EventID, in.Pax, in.Customer, tour.PricingTiers)
	if err != nil {
		var capErr *domain.CapacityExceededError
		switch {
		case errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrEventFull),
			errors.Is(err, domain.ErrEventNotPublic),
			errors.Is(err, domain.ErrStoreUnavailable),
			errors.As(err, &capErr):
			return nil, err
		}
		return nil, fmt.Errorf("join event: %w", err)
	}

	s.recordThrottle(ctx, in.ClientID, in.BypassThrottle)

	return &domain.JoinEventResult{
		BookingID:         booking.ID,
		TotalPaxAfterJoin: totalPax,
	}, nil
}

// recordThrottle stamps the client's window after a successful mutation. The
// booking is already committed at this point, so a failed stamp must not fail
// the request; the client just gets a free retry.
func (s *bookingService) recordThrottle(ctx context.Context, clientID string, bypass bool) {
	if bypass {
		return
	}
	_ = s.limiter.Record(ctx, clientID)
}

func (s *bookingService) ChangeBookingStatus(ctx context.Context, bookingID, status string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("%w: booking id is required", domain.ErrInvalidInput)
	}
	parsed, err := domain.ParseBookingStatus(status)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.ChangeStatus(ctx, bookingID, parsed)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) ||
			errors.Is(err, domain.ErrInvalidTransition) ||
			errors.Is(err, domain.ErrStoreUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("change booking status: %w", err)
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	if filter.Status != "" {
		if _, err := domain.ParseBookingStatus(string(filter.Status)); err != nil {
			return nil, err
		}
	}
	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) PublishEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrInvalidInput)
	}
	event, err := s.eventRepo.Publish(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("publish event: %w", err)
	}
	return event, nil
}

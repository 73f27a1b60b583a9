package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nevadotrek/internal/domain"
)

type mockTourRepository struct {
	tours     map[string]*domain.Tour
	createErr error
	created   *domain.Tour
	listErr   error
}

func (m *mockTourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = tour
	return nil
}

func (m *mockTourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	tour, ok := m.tours[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return tour, nil
}

func (m *mockTourRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Tour, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var tours []*domain.Tour
	for _, t := range m.tours {
		if activeOnly && !t.IsActive {
			continue
		}
		tours = append(tours, t)
	}
	return tours, nil
}

type mockEventRepository struct {
	events     map[string]*domain.Event
	publishErr error
	published  string
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (m *mockEventRepository) Publish(ctx context.Context, id string) (*domain.Event, error) {
	if m.publishErr != nil {
		return nil, m.publishErr
	}
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	m.published = id
	e.Type = domain.EventTypePublic
	return e, nil
}

type mockBookingRepository struct {
	createErr   error
	lastEvent   *domain.Event
	lastBooking *domain.Booking

	joinErr         error
	joinBooking     *domain.Booking
	joinTotal       int
	lastJoinEventID string
	lastJoinPax     int
	lastJoinTiers   []domain.PricingTier

	changeErr        error
	changeResult     *domain.Booking
	lastChangeID     string
	lastChangeStatus domain.BookingStatus

	listErr    error
	listResult []*domain.Booking
	lastFilter domain.BookingFilter
}

func (m *mockBookingRepository) CreateWithEvent(ctx context.Context, event *domain.Event, booking *domain.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.lastEvent = event
	m.lastBooking = booking
	return nil
}

func (m *mockBookingRepository) Join(ctx context.Context, eventID string, pax int, customer json.RawMessage, tiers []domain.PricingTier) (*domain.Booking, int, error) {
	if m.joinErr != nil {
		return nil, 0, m.joinErr
	}
	m.lastJoinEventID = eventID
	m.lastJoinPax = pax
	m.lastJoinTiers = tiers
	return m.joinBooking, m.joinTotal, nil
}

func (m *mockBookingRepository) ChangeStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	if m.changeErr != nil {
		return nil, m.changeErr
	}
	m.lastChangeID = bookingID
	m.lastChangeStatus = status
	return m.changeResult, nil
}

func (m *mockBookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.lastFilter = filter
	return m.listResult, nil
}

type mockRateLimiter struct {
	allowErr     error
	recordErr    error
	allowCalls   int
	recordCalls  int
	lastClientID string
}

func (m *mockRateLimiter) Allow(ctx context.Context, clientID string) error {
	m.allowCalls++
	m.lastClientID = clientID
	return m.allowErr
}

func (m *mockRateLimiter) Record(ctx context.Context, clientID string) error {
	m.recordCalls++
	m.lastClientID = clientID
	return m.recordErr
}

func activeTour() *domain.Tour {
	return &domain.Tour{
		ID:       "trek-nevado",
		Name:     domain.LocalizedText{ES: "Nevado del Tolima", EN: "Tolima Snow Peak"},
		IsActive: true,
		PricingTiers: []domain.PricingTier{
			{MinPax: 1, PricePerPerson: 1200000},
			{MinPax: 2, PricePerPerson: 1100000},
			{MinPax: 4, PricePerPerson: 950000},
		},
	}
}

var testCustomer = json.RawMessage(`{"name":"Ana","email":"ana@example.com"}`)

func newTestBookingService(tours *mockTourRepository, events *mockEventRepository, bookings *mockBookingRepository, limiter *mockRateLimiter) *bookingService {
	return &bookingService{
		tourRepo:    tours,
		eventRepo:   events,
		bookingRepo: bookings,
		limiter:     limiter,
		maxCapacity: 8,
		now:         func() time.Time { return time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success creates private event with origin booking", func(t *testing.T) {
		tours := &mockTourRepository{tours: map[string]*domain.Tour{"trek-nevado": activeTour()}}
		bookings := &mockBookingRepository{}
		limiter := &mockRateLimiter{}
		svc := newTestBookingService(tours, &mockEventRepository{}, bookings, limiter)

		result, err := svc.CreateBooking(ctx, domain.CreateBookingInput{
			TourID:    "trek-nevado",
			StartDate: start,
			Pax:       3,
			Customer:  testCustomer,
			ClientID:  "203.0.113.7",
		})
		require.NoError(t, err)

		require.NotNil(t, bookings.lastEvent)
		assert.Equal(t, "trek-nevado-2025-12-01T10-00-00-000Z", bookings.lastEvent.ID)
		assert.Equal(t, domain.EventTypePrivate, bookings.lastEvent.Type)
		assert.Equal(t, domain.EventStatusActive, bookings.lastEvent.Status)
		assert.Equal(t, 3, bookings.lastEvent.BookedSlots)
		assert.Equal(t, 8, bookings.lastEvent.MaxCapacity)

		require.NotNil(t, bookings.lastBooking)
		assert.True(t, bookings.lastBooking.IsEventOrigin)
		assert.Equal(t, domain.BookingStatusPending, bookings.lastBooking.Status)
		assert.Equal(t, int64(1100000), bookings.lastBooking.PricePerPerson)
		assert.Equal(t, int64(3300000), bookings.lastBooking.TotalPrice)

		assert.Equal(t, bookings.lastBooking.ID, result.BookingID)
		assert.Equal(t, bookings.lastEvent.ID, result.EventID)

		assert.Equal(t, 1, limiter.allowCalls)
		assert.Equal(t, 1, limiter.recordCalls, "throttle recorded after success")
		assert.Equal(t, "203.0.113.7", limiter.lastClientID)
	})

	t.Run("booking that fills capacity starts the event full", func(t *testing.T) {
		tours := &mockTourRepository{tours: map[string]*domain.Tour{"trek-nevado": activeTour()}}
		bookings := &mockBookingRepository{}
		svc := newTestBookingService(tours, &mockEventRepository{}, bookings, &mockRateLimiter{})

		_, err := svc.CreateBooking(ctx, domain.CreateBookingInput{
			TourID: "trek-nevado", StartDate: start, Pax: 8, Customer: testCustomer, ClientID: "c",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusFull, bookings.lastEvent.Status)
	})

	t.Run("validation failures", func(t *testing.T) {
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, &mockBookingRepository{}, &mockRateLimiter{})
		tests := []struct {
			name string
			in   domain.CreateBookingInput
		}{
			{"missing tour id", domain.CreateBookingInput{StartDate: start, Pax: 2, Customer: testCustomer}},
			{"missing start date", domain.CreateBookingInput{TourID: "t", Pax: 2, Customer: testCustomer}},
			{"zero pax", domain.CreateBookingInput{TourID: "t", StartDate: start, Pax: 0, Customer: testCustomer}},
			{"missing customer", domain.CreateBookingInput{TourID: "t", StartDate: start, Pax: 2}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.CreateBooking(ctx, tt.in)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			})
		}
	})

	t.Run("pax above event capacity", func(t *testing.T) {
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, &mockBookingRepository{}, &mockRateLimiter{})
		_, err := svc.CreateBooking(ctx, domain.CreateBookingInput{
			TourID: "t", StartDate: start, Pax: 9, Customer: testCustomer,
		})
		var capErr *domain.CapacityExceededError
		require.ErrorAs(t, err, &capErr)
	})

	t.Run("throttled client performs no writes", func(t *testing.T) {
		bookings := &mockBookingRepository{}
		limiter := &mockRateLimiter{allowErr: domain.ErrRateLimited}
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, bookings, limiter)

		_, err := svc.CreateBooking(ctx, domain.CreateBookingInput{
			TourID: "t", StartDate: start, Pax: 2, Customer: testCustomer, ClientID: "c",
		})
		require.ErrorIs(t, err, domain.ErrRateLimited)
		assert.Nil(t, bookings.lastEvent)
		assert.Zero(t, limiter.recordCalls)
	})

	t.Run("admin bypass skips check and record", func(t *testing.T) {
		tours := &mockTourRepository{tours: map[string]*domain.Tour{"trek-nevado": activeTour()}}
		limiter := &mockRateLimiter{allowErr: domain.ErrRateLimited}
		svc := newTestBookingService(tours, &mockEventRepository{}, &mockBookingRepository{}, limiter)

		_, err := svc.CreateBooking(ctx, domain.CreateBookingInput{
			TourID: "trek-nevado", StartDate: start, Pax: 2, Customer: testCustomer,
			ClientID: "c", BypassThrottle: true,
		})
		require.NoError(t, err)
		assert.Zero(t, limiter.allowCalls)
		assert.Zero(t, limiter.recordCalls)
	})

	t.Run("tour not found", func(t *testing.T) {
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, &mockBookingRepository{}, &mockRateLimiter{})
		_, err := svc.CreateBooking(ctx, domain.CreateBookingInput{
			TourID: "missing", StartDate: start, Pax: 2, Customer: testCustomer,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("inactive tour", func(t *testing.T) {
		tour := activeTour()
		tour.IsActive = false
		tours := &mockTourRepository{tours: map[string]*domain.Tour{"trek-nevado": tour}}
		svc := newTestBookingService(tours, &mockEventRepository{}, &mockBookingRepository{}, &mockRateLimiter{})

		_, err := svc.CreateBooking(ctx, domain.CreateBookingInput{
			TourID: "trek-nevado", StartDate: start, Pax: 2, Customer: testCustomer,
		})
		assert.ErrorIs(t, err, domain.ErrTourInactive)
	})

	t.Run("event key collision surfaces as conflict without throttle record", func(t *testing.T) {
		tours := &mockTourRepository{tours: map[string]*domain.Tour{"trek-nevado": activeTour()}}
		bookings := &mockBookingRepository{createErr: domain.ErrEventExists}
		limiter := &mockRateLimiter{}
		svc := newTestBookingService(tours, &mockEventRepository{}, bookings, limiter)

		_, err := svc.CreateBooking(ctx, domain.CreateBookingInput{
			TourID: "trek-nevado", StartDate: start, Pax: 2, Customer: testCustomer, ClientID: "c",
		})
		require.ErrorIs(t, err, domain.ErrEventExists)
		assert.Zero(t, limiter.recordCalls, "failed attempt must not consume the window")
	})

	t.Run("throttle record failure does not fail the booking", func(t *testing.T) {
		tours := &mockTourRepository{tours: map[string]*domain.Tour{"trek-nevado": activeTour()}}
		limiter := &mockRateLimiter{recordErr: errors.New("store down")}
		svc := newTestBookingService(tours, &mockEventRepository{}, &mockBookingRepository{}, limiter)

		_, err := svc.CreateBooking(ctx, domain.CreateBookingInput{
			TourID: "trek-nevado", StartDate: start, Pax: 2, Customer: testCustomer, ClientID: "c",
		})
		require.NoError(t, err)
	})
}

func TestJoinEvent(t *testing.T) {
	ctx := context.Background()

	publicEvent := func() *domain.Event {
		return &domain.Event{
			ID:          "trek-nevado-2025-12-01T10-00-00-000Z",
			TourID:      "trek-nevado",
			TourName:    "Tolima Snow Peak",
			MaxCapacity: 8,
			BookedSlots: 3,
			Type:        domain.EventTypePublic,
			Status:      domain.EventStatusActive,
		}
	}

	t.Run("success passes tour tiers into the transaction", func(t *testing.T) {
		tours := &mockTourRepository{tours: map[string]*domain.Tour{"trek-nevado": activeTour()}}
		events := &mockEventRepository{events: map[string]*domain.Event{publicEvent().ID: publicEvent()}}
		bookings := &mockBookingRepository{
			joinBooking: &domain.Booking{ID: "booking-1", Pax: 2},
			joinTotal:   5,
		}
		limiter := &mockRateLimiter{}
		svc := newTestBookingService(tours, events, bookings, limiter)

		result, err := svc.JoinEvent(ctx, domain.JoinEventInput{
			EventID:  publicEvent().ID,
			Pax:      2,
			Customer: testCustomer,
			ClientID: "203.0.113.7",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, result.TotalPaxAfterJoin)
		assert.Equal(t, "booking-1", result.BookingID)
		assert.Equal(t, publicEvent().ID, bookings.lastJoinEventID)
		assert.Equal(t, 2, bookings.lastJoinPax)
		assert.Equal(t, activeTour().PricingTiers, bookings.lastJoinTiers)
		assert.Equal(t, 1, limiter.recordCalls)
	})

	t.Run("validation failures", func(t *testing.T) {
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, &mockBookingRepository{}, &mockRateLimiter{})
		_, err := svc.JoinEvent(ctx, domain.JoinEventInput{Pax: 2, Customer: testCustomer})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = svc.JoinEvent(ctx, domain.JoinEventInput{EventID: "e", Pax: 0, Customer: testCustomer})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = svc.JoinEvent(ctx, domain.JoinEventInput{EventID: "e", Pax: 2})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("event not found", func(t *testing.T) {
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, &mockBookingRepository{}, &mockRateLimiter{})
		_, err := svc.JoinEvent(ctx, domain.JoinEventInput{EventID: "missing", Pax: 2, Customer: testCustomer})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("inactive tour blocks join", func(t *testing.T) {
		tour := activeTour()
		tour.IsActive = false
		tours := &mockTourRepository{tours: map[string]*domain.Tour{"trek-nevado": tour}}
		events := &mockEventRepository{events: map[string]*domain.Event{publicEvent().ID: publicEvent()}}
		svc := newTestBookingService(tours, events, &mockBookingRepository{}, &mockRateLimiter{})

		_, err := svc.JoinEvent(ctx, domain.JoinEventInput{EventID: publicEvent().ID, Pax: 2, Customer: testCustomer})
		assert.ErrorIs(t, err, domain.ErrTourInactive)
	})

	t.Run("capacity conflicts pass through without throttle record", func(t *testing.T) {
		for _, repoErr := range []error{
			domain.ErrEventFull,
			domain.ErrEventNotPublic,
			&domain.CapacityExceededError{Remaining: 2},
		} {
			tours := &mockTourRepository{tours: map[string]*domain.Tour{"trek-nevado": activeTour()}}
			events := &mockEventRepository{events: map[string]*domain.Event{publicEvent().ID: publicEvent()}}
			limiter := &mockRateLimiter{}
			svc := newTestBookingService(tours, events, &mockBookingRepository{joinErr: repoErr}, limiter)

			_, err := svc.JoinEvent(ctx, domain.JoinEventInput{EventID: publicEvent().ID, Pax: 2, Customer: testCustomer, ClientID: "c"})
			require.Error(t, err)
			assert.Equal(t, repoErr, err, "conflict must pass through unchanged")
			assert.Zero(t, limiter.recordCalls)
		}
	})

	t.Run("throttled", func(t *testing.T) {
		limiter := &mockRateLimiter{allowErr: domain.ErrRateLimited}
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, &mockBookingRepository{}, limiter)
		_, err := svc.JoinEvent(ctx, domain.JoinEventInput{EventID: "e", Pax: 2, Customer: testCustomer, ClientID: "c"})
		assert.ErrorIs(t, err, domain.ErrRateLimited)
	})
}

func TestChangeBookingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates parsed status to repository", func(t *testing.T) {
		bookings := &mockBookingRepository{changeResult: &domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}}
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, bookings, &mockRateLimiter{})

		booking, err := svc.ChangeBookingStatus(ctx, "b1", "confirmed")
		require.NoError(t, err)
		assert.Equal(t, "b1", bookings.lastChangeID)
		assert.Equal(t, domain.BookingStatusConfirmed, bookings.lastChangeStatus)
		assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, &mockBookingRepository{}, &mockRateLimiter{})
		_, err := svc.ChangeBookingStatus(ctx, "b1", "refunded")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing booking id", func(t *testing.T) {
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, &mockBookingRepository{}, &mockRateLimiter{})
		_, err := svc.ChangeBookingStatus(ctx, "", "confirmed")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("invalid transition passes through", func(t *testing.T) {
		bookings := &mockBookingRepository{changeErr: domain.ErrInvalidTransition}
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, bookings, &mockRateLimiter{})
		_, err := svc.ChangeBookingStatus(ctx, "b1", "paid")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("passes filter through", func(t *testing.T) {
		bookings := &mockBookingRepository{listResult: []*domain.Booking{{ID: "b1"}}}
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, bookings, &mockRateLimiter{})

		filter := domain.BookingFilter{Status: domain.BookingStatusPending, TourID: "trek-nevado"}
		result, err := svc.ListBookings(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, filter, bookings.lastFilter)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, &mockBookingRepository{}, &mockRateLimiter{})
		_, err := svc.ListBookings(ctx, domain.BookingFilter{Status: "refunded"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestPublishEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes event", func(t *testing.T) {
		event := &domain.Event{ID: "e1", Type: domain.EventTypePrivate}
		events := &mockEventRepository{events: map[string]*domain.Event{"e1": event}}
		svc := newTestBookingService(&mockTourRepository{}, events, &mockBookingRepository{}, &mockRateLimiter{})

		published, err := svc.PublishEvent(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, domain.EventTypePublic, published.Type)
		assert.Equal(t, "e1", events.published)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, &mockBookingRepository{}, &mockRateLimiter{})
		_, err := svc.PublishEvent(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing event id", func(t *testing.T) {
		svc := newTestBookingService(&mockTourRepository{}, &mockEventRepository{}, &mockBookingRepository{}, &mockRateLimiter{})
		_, err := svc.PublishEvent(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

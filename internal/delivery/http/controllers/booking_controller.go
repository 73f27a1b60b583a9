package controllers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"nevadotrek/internal/delivery/http/helpers"
	"nevadotrek/internal/delivery/http/middleware"
	"nevadotrek/internal/domain"
)

// BookingController serves the public booking endpoints. A valid admin
// secret on these endpoints only bypasses the throttle; it grants nothing
// else.
type BookingController struct {
	Logger   *slog.Logger
	Service  domain.BookingService
	AdminKey string
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService, adminKey string) *BookingController {
	return &BookingController{
		Logger:   logger,
		Service:  svc,
		AdminKey: adminKey,
	}
}

// customerIsEmpty reports whether a customer payload is absent, JSON null,
// or an empty object.
func customerIsEmpty(c json.RawMessage) bool {
	trimmed := bytes.TrimSpace(c)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("{}"))
}

// CreateBookingRequest is the request body for POST /bookings.
type CreateBookingRequest struct {
	TourID    string          `json:"tour_id"`
	StartDate time.Time       `json:"start_date"`
	Pax       int             `json:"pax"`
	Customer  json.RawMessage `json:"customer"`
}

// Validate implements Validator.
func (c CreateBookingRequest) Validate() []string {
	var errs []string
	if c.TourID == "" {
		errs = append(errs, "tour_id is required")
	}
	if c.StartDate.IsZero() {
		errs = append(errs, "start_date is required")
	}
	if c.Pax < 1 {
		errs = append(errs, "pax must be at least 1")
	}
	if customerIsEmpty(c.Customer) {
		errs = append(errs, "customer is required")
	}
	return errs
}

// CreateBookingSuccessResponse is the success response envelope for POST /bookings (201).
type CreateBookingSuccessResponse struct {
	Data  *domain.CreateBookingResult `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// CreateBooking godoc
// @Summary Book a tour departure
// @Description Creates a private event for the tour and start date and books pax spots on it. The event id is derived from the tour and start date, so a second booking for the same departure is rejected; use the join endpoint once the event is published.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking data"
// @Success 201 {object} controllers.CreateBookingSuccessResponse "data contains the booking and event ids"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown tour)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (departure already booked, tour inactive, or pax over capacity)"
// @Failure 429 {object} helpers.APIResponse "error.code: rate_limited"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.CreateBooking(r.Context(), domain.CreateBookingInput{
		TourID:         req.TourID,
		StartDate:      req.StartDate,
		Pax:            req.Pax,
		Customer:       req.Customer,
		ClientID:       middleware.ClientIP(r),
		BypassThrottle: middleware.IsAdmin(r, c.AdminKey),
	})
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, result)
}

// JoinEventRequest is the request body for POST /events/{eventID}/join.
type JoinEventRequest struct {
	Pax      int             `json:"pax"`
	Customer json.RawMessage `json:"customer"`
}

// Validate implements Validator.
func (j JoinEventRequest) Validate() []string {
	var errs []string
	if j.Pax < 1 {
		errs = append(errs, "pax must be at least 1")
	}
	if customerIsEmpty(j.Customer) {
		errs = append(errs, "customer is required")
	}
	return errs
}

// JoinEventSuccessResponse is the success response envelope for POST /events/{eventID}/join (201).
type JoinEventSuccessResponse struct {
	Data  *domain.JoinEventResult `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// JoinEvent godoc
// @Summary Join a published departure
// @Description Books pax spots on an existing public event. The per-person price is resolved from the group size after joining.
// @Tags bookings
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param booking body JoinEventRequest true "Join data"
// @Success 201 {object} controllers.JoinEventSuccessResponse "data contains the booking id and new group size"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown event)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (event private, full, or not enough space)"
// @Failure 429 {object} helpers.APIResponse "error.code: rate_limited"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /events/{eventID}/join [post]
func (c *BookingController) JoinEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req JoinEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.JoinEvent(r.Context(), domain.JoinEventInput{
		EventID:        eventID,
		Pax:            req.Pax,
		Customer:       req.Customer,
		ClientID:       middleware.ClientIP(r),
		BypassThrottle: middleware.IsAdmin(r, c.AdminKey),
	})
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, result)
}

package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"nevadotrek/internal/delivery/http/helpers"
	"nevadotrek/internal/domain"
)

// AdminController serves the operator endpoints. The router wraps every
// handler here with middleware.RequireAdmin.
type AdminController struct {
	Logger         *slog.Logger
	TourService    domain.TourService
	BookingService domain.BookingService
}

func NewAdminController(logger *slog.Logger, tours domain.TourService, bookings domain.BookingService) *AdminController {
	return &AdminController{
		Logger:         logger,
		TourService:    tours,
		BookingService: bookings,
	}
}

// CreateTourRequest is the request body for POST /admin/tours.
type CreateTourRequest struct {
	ID               string               `json:"id"`
	Name             domain.LocalizedText `json:"name"`
	ShortDescription domain.LocalizedText `json:"short_description"`
	PricingTiers     []domain.PricingTier `json:"pricing_tiers"`
	IsActive         *bool                `json:"is_active"`
}

// Validate implements Validator. Pricing and bilingual rules live in the
// service; only structural requirements are checked here.
func (c CreateTourRequest) Validate() []string {
	var errs []string
	if c.ID == "" {
		errs = append(errs, "id is required")
	}
	if len(c.PricingTiers) == 0 {
		errs = append(errs, "pricing_tiers is required")
	}
	return errs
}

// CreateTourSuccessResponse is the success response envelope for POST /admin/tours (201).
type CreateTourSuccessResponse struct {
	Data  *domain.Tour      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateTour godoc
// @Summary Create a tour
// @Description Creates a tour with bilingual names and pricing tiers. New tours are active unless is_active is false.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param tour body CreateTourRequest true "Tour data"
// @Success 201 {object} controllers.CreateTourSuccessResponse "data contains the created tour"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (tour id taken)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/tours [post]
func (c *AdminController) CreateTour(w http.ResponseWriter, r *http.Request) {
	var req CreateTourRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	tour := &domain.Tour{
		ID:               req.ID,
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		PricingTiers:     req.PricingTiers,
		IsActive:         active,
	}
	if err := c.TourService.Create(r.Context(), tour); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, tour)
}

// ListAllTours godoc
// @Summary List all tours
// @Description Returns every tour, inactive ones included.
// @Tags admin
// @Produce json
// @Security AdminKey
// @Success 200 {object} controllers.ListToursSuccessResponse "data is an array of tours"
// @Failure 403 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/tours [get]
func (c *AdminController) ListAllTours(w http.ResponseWriter, r *http.Request) {
	tours, err := c.TourService.List(r.Context(), false)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tours)
}

// ListBookingsSuccessResponse is the success response envelope for GET /admin/bookings (200).
type ListBookingsSuccessResponse struct {
	Data  []*domain.Booking `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListBookings godoc
// @Summary List bookings
// @Description Returns bookings newest first, optionally filtered by status, tour, event, and creation time range.
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param status query string false "Booking status (pending, confirmed, paid, cancelled)"
// @Param tour_id query string false "Tour ID"
// @Param event_id query string false "Event ID"
// @Param from query string false "Created at or after (RFC 3339)"
// @Param to query string false "Created at or before (RFC 3339)"
// @Success 200 {object} controllers.ListBookingsSuccessResponse "data is an array of bookings"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/bookings [get]
func (c *AdminController) ListBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.BookingFilter{
		Status:  domain.BookingStatus(q.Get("status")),
		TourID:  q.Get("tour_id"),
		EventID: q.Get("event_id"),
	}
	if s := q.Get("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "from must be RFC 3339")
			return
		}
		filter.From = &t
	}
	if s := q.Get("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "to must be RFC 3339")
			return
		}
		filter.To = &t
	}

	bookings, err := c.BookingService.ListBookings(r.Context(), filter)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bookings)
}

// ChangeBookingStatusRequest is the request body for PUT /admin/bookings/{bookingID}/status.
type ChangeBookingStatusRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator.
func (c ChangeBookingStatusRequest) Validate() []string {
	if c.Status == "" {
		return []string{"status is required"}
	}
	return nil
}

// ChangeBookingStatusSuccessResponse is the success response envelope for PUT /admin/bookings/{bookingID}/status (200).
type ChangeBookingStatusSuccessResponse struct {
	Data  *domain.Booking   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ChangeBookingStatus godoc
// @Summary Change a booking's status
// @Description Moves a booking through its lifecycle. Cancelling releases the booking's spots back to its event; repeating the current status is a no-op.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param bookingID path string true "Booking ID"
// @Param status body ChangeBookingStatusRequest true "Target status"
// @Success 200 {object} controllers.ChangeBookingStatusSuccessResponse "data contains the updated booking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (transition not allowed)"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /admin/bookings/{bookingID}/status [put]
func (c *AdminController) ChangeBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := r.PathValue("bookingID")
	if bookingID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing bookingID")
		return
	}
	var req ChangeBookingStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.BookingService.ChangeBookingStatus(r.Context(), bookingID, req.Status)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}

// PublishEventSuccessResponse is the success response envelope for POST /admin/events/{eventID}/publish (200).
type PublishEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// PublishEvent godoc
// @Summary Publish an event
// @Description Opens a private event for public joins. Publishing an already public event keeps its original publish time.
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.PublishEventSuccessResponse "data contains the published event"
// @Failure 403 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/publish [post]
func (c *AdminController) PublishEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.BookingService.PublishEvent(r.Context(), eventID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

package controllers

import (
	"log/slog"
	"net/http"

	"nevadotrek/internal/delivery/http/helpers"
	"nevadotrek/internal/domain"
)

// TourController serves the public tour catalog. Only active tours are
// visible here; the admin surface lists everything.
type TourController struct {
	Logger  *slog.Logger
	Service domain.TourService
}

func NewTourController(logger *slog.Logger, svc domain.TourService) *TourController {
	return &TourController{
		Logger:  logger,
		Service: svc,
	}
}

// ListToursSuccessResponse is the success response envelope for GET /tours (200).
type ListToursSuccessResponse struct {
	Data  []*domain.Tour    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListTours godoc
// @Summary List active tours
// @Description Returns the catalog of active tours with their pricing tiers, newest first.
// @Tags tours
// @Produce json
// @Success 200 {object} controllers.ListToursSuccessResponse "data is an array of tours"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tours [get]
func (c *TourController) ListTours(w http.ResponseWriter, r *http.Request) {
	tours, err := c.Service.List(r.Context(), true)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tours)
}

// GetTourSuccessResponse is the success response envelope for GET /tours/{tourID} (200).
type GetTourSuccessResponse struct {
	Data  *domain.Tour      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetTour godoc
// @Summary Get a tour by ID
// @Tags tours
// @Produce json
// @Param tourID path string true "Tour ID (slug)"
// @Success 200 {object} controllers.GetTourSuccessResponse "data contains the tour"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tours/{tourID} [get]
func (c *TourController) GetTour(w http.ResponseWriter, r *http.Request) {
	tourID := r.PathValue("tourID")
	if tourID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing tourID")
		return
	}
	tour, err := c.Service.GetByID(r.Context(), tourID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tour)
}

package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"nevadotrek/internal/delivery/http/controllers"
	"nevadotrek/internal/delivery/http/helpers"
	"nevadotrek/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes.
// adminKey guards the /admin subtree; an empty key locks it entirely.
func NewRouter(
	bookingController *controllers.BookingController,
	tourController *controllers.TourController,
	adminController *controllers.AdminController,
	adminKey string,
) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(adminKey)

	// Public
	mux.HandleFunc("POST /bookings", bookingController.CreateBooking)
	mux.HandleFunc("POST /events/{eventID}/join", bookingController.JoinEvent)
	mux.HandleFunc("GET /tours", tourController.ListTours)
	mux.HandleFunc("GET /tours/{tourID}", tourController.GetTour)

	// Admin
	mux.HandleFunc("POST /admin/tours", admin(adminController.CreateTour))
	mux.HandleFunc("GET /admin/tours", admin(adminController.ListAllTours))
	mux.HandleFunc("GET /admin/bookings", admin(adminController.ListBookings))
	mux.HandleFunc("PUT /admin/bookings/{bookingID}/status", admin(adminController.ChangeBookingStatus))
	mux.HandleFunc("POST /admin/events/{eventID}/publish", admin(adminController.PublishEvent))

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"hallBooker/internal/http-server/handlers/booking/createBooking"
	"hallBooker/internal/http-server/handlers/customer/getAllCustomers"
	"hallBooker/internal/http-server/handlers/customer/getBookingStats"
	"hallBooker/internal/http-server/handlers/home"
	"hallBooker/internal/http-server/handlers/room/createRoom"
	"hallBooker/internal/http-server/handlers/room/getAllRooms"
	"hallBooker/internal/http-server/middleware/mwlogger"
	"log/slog"
	"net/http"
)

type Storage interface {
	createRoom.RoomCreator
	getAllRooms.RoomsGetter
	createBooking.BookingCreator
	getAllCustomers.CustomersGetter
	getBookingStats.StatsGetter
}

func New(log *slog.Logger, storage Storage, allowedOrigins []string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	router.Get("/", home.New(log))

	router.Post("/rooms", createRoom.New(log, storage))
	router.Get("/rooms", getAllRooms.New(log, storage))

	router.Post("/bookings", createBooking.New(log, storage))

	router.Get("/customers", getAllCustomers.New(log, storage))
	router.Get("/customer-booking-stats", getBookingStats.New(log, storage))

	return router
}

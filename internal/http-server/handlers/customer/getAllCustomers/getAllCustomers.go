package getAllCustomers

import (
	"github.com/go-chi/render"
	"hallBooker/internal/models"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CustomersGetter
type CustomersGetter interface {
	CustomerBookings() []models.CustomerBooking
}

func New(log *slog.Logger, customersGetter CustomersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.customer.getAllCustomers.New"

		log := log.With(slog.String("op", op))

		customers := customersGetter.CustomerBookings()

		log.Info("customer bookings retrieved successfully", slog.Int("count", len(customers)))

		render.JSON(w, r, customers)
	}
}

package getBookingStats

import (
	"github.com/go-chi/render"
	"hallBooker/internal/models"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsGetter
type StatsGetter interface {
	CustomerBookingStats(customerName models.Value) []models.CustomerBookingStats
}

func New(log *slog.Logger, statsGetter StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.customer.getBookingStats.New"

		customerName := customerNameParam(r)

		log := log.With(
			slog.String("op", op),
			slog.Any("customer_name", customerName.Any()),
		)

		stats := statsGetter.CustomerBookingStats(customerName)

		log.Info("customer booking stats retrieved successfully", slog.Int("count", len(stats)))

		render.JSON(w, r, stats)
	}
}

// customerNameParam is absent when the parameter is omitted, a string when
// given once and an array when repeated.
func customerNameParam(r *http.Request) models.Value {
	values, ok := r.URL.Query()["customerName"]
	if !ok {
		return models.Value{}
	}

	if len(values) == 1 {
		return models.StringValue(values[0])
	}

	names := make([]any, len(values))
	for i, v := range values {
		names[i] = v
	}

	return models.ValueOf(names)
}

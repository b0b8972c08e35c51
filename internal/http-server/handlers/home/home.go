package home

import (
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

const WelcomeMessage = "Welcome to the Hall Booking API"

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.home.New"

		log.Debug("welcome requested", slog.String("op", op))

		render.PlainText(w, r, WelcomeMessage)
	}
}

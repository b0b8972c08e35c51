package getAllRooms

import (
	"github.com/go-chi/render"
	"hallBooker/internal/models"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomsGetter
type RoomsGetter interface {
	RoomsWithStatus() []models.RoomStatus
}

func New(log *slog.Logger, roomsGetter RoomsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.getAllRooms.New"

		log := log.With(slog.String("op", op))

		rooms := roomsGetter.RoomsWithStatus()

		log.Info("rooms retrieved successfully", slog.Int("count", len(rooms)))

		render.JSON(w, r, rooms)
	}
}

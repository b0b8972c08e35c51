package createRoom

import (
	"errors"
	"github.com/go-chi/render"
	"hallBooker/internal/lib/api/response"
	"hallBooker/internal/lib/logger/sl"
	"hallBooker/internal/models"
	"io"
	"log/slog"
	"net/http"
)

// Request fields are stored as sent: any JSON type, null, or absent.
type Request struct {
	RoomName     models.Value `json:"roomName"`
	Seats        models.Value `json:"seats"`
	Amenities    models.Value `json:"amenities"`
	PricePerHour models.Value `json:"pricePerHour"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomCreator
type RoomCreator interface {
	CreateRoom(room models.Room) models.Room
}

func New(log *slog.Logger, roomCreator RoomCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.createRoom.New"

		log := log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if errors.Is(err, io.EOF) {
			log.Debug("request body is empty")
		} else if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		room := roomCreator.CreateRoom(models.Room{
			Name:         req.RoomName,
			Seats:        req.Seats,
			Amenities:    req.Amenities,
			PricePerHour: req.PricePerHour,
		})

		log.Info("room created", slog.Int("room_id", room.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, room)
	}
}

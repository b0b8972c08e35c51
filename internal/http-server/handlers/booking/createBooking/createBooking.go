package createBooking

import (
	"errors"
	"github.com/go-chi/render"
	"hallBooker/internal/lib/api/response"
	"hallBooker/internal/lib/logger/sl"
	"hallBooker/internal/models"
	"hallBooker/internal/storage"
	"io"
	"log/slog"
	"net/http"
)

const msgRoomAlreadyBooked = "Room is already booked during this time"

// Request is not validated: unknown rooms, inverted intervals, nulls and
// mixed types are stored as sent.
type Request struct {
	CustomerName models.Value `json:"customerName"`
	Date         models.Value `json:"date"`
	StartTime    models.Value `json:"startTime"`
	EndTime      models.Value `json:"endTime"`
	RoomID       models.Value `json:"roomId"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(booking models.Booking) (models.Booking, error)
}

func New(log *slog.Logger, bookingCreator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

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

		booking, err := bookingCreator.CreateBooking(models.Booking{
			CustomerName: req.CustomerName,
			Date:         req.Date,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			RoomID:       req.RoomID,
		})
		if err != nil {
			if errors.Is(err, storage.ErrRoomAlreadyBooked) {
				log.Info("room already booked", slog.Any("room_id", req.RoomID.Any()), slog.Any("date", req.Date.Any()))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(msgRoomAlreadyBooked))

				return
			}

			log.Error("failed to create booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))

			return
		}

		log.Info("booking created", slog.Int("booking_id", booking.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, booking)
	}
}

package memory

import (
	"fmt"
	"hallBooker/internal/models"
	"hallBooker/internal/storage"
	"sync"
	"time"
)

// Storage keeps rooms and bookings for the lifetime of the process.
// Every method holds mu for its whole duration, so the overlap scan and the
// append in CreateBooking are never interleaved with another request.
type Storage struct {
	mu sync.Mutex

	rooms      []models.Room
	lastRoomID int

	bookings      []models.Booking
	lastBookingID int

	now func() time.Time
}

type Option func(*Storage)

// WithClock overrides the source of booking timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		s.now = now
	}
}

func New(opts ...Option) *Storage {
	s := &Storage{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Storage) CreateRoom(room models.Room) models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRoomID++
	room.ID = s.lastRoomID

	s.rooms = append(s.rooms, room)

	return room
}

func (s *Storage) CreateBooking(booking models.Booking) (models.Booking, error) {
	const op = "storage.memory.CreateBooking"

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookings {
		if existing.Overlaps(booking) {
			return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrRoomAlreadyBooked)
		}
	}

	s.lastBookingID++
	booking.ID = s.lastBookingID
	booking.Status = models.BookingStatusBooked
	booking.BookingDate = s.now()

	s.bookings = append(s.bookings, booking)

	return booking, nil
}

func (s *Storage) RoomsWithStatus() []models.RoomStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.RoomStatus, 0, len(s.rooms))
	for _, room := range s.rooms {
		status := models.RoomStatus{
			Room:          room,
			BookingStatus: models.RoomStatusAvailable,
			CustomerName:  models.NullValue(),
		}

		if booking, ok := s.firstBookingForRoom(room); ok {
			status.BookingStatus = models.RoomStatusBooked
			status.CustomerName = booking.CustomerName
			status.BookingDetails = &models.BookingDetails{
				Date:      booking.Date,
				StartTime: booking.StartTime,
				EndTime:   booking.EndTime,
			}
		}

		result = append(result, status)
	}

	return result
}

func (s *Storage) CustomerBookings() []models.CustomerBooking {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.CustomerBooking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		result = append(result, s.customerBooking(booking))
	}

	return result
}

// CustomerBookingStats returns the bookings whose customer name is strictly
// equal to customerName. An absent customerName matches only bookings made
// without one.
func (s *Storage) CustomerBookingStats(customerName models.Value) []models.CustomerBookingStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.CustomerBookingStats, 0)
	for _, booking := range s.bookings {
		if !booking.CustomerName.Equal(customerName) {
			continue
		}

		result = append(result, models.CustomerBookingStats{
			CustomerBooking: s.customerBooking(booking),
			BookingDate:     booking.BookingDate,
			Status:          booking.Status,
		})
	}

	return result
}

// firstBookingForRoom returns the earliest stored booking for room, on any date.
func (s *Storage) firstBookingForRoom(room models.Room) (models.Booking, bool) {
	id := room.IDValue()

	for _, booking := range s.bookings {
		if booking.RoomID.Equal(id) {
			return booking, true
		}
	}

	return models.Booking{}, false
}

// roomName is absent when roomID matches no room.
func (s *Storage) roomName(roomID models.Value) models.Value {
	for _, room := range s.rooms {
		if room.IDValue().Equal(roomID) {
			return room.Name
		}
	}

	return models.Value{}
}

func (s *Storage) customerBooking(booking models.Booking) models.CustomerBooking {
	return models.CustomerBooking{
		CustomerName: booking.CustomerName,
		RoomName:     s.roomName(booking.RoomID),
		Date:         booking.Date,
		StartTime:    booking.StartTime,
		EndTime:      booking.EndTime,
	}
}

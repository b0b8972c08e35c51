package memory

import (
	"errors"
	"fmt"
	"hallBooker/internal/models"
	"hallBooker/internal/storage"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func newTestStorage() *Storage {
	return New(WithClock(func() time.Time { return testTime }))
}

func booking(customer string, roomID float64, date, start, end string) models.Booking {
	return models.Booking{
		CustomerName: models.StringValue(customer),
		RoomID:       models.NumberValue(roomID),
		Date:         models.StringValue(date),
		StartTime:    models.StringValue(start),
		EndTime:      models.StringValue(end),
	}
}

func room(name string) models.Room {
	return models.Room{Name: models.StringValue(name)}
}

func str(s string) models.Value {
	return models.StringValue(s)
}

func TestCreateRoomAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	s := newTestStorage()

	first := s.CreateRoom(models.Room{Name: str("A"), Seats: models.NumberValue(10)})
	second := s.CreateRoom(models.Room{
		Name:         str("B"),
		Seats:        models.NumberValue(20),
		Amenities:    models.ValueOf([]any{"projector"}),
		PricePerHour: models.NumberValue(12.5),
	})
	third := s.CreateRoom(models.Room{})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID)
	assert.Equal(t, str("B"), second.Name)
	assert.Equal(t, models.ValueOf([]any{"projector"}), second.Amenities)
	assert.Equal(t, models.NumberValue(12.5), second.PricePerHour)
	assert.True(t, third.Name.IsZero())
}

func TestCreateRoomIgnoresCallerID(t *testing.T) {
	t.Parallel()

	s := newTestStorage()

	created := s.CreateRoom(models.Room{ID: 42, Name: str("A")})

	assert.Equal(t, 1, created.ID)
}

func TestCreateBooking(t *testing.T) {
	t.Parallel()

	s := newTestStorage()

	created, err := s.CreateBooking(booking("Alice", 1, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, models.BookingStatusBooked, created.Status)
	assert.Equal(t, testTime, created.BookingDate)
	assert.Equal(t, str("Alice"), created.CustomerName)
	assert.Equal(t, models.NumberValue(1), created.RoomID)
}

func TestCreateBookingOverlap(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		candidate models.Booking
		wantErr   bool
	}{
		{name: "Overlapping", candidate: booking("Bob", 1, "2024-01-01", "10:30", "11:30"), wantErr: true},
		{name: "Identical", candidate: booking("Bob", 1, "2024-01-01", "10:00", "11:00"), wantErr: true},
		{name: "Enclosing", candidate: booking("Bob", 1, "2024-01-01", "09:00", "12:00"), wantErr: true},
		{name: "Enclosed", candidate: booking("Bob", 1, "2024-01-01", "10:10", "10:20"), wantErr: true},
		{name: "Touching after", candidate: booking("Bob", 1, "2024-01-01", "11:00", "12:00")},
		{name: "Touching before", candidate: booking("Bob", 1, "2024-01-01", "09:00", "10:00")},
		{name: "Different date", candidate: booking("Bob", 1, "2024-01-02", "10:00", "11:00")},
		{name: "Different room", candidate: booking("Bob", 2, "2024-01-01", "10:00", "11:00")},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := newTestStorage()

			_, err := s.CreateBooking(booking("Alice", 1, "2024-01-01", "10:00", "11:00"))
			require.NoError(t, err)

			created, err := s.CreateBooking(tc.candidate)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, storage.ErrRoomAlreadyBooked))
				assert.Len(t, s.CustomerBookings(), 1, "rejected booking must not be stored")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 2, created.ID)
			assert.Len(t, s.CustomerBookings(), 2)
		})
	}
}

func TestCreateBookingRejectedDoesNotConsumeID(t *testing.T) {
	t.Parallel()

	s := newTestStorage()

	_, err := s.CreateBooking(booking("Alice", 1, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)

	_, err = s.CreateBooking(booking("Bob", 1, "2024-01-01", "10:30", "11:30"))
	require.ErrorIs(t, err, storage.ErrRoomAlreadyBooked)

	created, err := s.CreateBooking(booking("Bob", 1, "2024-01-01", "11:00", "12:00"))
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
}

func TestCreateBookingAcceptsUnvalidatedInput(t *testing.T) {
	t.Parallel()

	s := newTestStorage()

	unknownRoom, err := s.CreateBooking(booking("Alice", 99, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)
	assert.Equal(t, models.NumberValue(99), unknownRoom.RoomID)

	inverted, err := s.CreateBooking(booking("Alice", 1, "2024-01-01", "12:00", "08:00"))
	require.NoError(t, err)
	assert.Equal(t, str("12:00"), inverted.StartTime)
	assert.Equal(t, str("08:00"), inverted.EndTime)

	empty, err := s.CreateBooking(models.Booking{})
	require.NoError(t, err)
	assert.Equal(t, 3, empty.ID)
}

func TestNonOverlappingBookingsAllRetrievable(t *testing.T) {
	t.Parallel()

	s := newTestStorage()

	slots := [][2]string{{"08:00", "09:00"}, {"09:00", "10:00"}, {"10:00", "10:30"}, {"13:00", "17:00"}}
	for i, slot := range slots {
		created, err := s.CreateBooking(booking("Alice", 1, "2024-01-01", slot[0], slot[1]))
		require.NoError(t, err)
		assert.Equal(t, i+1, created.ID)
	}

	stats := s.CustomerBookingStats(str("Alice"))
	require.Len(t, stats, len(slots))
	for i, slot := range slots {
		assert.Equal(t, str(slot[0]), stats[i].StartTime)
		assert.Equal(t, str(slot[1]), stats[i].EndTime)
	}
}

func TestRoomAndBookingIDsAreIndependent(t *testing.T) {
	t.Parallel()

	s := newTestStorage()

	s.CreateRoom(room("A"))
	s.CreateRoom(room("B"))

	created, err := s.CreateBooking(booking("Alice", 2, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	third := s.CreateRoom(room("C"))
	assert.Equal(t, 3, third.ID)
}

func TestRoomsWithStatus(t *testing.T) {
	t.Parallel()

	s := newTestStorage()

	assert.NotNil(t, s.RoomsWithStatus())
	assert.Empty(t, s.RoomsWithStatus())

	s.CreateRoom(models.Room{Name: str("A"), Seats: models.NumberValue(10)})
	s.CreateRoom(models.Room{Name: str("B"), Seats: models.NumberValue(20)})

	_, err := s.CreateBooking(booking("Alice", 1, "2024-01-02", "10:00", "11:00"))
	require.NoError(t, err)
	_, err = s.CreateBooking(booking("Bob", 1, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)

	rooms := s.RoomsWithStatus()
	require.Len(t, rooms, 2)

	assert.Equal(t, 1, rooms[0].ID)
	assert.Equal(t, models.RoomStatusBooked, rooms[0].BookingStatus)
	assert.Equal(t, str("Alice"), rooms[0].CustomerName, "first booking in store order wins")
	require.NotNil(t, rooms[0].BookingDetails)
	assert.Equal(t, models.BookingDetails{
		Date:      str("2024-01-02"),
		StartTime: str("10:00"),
		EndTime:   str("11:00"),
	}, *rooms[0].BookingDetails)

	assert.Equal(t, 2, rooms[1].ID)
	assert.Equal(t, models.RoomStatusAvailable, rooms[1].BookingStatus)
	assert.Equal(t, models.NullValue(), rooms[1].CustomerName)
	assert.Nil(t, rooms[1].BookingDetails)
}

func TestCustomerBookings(t *testing.T) {
	t.Parallel()

	s := newTestStorage()

	assert.NotNil(t, s.CustomerBookings())

	s.CreateRoom(room("A"))

	_, err := s.CreateBooking(booking("Alice", 1, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)
	_, err = s.CreateBooking(booking("Bob", 7, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)

	customers := s.CustomerBookings()
	require.Len(t, customers, 2)

	assert.Equal(t, str("Alice"), customers[0].CustomerName)
	assert.Equal(t, str("A"), customers[0].RoomName)

	assert.Equal(t, str("Bob"), customers[1].CustomerName)
	assert.True(t, customers[1].RoomName.IsZero())
}

func TestCustomerBookingStats(t *testing.T) {
	t.Parallel()

	s := newTestStorage()

	s.CreateRoom(room("A"))
	s.CreateRoom(room("B"))

	_, err := s.CreateBooking(booking("Alice", 1, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)
	_, err = s.CreateBooking(booking("Bob", 1, "2024-01-01", "11:00", "12:00"))
	require.NoError(t, err)
	_, err = s.CreateBooking(booking("Alice", 2, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)

	stats := s.CustomerBookingStats(str("Alice"))
	require.Len(t, stats, 2)
	for _, st := range stats {
		assert.Equal(t, str("Alice"), st.CustomerName)
		assert.Equal(t, models.BookingStatusBooked, st.Status)
		assert.Equal(t, testTime, st.BookingDate)
	}
	assert.Equal(t, str("A"), stats[0].RoomName)
	assert.Equal(t, str("B"), stats[1].RoomName)

	assert.Empty(t, s.CustomerBookingStats(str("alice")), "match is case-sensitive")
	assert.Empty(t, s.CustomerBookingStats(str("")))
	assert.Empty(t, s.CustomerBookingStats(models.Value{}))
	assert.NotNil(t, s.CustomerBookingStats(str("Carol")))
}

func TestConcurrentBookingsKeepInvariant(t *testing.T) {
	t.Parallel()

	s := newTestStorage()

	const workers = 50

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			_, err := s.CreateBooking(booking(fmt.Sprintf("customer-%d", i), 1, "2024-01-01", "10:00", "11:00"))
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Len(t, s.CustomerBookings(), 1)
}

func TestCustomerBookingStatsAbsentAndEmptyNames(t *testing.T) {
	t.Parallel()

	s := newTestStorage()

	_, err := s.CreateBooking(models.Booking{RoomID: models.NumberValue(1), Date: str("2024-01-01")})
	require.NoError(t, err)
	_, err = s.CreateBooking(booking("", 2, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)

	absent := s.CustomerBookingStats(models.Value{})
	require.Len(t, absent, 1)
	assert.True(t, absent[0].CustomerName.IsZero())

	empty := s.CustomerBookingStats(str(""))
	require.Len(t, empty, 1)
	assert.Equal(t, str(""), empty[0].CustomerName)

	assert.Empty(t, s.CustomerBookingStats(models.NullValue()))
}

func TestRoomIDsMatchOnlyNumbers(t *testing.T) {
	t.Parallel()

	s := newTestStorage()

	s.CreateRoom(room("A"))

	_, err := s.CreateBooking(models.Booking{CustomerName: str("Alice"), RoomID: str("1"), Date: str("2024-01-01")})
	require.NoError(t, err)

	rooms := s.RoomsWithStatus()
	require.Len(t, rooms, 1)
	assert.Equal(t, models.RoomStatusAvailable, rooms[0].BookingStatus)

	customers := s.CustomerBookings()
	require.Len(t, customers, 1)
	assert.True(t, customers[0].RoomName.IsZero())

	_, err = s.CreateBooking(booking("Bob", 1, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)

	rooms = s.RoomsWithStatus()
	assert.Equal(t, models.RoomStatusBooked, rooms[0].BookingStatus)
	assert.Equal(t, str("Bob"), rooms[0].CustomerName)
}

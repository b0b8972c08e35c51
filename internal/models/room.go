package models

// Room fields other than ID are stored as sent, including nulls and
// values of unexpected types.
type Room struct {
	ID           int   `json:"roomId"`
	Name         Value `json:"roomName,omitzero"`
	Seats        Value `json:"seats,omitzero"`
	Amenities    Value `json:"amenities,omitzero"`
	PricePerHour Value `json:"pricePerHour,omitzero"`
}

// IDValue is the room ID as it compares against Booking.RoomID.
func (r Room) IDValue() Value {
	return NumberValue(float64(r.ID))
}

const (
	RoomStatusBooked    = "Booked"
	RoomStatusAvailable = "Available"
)

type BookingDetails struct {
	Date      Value `json:"date,omitzero"`
	StartTime Value `json:"startTime,omitzero"`
	EndTime   Value `json:"endTime,omitzero"`
}

// RoomStatus is a room annotated with the first booking found for it.
type RoomStatus struct {
	Room
	BookingStatus  string          `json:"bookingStatus"`
	CustomerName   Value           `json:"customerName,omitzero"`
	BookingDetails *BookingDetails `json:"bookingDetails"`
}

package models

import "time"

const BookingStatusBooked = "Booked"

type Booking struct {
	ID           int       `json:"bookingId"`
	CustomerName Value     `json:"customerName,omitzero"`
	Date         Value     `json:"date,omitzero"`
	StartTime    Value     `json:"startTime,omitzero"`
	EndTime      Value     `json:"endTime,omitzero"`
	RoomID       Value     `json:"roomId,omitzero"`
	Status       string    `json:"status"`
	BookingDate  time.Time `json:"bookingDate"`
}

// Overlaps reports whether b and other hold the same room on the same date
// with intersecting [StartTime, EndTime) intervals. A booking ending at
// "11:00" does not overlap one starting at "11:00".
func (b Booking) Overlaps(other Booking) bool {
	return b.RoomID.Equal(other.RoomID) &&
		b.Date.Equal(other.Date) &&
		Less(other.StartTime, b.EndTime) &&
		Less(b.StartTime, other.EndTime)
}

type CustomerBooking struct {
	CustomerName Value `json:"customerName,omitzero"`
	RoomName     Value `json:"roomName,omitzero"`
	Date         Value `json:"date,omitzero"`
	StartTime    Value `json:"startTime,omitzero"`
	EndTime      Value `json:"endTime,omitzero"`
}

type CustomerBookingStats struct {
	CustomerBooking
	BookingDate time.Time `json:"bookingDate"`
	Status      string    `json:"status"`
}

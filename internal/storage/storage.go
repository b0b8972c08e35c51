package storage

import "errors"

var ErrRoomAlreadyBooked = errors.New("room is already booked during this time")

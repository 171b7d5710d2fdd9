package errs

import (
	"errors"
)

var (
	ErrInvalidStatus      = errors.New("invalid reservation status")
	ErrUnknownTable       = errors.New("unknown table")
	ErrDoubleBooking      = errors.New("table already booked for this date and time")
	ErrNotFound           = errors.New("reservation not found")
	ErrInvalidTransition  = errors.New("reservation is no longer pending")
	ErrStoreFailure       = errors.New("store failure")
	ErrInvalidDateTime    = errors.New("date must be YYYY-MM-DD and time HH:MM")
	ErrInvalidReservation = errors.New("invalid reservation")

	ErrInvalidTableCount = errors.New("table count must be positive")
)

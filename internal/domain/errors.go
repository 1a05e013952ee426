package domain

import "errors"

var (
	ErrTableNotFound       = errors.New("table not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrSlotInPast          = errors.New("reservation date and time cannot be in the past")
	ErrOutsideServiceHours = errors.New("reservation time must be between 09:00 and 22:00")
	ErrNoTablesAvailable   = errors.New("no tables available for the requested date, time and party size")
	ErrNotReservationOwner = errors.New("reservation belongs to another customer")
	ErrReservationFinal    = errors.New("reservation is already finalized")
	ErrCancelTooLate       = errors.New("too close to the reservation time to cancel")
)

var (
	ErrTableNumberTaken = errors.New("table number is already taken")
	ErrTableInUse       = errors.New("table has active reservations")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)

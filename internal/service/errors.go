package service

import "errors"

var (
	ErrNotFound = errors.New("resource not found")

	// forbidden class: the caller is known but may not perform the booking
	ErrIneligibleTicket  = errors.New("cannot book a room without a paid, in-person ticket that includes hotel")
	ErrRoomAtCapacity    = errors.New("cannot book this room beyond capacity")
	ErrNoExistingBooking = errors.New("cannot update a booking that does not exist")

	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrConflict           = errors.New("resource already exists")
)

// IsForbidden reports whether err is one of the booking rule violations.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrIneligibleTicket) ||
		errors.Is(err, ErrRoomAtCapacity) ||
		errors.Is(err, ErrNoExistingBooking)
}

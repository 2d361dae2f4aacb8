package domain

import "errors"

// Domain errors
var (
	// Event errors
	ErrEventNotFound = errors.New("event not found")

	// Attendee errors
	ErrAttendeeNotFound = errors.New("attendee not found")

	// Ticket errors
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrInvalidQRCode      = errors.New("invalid qr code")

	// Payment errors
	ErrPaymentFailed = errors.New("payment failed, please try again")

	// Job errors
	ErrJobNotFound       = errors.New("job posting not found")
	ErrApplicationFailed = errors.New("application failed, please try again")

	// Organizer errors
	ErrOrganizerNotFound = errors.New("organizer not found")
)

package waitlist

import "errors"

var (
	ErrMissingPassengerID = errors.New("passenger id is required")
	ErrNotInWaitlist      = errors.New("passenger has no waitlisted reservation")
)

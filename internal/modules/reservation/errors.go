package reservation

import "errors"

var (
	ErrInvalidTrain       = errors.New("train does not exist")
	ErrInvalidFromStation = errors.New("from station does not exist")
	ErrInvalidToStation   = errors.New("to station does not exist")
	ErrUnknownPassenger   = errors.New("passenger email not registered")
	ErrSeatTaken          = errors.New("seat already booked")
	ErrNotFound           = errors.New("reservation not found")
	ErrMissingAction      = errors.New("action is required")
	ErrInvalidAction      = errors.New("unknown action")
	ErrMissingFields      = errors.New("missing required fields")
)

// ValidationError carries a field-level message produced during request
// validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

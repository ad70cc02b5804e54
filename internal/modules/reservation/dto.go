package reservation

type BookSeatRequest struct {
	TrainID     int64  `json:"TrainID" validate:"required"`
	Date        string `json:"Date" validate:"required"`
	FromStation int64  `json:"FromStation" validate:"required"`
	ToStation   int64  `json:"ToStation" validate:"required"`
	CoachType   string `json:"CoachType" validate:"required"`
	SeatNumber  string `json:"SeatNumber" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}

type CompletePaymentRequest struct {
	ReservationID int64 `json:"reservationID"`
}

// ReservationDetails carries the editable reservation columns. Pointer
// fields so an Edit can tell "absent" from "zero".
type ReservationDetails struct {
	TrainID     *int64  `json:"TrainID"`
	Date        *string `json:"Date"`
	FromStation *int64  `json:"FromStation"`
	ToStation   *int64  `json:"ToStation"`
	CoachType   *string `json:"CoachType"`
	SeatNumber  *string `json:"SeatNumber"`
}

type ManageRequest struct {
	Action         string              `json:"action"`
	ReservationID  int64               `json:"reservationID"`
	PassengerEmail string              `json:"passengerEmail"`
	Details        *ReservationDetails `json:"details"`
}

type AddPaymentRequest struct {
	ResID         int64   `json:"ResID" validate:"required"`
	VAT           float64 `json:"VAT" validate:"required"`
	Amount        float64 `json:"Amount" validate:"required"`
	PaymentStatus string  `json:"Payment_Status"`
}

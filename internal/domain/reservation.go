package domain

import "time"

type CoachType string

const (
	CoachEconomy  CoachType = "Economy"
	CoachBusiness CoachType = "Business"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
)

// Reservation is the authoritative booking row. PaymentID stays nil until the
// payment row is attached; Paid flips only through the completion operation.
type Reservation struct {
	ID          int64     `json:"ReservationID"`
	TrainID     int64     `json:"TrainID"`
	Date        string    `json:"Date"`
	FromStation int64     `json:"FromStation"`
	ToStation   int64     `json:"ToStation"`
	CoachType   CoachType `json:"CoachType"`
	SeatNumber  string    `json:"SeatNumber"`
	PassengerID int64     `json:"PassengerID"`
	PaymentID   *int64    `json:"PaymentID"`
	Paid        bool      `json:"Paid"`
}

type Payment struct {
	ID     int64         `json:"PaymentID"`
	ResID  int64         `json:"ResID"`
	Date   time.Time     `json:"Date"`
	VAT    float64       `json:"VAT"`
	Amount float64       `json:"Amount"`
	Status PaymentStatus `json:"Payment_Status"`
}

// WaitingListEntry marks an existing reservation as not yet confirmed against
// capacity. The reservation row exists independently of this marker.
type WaitingListEntry struct {
	ReservationID int64 `json:"ReservationID"`
}

// TripDetails is the enriched view returned when a waitlisted passenger is
// promoted.
type TripDetails struct {
	TrainID     int64  `json:"TrainID"`
	EnglishName string `json:"English_name"`
	ArabicName  string `json:"Arabic_name"`
	Date        string `json:"Date"`
	FromStation string `json:"FromStation"`
	ToStation   string `json:"ToStation"`
}

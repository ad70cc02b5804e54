package waitlist

type PromoteRequest struct {
	PassengerID int64 `json:"passengerID"`
}

package domain

type LoyaltyStatus string

const (
	LoyaltyNone   LoyaltyStatus = "None"
	LoyaltySilver LoyaltyStatus = "Silver"
	LoyaltyGold   LoyaltyStatus = "Gold"
)

type Passenger struct {
	ID           int64         `json:"PassengerID"`
	Name         string        `json:"Name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	LoyaltyStat  LoyaltyStatus `json:"LoyaltyStat"`
}

// Dependent is a passenger's travel companion. Not billable on its own.
type Dependent struct {
	ID          int64  `json:"DependentID"`
	Name        string `json:"Name"`
	PassengerID int64  `json:"Passenger_ID"`
}

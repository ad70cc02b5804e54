package repository

import "time"

// gorm row models. Domain structs stay free of persistence tags; each repo
// maps between the two.

type trainRow struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	EnglishName string `gorm:"column:english_name"`
	ArabicName  string `gorm:"column:arabic_name"`
}

func (trainRow) TableName() string { return "trains" }

type stationRow struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name string `gorm:"column:name"`
}

func (stationRow) TableName() string { return "stations" }

type scheduleStopRow struct {
	TrainID       int64  `gorm:"column:train_id;primaryKey;autoIncrement:false"`
	StationID     int64  `gorm:"column:station_id;primaryKey;autoIncrement:false"`
	StopSequence  int    `gorm:"column:stop_sequence"`
	DepartureTime string `gorm:"column:departure_time"`
}

func (scheduleStopRow) TableName() string { return "schedule_stops" }

type passengerRow struct {
	ID           int64  `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name"`
	Email        string `gorm:"column:email;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash"`
	LoyaltyStat  string `gorm:"column:loyalty_stat"`
}

func (passengerRow) TableName() string { return "passengers" }

type dependentRow struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	PassengerID int64  `gorm:"column:passenger_id;index"`
}

func (dependentRow) TableName() string { return "dependents" }

type staffRow struct {
	ID           int64  `gorm:"column:id;primaryKey"`
	Email        string `gorm:"column:email;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash"`
}

func (staffRow) TableName() string { return "staff" }

type reservationRow struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	TrainID     int64  `gorm:"column:train_id;uniqueIndex:idx_no_double_booking"`
	Date        string `gorm:"column:date;uniqueIndex:idx_no_double_booking"`
	FromStation int64  `gorm:"column:from_station"`
	ToStation   int64  `gorm:"column:to_station"`
	CoachType   string `gorm:"column:coach_type;uniqueIndex:idx_no_double_booking"`
	SeatNumber  string `gorm:"column:seat_number;uniqueIndex:idx_no_double_booking"`
	PassengerID int64  `gorm:"column:passenger_id;index"`
	PaymentID   *int64 `gorm:"column:payment_id"`
	Paid        bool   `gorm:"column:paid"`
}

func (reservationRow) TableName() string { return "reservations" }

type paymentRow struct {
	ID     int64     `gorm:"column:id;primaryKey"`
	ResID  int64     `gorm:"column:res_id;index"`
	Date   time.Time `gorm:"column:date"`
	VAT    float64   `gorm:"column:vat"`
	Amount float64   `gorm:"column:amount"`
	Status string    `gorm:"column:payment_status"`
}

func (paymentRow) TableName() string { return "payments" }

type waitingListRow struct {
	ReservationID int64 `gorm:"column:reservation_id;primaryKey;autoIncrement:false"`
}

func (waitingListRow) TableName() string { return "waiting_list" }

type staffAssignmentRow struct {
	TrainID  int64 `gorm:"column:train_id;primaryKey;autoIncrement:false"`
	StaffID  int64 `gorm:"column:staff_id;primaryKey;autoIncrement:false"`
	RoleCode int   `gorm:"column:role_code"`
}

func (staffAssignmentRow) TableName() string { return "staff_assignments" }

type reminderLogRow struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	ReservationID int64     `gorm:"column:reservation_id;uniqueIndex:idx_reminder_once"`
	Kind          string    `gorm:"column:kind;uniqueIndex:idx_reminder_once"`
	SentAt        time.Time `gorm:"column:sent_at"`
}

func (reminderLogRow) TableName() string { return "reminder_logs" }

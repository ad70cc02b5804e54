package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// fixed per-train capacity used by the load factor report
const trainCapacity = 150

type ActiveTrain struct {
	TrainID     int64  `gorm:"column:id" json:"TrainID"`
	EnglishName string `gorm:"column:english_name" json:"English_name"`
}

type TrainStations struct {
	TrainID     int64  `json:"TrainID"`
	EnglishName string `json:"English_name"`
	Stations    string `json:"Stations"`
}

type PassengerReservation struct {
	ReservationID int64  `gorm:"column:id" json:"ReservationID"`
	Date          string `gorm:"column:date" json:"Date"`
	EnglishName   string `gorm:"column:english_name" json:"English_name"`
	FromName      string `gorm:"column:from_name" json:"FromName"`
	ToName        string `gorm:"column:to_name" json:"ToName"`
}

type WaitlistedLoyalty struct {
	Name        string `gorm:"column:name" json:"Name"`
	LoyaltyStat string `gorm:"column:loyalty_stat" json:"LoyaltyStat"`
	CoachType   string `gorm:"column:coach_type" json:"CoachType"`
}

type LoadFactor struct {
	TrainID           int64   `gorm:"column:train_id" json:"TrainID"`
	BookedSeats       int64   `gorm:"column:booked_seats" json:"BookedSeats"`
	TotalSeats        int64   `json:"TotalSeats"`
	AverageLoadFactor float64 `json:"AverageLoadFactor"`
}

type DependentTravel struct {
	DependentName string `gorm:"column:dependent_name" json:"DependentName"`
	PassengerName string `gorm:"column:passenger_name" json:"PassengerName"`
	Date          string `gorm:"column:date" json:"Date"`
	EnglishName   string `gorm:"column:english_name" json:"English_name"`
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// ActiveTrains lists trains with at least one reservation on the date.
func (r *ReportRepository) ActiveTrains(ctx context.Context, date string) ([]ActiveTrain, error) {
	q := `
SELECT DISTINCT t.id, t.english_name
FROM trains t
JOIN reservations res ON t.id = res.train_id
WHERE res.date = ?
`
	var rows []ActiveTrain
	if tx := r.db.WithContext(ctx).Raw(q, date).Scan(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// StationsForTrains returns, per train, its station names joined in stop
// order. Aggregation happens here rather than in SQL so the query stays
// portable across the supported drivers.
func (r *ReportRepository) StationsForTrains(ctx context.Context) ([]TrainStations, error) {
	q := `
SELECT t.id AS train_id, t.english_name, s.name AS station_name
FROM trains t
JOIN schedule_stops sc ON t.id = sc.train_id
JOIN stations s ON sc.station_id = s.id
ORDER BY t.id, sc.stop_sequence
`
	var rows []struct {
		TrainID     int64  `gorm:"column:train_id"`
		EnglishName string `gorm:"column:english_name"`
		StationName string `gorm:"column:station_name"`
	}
	if tx := r.db.WithContext(ctx).Raw(q).Scan(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]TrainStations, 0)
	for _, row := range rows {
		if n := len(out); n > 0 && out[n-1].TrainID == row.TrainID {
			out[n-1].Stations = strings.Join([]string{out[n-1].Stations, row.StationName}, ",")
			continue
		}
		out = append(out, TrainStations{
			TrainID:     row.TrainID,
			EnglishName: row.EnglishName,
			Stations:    row.StationName,
		})
	}
	return out, nil
}

// ReservationsByPassenger lists a passenger's reservations, optionally
// filtered to a single travel date.
func (r *ReportRepository) ReservationsByPassenger(ctx context.Context, passengerID int64, date string) ([]PassengerReservation, error) {
	q := `
SELECT res.id, res.date, t.english_name, sf.name AS from_name, st.name AS to_name
FROM reservations res
JOIN trains t ON res.train_id = t.id
JOIN stations sf ON res.from_station = sf.id
JOIN stations st ON res.to_station = st.id
WHERE res.passenger_id = ?
`
	args := []interface{}{passengerID}
	if date != "" {
		q += " AND res.date = ?"
		args = append(args, date)
	}

	var rows []PassengerReservation
	if tx := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// WaitlistedLoyaltyByTrain lists Silver/Gold passengers still waitlisted on
// the train.
func (r *ReportRepository) WaitlistedLoyaltyByTrain(ctx context.Context, trainID int64) ([]WaitlistedLoyalty, error) {
	q := `
SELECT p.name, p.loyalty_stat, res.coach_type
FROM waiting_list w
JOIN reservations res ON w.reservation_id = res.id
JOIN passengers p ON res.passenger_id = p.id
WHERE res.train_id = ? AND p.loyalty_stat IN ('Silver', 'Gold')
`
	var rows []WaitlistedLoyalty
	if tx := r.db.WithContext(ctx).Raw(q, trainID).Scan(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// LoadFactorByDate reports booked seats per train against the fixed capacity.
func (r *ReportRepository) LoadFactorByDate(ctx context.Context, date string) ([]LoadFactor, error) {
	q := `
SELECT res.train_id, COUNT(*) AS booked_seats
FROM reservations res
WHERE res.date = ?
GROUP BY res.train_id
`
	var rows []LoadFactor
	if tx := r.db.WithContext(ctx).Raw(q, date).Scan(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	for i := range rows {
		rows[i].TotalSeats = trainCapacity
		rows[i].AverageLoadFactor = float64(rows[i].BookedSeats) / trainCapacity * 100
	}
	return rows, nil
}

// DependentsByDate lists dependents whose passenger travels on the date.
func (r *ReportRepository) DependentsByDate(ctx context.Context, date string) ([]DependentTravel, error) {
	q := `
SELECT d.name AS dependent_name, p.name AS passenger_name, res.date, t.english_name
FROM dependents d
JOIN passengers p ON d.passenger_id = p.id
JOIN reservations res ON p.id = res.passenger_id
JOIN trains t ON res.train_id = t.id
WHERE res.date = ?
`
	var rows []DependentTravel
	if tx := r.db.WithContext(ctx).Raw(q, date).Scan(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

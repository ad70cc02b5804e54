package repository

import (
	"context"
	"time"

	"github.com/alled0/databaseProject/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UnpaidReservation struct {
	ReservationID int64  `gorm:"column:id"`
	Email         string `gorm:"column:email"`
	Name          string `gorm:"column:name"`
}

type DepartureCandidate struct {
	ReservationID int64  `gorm:"column:id"`
	Email         string `gorm:"column:email"`
	Name          string `gorm:"column:name"`
	EnglishName   string `gorm:"column:english_name"`
	ArabicName    string `gorm:"column:arabic_name"`
	Date          string `gorm:"column:date"`
	DepartureTime string `gorm:"column:departure_time"`
}

type ReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) UnpaidReservations(ctx context.Context) ([]UnpaidReservation, error) {
	q := `
SELECT res.id, p.email, p.name
FROM reservations res
JOIN passengers p ON res.passenger_id = p.id
WHERE res.paid = ?
`
	var rows []UnpaidReservation
	if tx := r.db.WithContext(ctx).Raw(q, false).Scan(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// DepartureCandidates returns reservations with the departure time of their
// boarding stop. The time-window filter happens in the service so it works
// identically on every driver.
func (r *ReminderRepository) DepartureCandidates(ctx context.Context) ([]DepartureCandidate, error) {
	q := `
SELECT res.id, p.email, p.name, t.english_name, t.arabic_name, res.date, s.departure_time
FROM reservations res
JOIN passengers p ON res.passenger_id = p.id
JOIN trains t ON res.train_id = t.id
JOIN schedule_stops s ON res.train_id = s.train_id AND res.from_station = s.station_id
`
	var rows []DepartureCandidate
	if tx := r.db.WithContext(ctx).Raw(q).Scan(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *ReminderRepository) WasSent(ctx context.Context, reservationID int64, kind domain.ReminderKind) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&reminderLogRow{}).
		Where("reservation_id = ? AND kind = ?", reservationID, string(kind)).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *ReminderRepository) MarkSent(ctx context.Context, reservationID int64, kind domain.ReminderKind) error {
	row := reminderLogRow{
		ReservationID: reservationID,
		Kind:          string(kind),
		SentAt:        time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "reservation_id"}, {Name: "kind"}},
		DoNothing: true,
	}).Create(&row).Error
}

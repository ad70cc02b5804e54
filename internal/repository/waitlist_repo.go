package repository

import (
	"context"
	"errors"

	"github.com/alled0/databaseProject/internal/domain"

	"gorm.io/gorm"
)

// ErrTripDetailsMissing is returned when a waitlist entry was removed but the
// enrichment lookup found no rows; the surrounding transaction rolls back so
// the entry is restored.
var ErrTripDetailsMissing = errors.New("failed to fetch train details")

type WaitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) *WaitlistRepository {
	return &WaitlistRepository{db: db}
}

func (r *WaitlistRepository) Add(ctx context.Context, reservationID int64) error {
	return r.db.WithContext(ctx).Create(&waitingListRow{ReservationID: reservationID}).Error
}

func (r *WaitlistRepository) Exists(ctx context.Context, reservationID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&waitingListRow{}).
		Where("reservation_id = ?", reservationID).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// PromoteFirstByPassenger removes the passenger's first waitlist entry and
// returns the enriched trip details, all in one transaction. The delete and
// the detail fetch commit or roll back together, so a failed fetch restores
// the waitlist entry. Returns gorm.ErrRecordNotFound when the passenger has
// no waitlisted reservation.
func (r *WaitlistRepository) PromoteFirstByPassenger(ctx context.Context, passengerID int64) (*domain.TripDetails, error) {
	var details domain.TripDetails

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry struct {
			ReservationID int64 `gorm:"column:reservation_id"`
		}
		find := tx.Raw(`
SELECT wl.reservation_id
FROM waiting_list wl
JOIN reservations r ON wl.reservation_id = r.id
WHERE r.passenger_id = ?
LIMIT 1
`, passengerID).Scan(&entry)
		if find.Error != nil {
			return find.Error
		}
		if find.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("reservation_id = ?", entry.ReservationID).
			Delete(&waitingListRow{}).Error; err != nil {
			return err
		}

		var row struct {
			TrainID     int64  `gorm:"column:train_id"`
			EnglishName string `gorm:"column:english_name"`
			ArabicName  string `gorm:"column:arabic_name"`
			Date        string `gorm:"column:date"`
			FromStation string `gorm:"column:from_station"`
			ToStation   string `gorm:"column:to_station"`
		}
		fetch := tx.Raw(`
SELECT t.id AS train_id, t.english_name, t.arabic_name,
       s.departure_time AS date,
       sf.name AS from_station, st.name AS to_station
FROM reservations r
JOIN trains t ON r.train_id = t.id
JOIN schedule_stops s ON r.train_id = s.train_id AND r.from_station = s.station_id
JOIN stations sf ON r.from_station = sf.id
JOIN stations st ON r.to_station = st.id
WHERE r.id = ?
LIMIT 1
`, entry.ReservationID).Scan(&row)
		if fetch.Error != nil {
			return fetch.Error
		}
		if fetch.RowsAffected == 0 {
			return ErrTripDetailsMissing
		}

		details = domain.TripDetails{
			TrainID:     row.TrainID,
			EnglishName: row.EnglishName,
			ArabicName:  row.ArabicName,
			Date:        row.Date,
			FromStation: row.FromStation,
			ToStation:   row.ToStation,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &details, nil
}

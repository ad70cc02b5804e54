package repository

import (
	"context"
	"time"

	"github.com/alled0/databaseProject/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func toDomainReservation(m reservationRow) *domain.Reservation {
	return &domain.Reservation{
		ID:          m.ID,
		TrainID:     m.TrainID,
		Date:        m.Date,
		FromStation: m.FromStation,
		ToStation:   m.ToStation,
		CoachType:   domain.CoachType(m.CoachType),
		SeatNumber:  m.SeatNumber,
		PassengerID: m.PassengerID,
		PaymentID:   m.PaymentID,
		Paid:        m.Paid,
	}
}

func toReservationRow(res *domain.Reservation) reservationRow {
	return reservationRow{
		ID:          res.ID,
		TrainID:     res.TrainID,
		Date:        res.Date,
		FromStation: res.FromStation,
		ToStation:   res.ToStation,
		CoachType:   string(res.CoachType),
		SeatNumber:  res.SeatNumber,
		PassengerID: res.PassengerID,
		PaymentID:   res.PaymentID,
		Paid:        res.Paid,
	}
}

// CreateWithPayment inserts the reservation, its pending payment row and the
// back-reference in a single transaction. Either all three are visible after
// commit or none are. On success res.ID and res.PaymentID are populated.
func (r *ReservationRepository) CreateWithPayment(ctx context.Context, res *domain.Reservation, vat, amount float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := toReservationRow(res)
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		pay := paymentRow{
			ResID:  row.ID,
			Date:   time.Now(),
			VAT:    vat,
			Amount: amount,
			Status: string(domain.PaymentPending),
		}
		if err := tx.Create(&pay).Error; err != nil {
			return err
		}

		if err := tx.Model(&reservationRow{}).
			Where("id = ?", row.ID).
			Update("payment_id", pay.ID).Error; err != nil {
			return err
		}

		res.ID = row.ID
		res.PaymentID = &pay.ID
		return nil
	})
}

// Create inserts a bare reservation with no payment row. Used by the admin
// Add path, which intentionally skips payment creation.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	row := toReservationRow(res)
	if tx := r.db.WithContext(ctx).Create(&row); tx.Error != nil {
		return tx.Error
	}
	res.ID = row.ID
	return nil
}

// MarkPaid sets the paid flag and reports how many rows matched. Re-running
// after success matches again: completion is "set state", not a one-shot
// event.
func (r *ReservationRepository) MarkPaid(ctx context.Context, reservationID int64) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&reservationRow{}).
		Where("id = ?", reservationID).
		Update("paid", true)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// UpdateFields applies a partial update; columns absent from updates keep
// their stored values. Returns the number of matched rows.
func (r *ReservationRepository) UpdateFields(ctx context.Context, reservationID int64, updates map[string]interface{}) (int64, error) {
	if len(updates) == 0 {
		var cnt int64
		tx := r.db.WithContext(ctx).Model(&reservationRow{}).Where("id = ?", reservationID).Count(&cnt)
		if tx.Error != nil {
			return 0, tx.Error
		}
		return cnt, nil
	}

	tx := r.db.WithContext(ctx).Model(&reservationRow{}).
		Where("id = ?", reservationID).
		Updates(updates)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// DeleteCascade removes the payment rows referencing the reservation and then
// the reservation itself, atomically. The payment delete is unconditional;
// the returned count reflects only the reservation delete.
func (r *ReservationRepository) DeleteCascade(ctx context.Context, reservationID int64) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("res_id = ?", reservationID).Delete(&paymentRow{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", reservationID).Delete(&reservationRow{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationRow
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

// PaymentsByReservation lists payment rows referencing a reservation.
func (r *ReservationRepository) PaymentsByReservation(ctx context.Context, reservationID int64) ([]domain.Payment, error) {
	var rows []paymentRow
	tx := r.db.WithContext(ctx).Where("res_id = ?", reservationID).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Payment{
			ID:     m.ID,
			ResID:  m.ResID,
			Date:   m.Date,
			VAT:    m.VAT,
			Amount: m.Amount,
			Status: domain.PaymentStatus(m.Status),
		})
	}
	return out, nil
}

// CreatePayment inserts a standalone payment row (the addPayment endpoint).
func (r *ReservationRepository) CreatePayment(ctx context.Context, p *domain.Payment) error {
	row := paymentRow{
		ResID:  p.ResID,
		Date:   time.Now(),
		VAT:    p.VAT,
		Amount: p.Amount,
		Status: string(p.Status),
	}
	if tx := r.db.WithContext(ctx).Create(&row); tx.Error != nil {
		return tx.Error
	}
	p.ID = row.ID
	p.Date = row.Date
	return nil
}

package repository

import (
	"context"

	"github.com/alled0/databaseProject/internal/domain"

	"gorm.io/gorm"
)

type PassengerRepository struct {
	db *gorm.DB
}

func NewPassengerRepository(db *gorm.DB) *PassengerRepository {
	return &PassengerRepository{db: db}
}

func toDomainPassenger(m passengerRow) *domain.Passenger {
	return &domain.Passenger{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		LoyaltyStat:  domain.LoyaltyStatus(m.LoyaltyStat),
	}
}

// FindIDByEmail resolves a passenger by their natural lookup key. Returns
// gorm.ErrRecordNotFound when the email is not registered.
func (r *PassengerRepository) FindIDByEmail(ctx context.Context, email string) (int64, error) {
	var m passengerRow
	tx := r.db.WithContext(ctx).Select("id").Where("email = ?", email).First(&m)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return m.ID, nil
}

func (r *PassengerRepository) FindByEmail(ctx context.Context, email string) (*domain.Passenger, error) {
	var m passengerRow
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPassenger(m), nil
}

func (r *PassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	var m passengerRow
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPassenger(m), nil
}

func (r *PassengerRepository) ListDependents(ctx context.Context, passengerID int64) ([]domain.Dependent, error) {
	var rows []dependentRow
	tx := r.db.WithContext(ctx).Where("passenger_id = ?", passengerID).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Dependent, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Dependent{ID: m.ID, Name: m.Name, PassengerID: m.PassengerID})
	}
	return out, nil
}

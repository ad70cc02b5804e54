package reservation

import (
	"context"

	"github.com/alled0/databaseProject/internal/domain"
)

// ReservationRepository defines the persistence operations the service needs.
type ReservationRepository interface {
	CreateWithPayment(ctx context.Context, res *domain.Reservation, vat, amount float64) error
	Create(ctx context.Context, res *domain.Reservation) error
	MarkPaid(ctx context.Context, reservationID int64) (int64, error)
	UpdateFields(ctx context.Context, reservationID int64, updates map[string]interface{}) (int64, error)
	DeleteCascade(ctx context.Context, reservationID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	PaymentsByReservation(ctx context.Context, reservationID int64) ([]domain.Payment, error)
	CreatePayment(ctx context.Context, p *domain.Payment) error
}

// CatalogRepository answers reference-data existence checks.
type CatalogRepository interface {
	TrainExists(ctx context.Context, trainID int64) (bool, error)
	StationExists(ctx context.Context, stationID int64) (bool, error)
}

// PassengerResolver maps a login email to a passenger id.
type PassengerResolver interface {
	FindIDByEmail(ctx context.Context, email string) (int64, error)
}

package profile

import (
	"context"

	"github.com/alled0/databaseProject/internal/domain"
)

type PassengerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	ListDependents(ctx context.Context, passengerID int64) ([]domain.Dependent, error)
}

package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/alled0/databaseProject/internal/domain"
)

var ErrNotFound = errors.New("passenger not found")

type Service struct {
	passengers PassengerRepository
}

func NewService(passengers PassengerRepository) *Service {
	return &Service{passengers: passengers}
}

// Get returns the passenger's own record with their dependents.
func (s *Service) Get(ctx context.Context, passengerID int64) (*domain.Passenger, []domain.Dependent, error) {
	p, err := s.passengers.GetByID(ctx, passengerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	deps, err := s.passengers.ListDependents(ctx, passengerID)
	if err != nil {
		return nil, nil, err
	}
	return p, deps, nil
}

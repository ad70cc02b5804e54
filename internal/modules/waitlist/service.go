package waitlist

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/alled0/databaseProject/internal/domain"
)

type Service struct {
	waitlist WaitlistRepository
}

func NewService(waitlist WaitlistRepository) *Service {
	return &Service{waitlist: waitlist}
}

// PromotePassenger removes the passenger's first waitlist entry and returns
// the trip details of the promoted reservation.
func (s *Service) PromotePassenger(ctx context.Context, passengerID int64) (*domain.TripDetails, error) {
	if passengerID == 0 {
		return nil, ErrMissingPassengerID
	}

	details, err := s.waitlist.PromoteFirstByPassenger(ctx, passengerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInWaitlist
		}
		return nil, err
	}
	return details, nil
}

package waitlist

import (
	"context"

	"github.com/alled0/databaseProject/internal/domain"
)

// WaitlistRepository promotes waitlisted reservations.
type WaitlistRepository interface {
	PromoteFirstByPassenger(ctx context.Context, passengerID int64) (*domain.TripDetails, error)
}

package reminder

import (
	"context"

	"github.com/alled0/databaseProject/internal/domain"
	"github.com/alled0/databaseProject/internal/repository"
)

type ReminderRepository interface {
	UnpaidReservations(ctx context.Context) ([]repository.UnpaidReservation, error)
	DepartureCandidates(ctx context.Context) ([]repository.DepartureCandidate, error)
	WasSent(ctx context.Context, reservationID int64, kind domain.ReminderKind) (bool, error)
	MarkSent(ctx context.Context, reservationID int64, kind domain.ReminderKind) error
}

// Mailer delivers a plain-text email.
type Mailer interface {
	Send(to, subject, body string) error
}

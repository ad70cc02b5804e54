package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/alled0/databaseProject/internal/domain"
)

// Departure reminders target trips leaving in about three hours.
const (
	departureWindowFrom = 3 * time.Hour
	departureWindowTo   = 4 * time.Hour
)

type Service struct {
	reminders ReminderRepository
	mailer    Mailer
	now       func() time.Time
}

func NewService(reminders ReminderRepository, mailer Mailer) *Service {
	return &Service{
		reminders: reminders,
		mailer:    mailer,
		now:       time.Now,
	}
}

// SendUnpaidReminders emails every passenger holding an unpaid reservation.
// It sends on every run; the nightly schedule is the rate limit.
func (s *Service) SendUnpaidReminders(ctx context.Context) (int, error) {
	rows, err := s.reminders.UnpaidReservations(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, row := range rows {
		body := fmt.Sprintf(
			"Dear %s,\n\nYour reservation #%d is still unpaid. Please complete the payment to keep your seat.\n",
			row.Name, row.ReservationID,
		)
		if err := s.mailer.Send(row.Email, "Payment reminder", body); err != nil {
			log.Printf("reminder_send_failed kind=unpaid reservation_id=%d error=%q", row.ReservationID, err)
			continue
		}
		sent++
	}
	return sent, nil
}

// SendDepartureReminders emails passengers whose train leaves in roughly
// three hours. Each reservation gets at most one departure reminder; the
// sent-state is persisted so a restart does not repeat it.
func (s *Service) SendDepartureReminders(ctx context.Context) (int, error) {
	rows, err := s.reminders.DepartureCandidates(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	sent := 0
	for _, row := range rows {
		departure, err := time.ParseInLocation("2006-01-02 15:04:05", row.Date+" "+row.DepartureTime, now.Location())
		if err != nil {
			log.Printf("reminder_bad_departure reservation_id=%d date=%q time=%q", row.ReservationID, row.Date, row.DepartureTime)
			continue
		}

		until := departure.Sub(now)
		if until < departureWindowFrom || until >= departureWindowTo {
			continue
		}

		already, err := s.reminders.WasSent(ctx, row.ReservationID, domain.ReminderDeparture)
		if err != nil {
			return sent, err
		}
		if already {
			continue
		}

		body := fmt.Sprintf(
			"Dear %s,\n\nYour train %s departs at %s on %s. Please arrive at the station early.\n",
			row.Name, row.EnglishName, row.DepartureTime, row.Date,
		)
		if err := s.mailer.Send(row.Email, "Departure reminder", body); err != nil {
			log.Printf("reminder_send_failed kind=departure reservation_id=%d error=%q", row.ReservationID, err)
			continue
		}

		// Mark only after the send succeeded so a failed delivery retries
		// on the next run.
		if err := s.reminders.MarkSent(ctx, row.ReservationID, domain.ReminderDeparture); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

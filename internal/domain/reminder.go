package domain

import "time"

type ReminderKind string

const (
	ReminderUnpaid    ReminderKind = "unpaid"
	ReminderDeparture ReminderKind = "departure"
)

// ReminderLog records that a reminder email was sent for a reservation, so the
// de-dup survives process restarts.
type ReminderLog struct {
	ID            int64        `json:"id"`
	ReservationID int64        `json:"reservation_id"`
	Kind          ReminderKind `json:"kind"`
	SentAt        time.Time    `json:"sent_at"`
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/alled0/databaseProject/internal/domain"
)

func TestPromoteFirstByPassenger(t *testing.T) {
	db := setupDB(t)
	reservations := NewReservationRepository(db)
	waitlist := NewWaitlistRepository(db)
	ctx := context.Background()

	res := testReservation(2, "3C")
	require.NoError(t, reservations.CreateWithPayment(ctx, res, 15.00, 100.00))
	require.NoError(t, waitlist.Add(ctx, res.ID))

	details, err := waitlist.PromoteFirstByPassenger(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, int64(1), details.TrainID)
	require.Equal(t, "HHR100", details.EnglishName)
	require.Equal(t, "Riyadh", details.FromStation)
	require.Equal(t, "Makkah", details.ToStation)
	require.Equal(t, "08:00:00", details.Date)

	// The entry is gone, the reservation itself stays.
	onList, err := waitlist.Exists(ctx, res.ID)
	require.NoError(t, err)
	require.False(t, onList)

	_, err = reservations.GetByID(ctx, res.ID)
	require.NoError(t, err)
}

func TestPromoteFirstByPassenger_NotWaitlisted(t *testing.T) {
	db := setupDB(t)
	waitlist := NewWaitlistRepository(db)

	_, err := waitlist.PromoteFirstByPassenger(context.Background(), 2)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPromoteFirstByPassenger_FailedFetchRestoresEntry(t *testing.T) {
	db := setupDB(t)
	reservations := NewReservationRepository(db)
	waitlist := NewWaitlistRepository(db)
	ctx := context.Background()

	// Board at a station the train has no scheduled stop for, so the
	// enrichment join finds nothing.
	res := &domain.Reservation{
		TrainID:     1,
		Date:        "2026-09-15",
		FromStation: 2,
		ToStation:   3,
		CoachType:   domain.CoachEconomy,
		SeatNumber:  "9F",
		PassengerID: 2,
	}
	require.NoError(t, reservations.Create(ctx, res))
	require.NoError(t, db.Exec("DELETE FROM schedule_stops WHERE train_id = 1 AND station_id = 2").Error)
	require.NoError(t, waitlist.Add(ctx, res.ID))

	_, err := waitlist.PromoteFirstByPassenger(ctx, 2)
	require.ErrorIs(t, err, ErrTripDetailsMissing)

	// The rollback put the entry back.
	onList, err := waitlist.Exists(ctx, res.ID)
	require.NoError(t, err)
	require.True(t, onList)
}

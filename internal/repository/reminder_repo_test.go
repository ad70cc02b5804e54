package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alled0/databaseProject/internal/domain"
)

func TestReminderMarkSent_Once(t *testing.T) {
	db := setupDB(t)
	reservations := NewReservationRepository(db)
	repo := NewReminderRepository(db)
	ctx := context.Background()

	res := testReservation(1, "12A")
	require.NoError(t, reservations.CreateWithPayment(ctx, res, 15.00, 100.00))

	sent, err := repo.WasSent(ctx, res.ID, domain.ReminderDeparture)
	require.NoError(t, err)
	require.False(t, sent)

	require.NoError(t, repo.MarkSent(ctx, res.ID, domain.ReminderDeparture))
	// Marking twice is a no-op, not an error.
	require.NoError(t, repo.MarkSent(ctx, res.ID, domain.ReminderDeparture))

	sent, err = repo.WasSent(ctx, res.ID, domain.ReminderDeparture)
	require.NoError(t, err)
	require.True(t, sent)

	// Each kind tracks its own sent state.
	sent, err = repo.WasSent(ctx, res.ID, domain.ReminderUnpaid)
	require.NoError(t, err)
	require.False(t, sent)
}

func TestUnpaidReservations(t *testing.T) {
	db := setupDB(t)
	reservations := NewReservationRepository(db)
	repo := NewReminderRepository(db)
	ctx := context.Background()

	unpaid := testReservation(1, "12A")
	require.NoError(t, reservations.CreateWithPayment(ctx, unpaid, 15.00, 100.00))

	paid := testReservation(2, "12B")
	require.NoError(t, reservations.CreateWithPayment(ctx, paid, 15.00, 100.00))
	_, err := reservations.MarkPaid(ctx, paid.ID)
	require.NoError(t, err)

	rows, err := repo.UnpaidReservations(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, unpaid.ID, rows[0].ReservationID)
	require.Equal(t, "ahmed@example.com", rows[0].Email)
}

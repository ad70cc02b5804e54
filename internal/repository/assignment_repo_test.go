package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alled0/databaseProject/internal/domain"
)

func TestAssignmentUpsert(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Exec("INSERT INTO staff (id, email, password_hash) VALUES (1, 'driver@railway.sa', 'x')").Error)

	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, domain.StaffAssignment{TrainID: 1, StaffID: 1, RoleCode: 1}))
	require.NoError(t, repo.Upsert(ctx, domain.StaffAssignment{TrainID: 1, StaffID: 1, RoleCode: 2}))

	crew, err := repo.ListByTrain(ctx, 1)
	require.NoError(t, err)
	require.Len(t, crew, 1)
	require.Equal(t, 2, crew[0].RoleCode)
}

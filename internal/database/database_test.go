package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnect_Sqlite(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	// The driver must be registered and usable, not just openable.
	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	require.Equal(t, 1, one)
}

func TestConnect_MemorySingleConnection(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

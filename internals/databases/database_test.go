package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reach_backend/internals/configs"
	database "reach_backend/internals/databases"
	"reach_backend/internals/databases/dbtest"
)

func TestTunePool(t *testing.T) {
	db := dbtest.Open(t)

	require.NoError(t, database.TunePool(db, configs.DatabaseConfig{MaxOpenConns: 7, MaxIdleConns: 3}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 7, sqlDB.Stats().MaxOpenConnections)
	assert.NoError(t, database.Ping(context.Background(), db))
}

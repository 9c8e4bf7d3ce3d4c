package tables

import (
	"testing"

	"mesa-pos/config"
	"mesa-pos/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))
	config.DB = db
	require.NoError(t, Seed())
}

func TestSeedProvisionsFullPool(t *testing.T) {
	setupDB(t)

	all, err := List()
	require.NoError(t, err)
	require.Len(t, all, models.TableCount)

	for i, table := range all {
		assert.Equal(t, i+1, table.Number)
		assert.Equal(t, models.StatusFree, table.Status)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	setupDB(t)

	require.NoError(t, SetStatus(7, models.StatusOccupied))
	require.NoError(t, Seed())

	all, err := List()
	require.NoError(t, err)
	assert.Len(t, all, models.TableCount)

	// Re-seeding must not reset live statuses
	status, err := GetStatus(7)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOccupied, status)
}

func TestGetStatusUnknownTable(t *testing.T) {
	setupDB(t)

	_, err := GetStatus(models.TableCount + 1)
	assert.ErrorIs(t, err, ErrTableNotFound)

	_, err = GetStatus(0)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestSetStatus(t *testing.T) {
	setupDB(t)

	require.NoError(t, SetStatus(5, models.StatusOccupied))
	status, err := GetStatus(5)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOccupied, status)

	assert.ErrorIs(t, SetStatus(200, models.StatusFree), ErrTableNotFound)
}

func TestStatusMap(t *testing.T) {
	setupDB(t)

	require.NoError(t, SetStatus(12, models.StatusClosing))

	m, err := StatusMap()
	require.NoError(t, err)
	assert.Len(t, m, models.TableCount)
	assert.Equal(t, models.StatusClosing, m[12])
	assert.Equal(t, models.StatusFree, m[1])
}

package orders

import (
	"testing"

	"mesa-pos/config"
	"mesa-pos/models"
	"mesa-pos/tables"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
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
	require.NoError(t, tables.Seed())
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddOrderOccupiesTable(t *testing.T) {
	setupDB(t)

	order, err := Add(5, "Coffee", 2, price("3.50"), "")
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, 5, order.TableNumber)

	status, err := tables.GetStatus(5)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOccupied, status)

	list, err := ForTable(5)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Coffee", list[0].Product)
	assert.Equal(t, 2, list[0].Quantity)
	assert.True(t, list[0].Price.Equal(price("3.50")))
}

func TestAddOrderToClosingTable(t *testing.T) {
	setupDB(t)

	_, err := Add(5, "Coffee", 1, price("3.50"), "")
	require.NoError(t, err)
	require.NoError(t, tables.SetStatus(5, models.StatusClosing))

	// A late order reopens the table
	_, err = Add(5, "Cake", 1, price("6.00"), "no sugar")
	require.NoError(t, err)

	status, err := tables.GetStatus(5)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOccupied, status)
}

func TestAddOrderUnknownTable(t *testing.T) {
	setupDB(t)

	_, err := Add(101, "Coffee", 1, price("3.50"), "")
	assert.ErrorIs(t, err, tables.ErrTableNotFound)

	// Nothing was written
	all, err := All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestForTableEmpty(t *testing.T) {
	setupDB(t)

	list, err := ForTable(9)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestForTableInsertionOrder(t *testing.T) {
	setupDB(t)

	first, err := Add(3, "Soup", 1, price("8.00"), "")
	require.NoError(t, err)
	second, err := Add(3, "Bread", 2, price("2.50"), "")
	require.NoError(t, err)

	list, err := ForTable(3)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestUpdateQuantity(t *testing.T) {
	setupDB(t)

	order, err := Add(5, "Coffee", 2, price("3.50"), "")
	require.NoError(t, err)

	updated, err := UpdateQuantity(order.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)
	assert.Equal(t, "Coffee", updated.Product)

	_, err = UpdateQuantity(order.ID+1000, 1)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestRemove(t *testing.T) {
	setupDB(t)

	order, err := Add(5, "Coffee", 1, price("3.50"), "")
	require.NoError(t, err)

	require.NoError(t, Remove(order.ID))
	list, err := ForTable(5)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Deleting twice is reported, not swallowed
	assert.ErrorIs(t, Remove(order.ID), ErrOrderNotFound)
}

func TestClearTable(t *testing.T) {
	setupDB(t)

	_, err := Add(5, "Coffee", 2, price("3.50"), "")
	require.NoError(t, err)
	_, err = Add(5, "Juice", 1, price("4.00"), "")
	require.NoError(t, err)

	require.NoError(t, ClearTable(5))

	list, err := ForTable(5)
	require.NoError(t, err)
	assert.Empty(t, list)

	status, err := tables.GetStatus(5)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFree, status)
}

func TestClearTableUnknownTable(t *testing.T) {
	setupDB(t)

	assert.ErrorIs(t, ClearTable(300), tables.ErrTableNotFound)
}

func TestClearTableLeavesOtherTablesAlone(t *testing.T) {
	setupDB(t)

	_, err := Add(5, "Coffee", 1, price("3.50"), "")
	require.NoError(t, err)
	_, err = Add(6, "Tea", 1, price("2.00"), "")
	require.NoError(t, err)

	require.NoError(t, ClearTable(5))

	list, err := ForTable(6)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	status, err := tables.GetStatus(6)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOccupied, status)
}

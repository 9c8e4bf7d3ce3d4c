// Package orders is the ledger of open line items per table. Every write
// that touches both the ledger and a table's status runs in a single
// transaction.
package orders

import (
	"errors"

	"mesa-pos/config"
	"mesa-pos/models"
	"mesa-pos/tables"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// ForTable returns the open orders for a table in insertion order.
// A table with no orders yields an empty slice, not an error.
func ForTable(number int) ([]models.Order, error) {
	var list []models.Order
	if err := config.DB.Where("table_number = ?", number).Order("id asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// All returns every open order across all tables in insertion order.
func All() ([]models.Order, error) {
	var list []models.Order
	if err := config.DB.Order("id asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Add persists a new line item and marks the table occupied, atomically.
// The table must exist in the provisioned pool.
func Add(tableNumber int, product string, quantity int, price decimal.Decimal, note string) (models.Order, error) {
	order := models.Order{
		TableNumber: tableNumber,
		Product:     product,
		Quantity:    quantity,
		Price:       price,
		Note:        note,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, "number = ?", tableNumber).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tables.ErrTableNotFound
			}
			return err
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tables.SetStatusTx(tx, tableNumber, models.StatusOccupied)
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// UpdateQuantity changes the quantity of one line item.
func UpdateQuantity(orderID uint, quantity int) (models.Order, error) {
	res := config.DB.Model(&models.Order{}).Where("id = ?", orderID).Update("quantity", quantity)
	if res.Error != nil {
		return models.Order{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Order{}, ErrOrderNotFound
	}
	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// Remove deletes one line item. Unknown ids are reported as not found
// rather than silently accepted.
func Remove(orderID uint) error {
	res := config.DB.Delete(&models.Order{}, orderID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// ClearTable deletes every open order for a table and frees it, as one
// atomic unit. Used by the payment flow.
func ClearTable(number int) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("table_number = ?", number).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return tables.SetStatusTx(tx, number, models.StatusFree)
	})
}

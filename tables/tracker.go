// Package tables owns the fixed pool of restaurant tables and their
// occupancy status. The pool is provisioned once at startup (numbers
// 1..100) and never grows or shrinks afterwards.
package tables

import (
	"errors"

	"mesa-pos/config"
	"mesa-pos/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTableNotFound = errors.New("table not found")

// Seed inserts the table pool, skipping numbers that already exist, so it
// is safe to call on every startup.
func Seed() error {
	for n := 1; n <= models.TableCount; n++ {
		table := models.Table{Number: n, Status: models.StatusFree}
		if err := config.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&table).Error; err != nil {
			return err
		}
	}
	return nil
}

// List returns every table ordered by number ascending.
func List() ([]models.Table, error) {
	var all []models.Table
	if err := config.DB.Order("number asc").Find(&all).Error; err != nil {
		return nil, err
	}
	return all, nil
}

// StatusMap returns the table pool as a number → status mapping.
func StatusMap() (map[int]models.TableStatus, error) {
	all, err := List()
	if err != nil {
		return nil, err
	}
	m := make(map[int]models.TableStatus, len(all))
	for _, t := range all {
		m[t.Number] = t.Status
	}
	return m, nil
}

// GetStatus returns the current status of one table.
func GetStatus(number int) (models.TableStatus, error) {
	var table models.Table
	if err := config.DB.First(&table, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrTableNotFound
		}
		return "", err
	}
	return table.Status, nil
}

// SetStatus transitions a table unconditionally. Callers are responsible
// for checking the transition against the state machine first.
func SetStatus(number int, status models.TableStatus) error {
	return SetStatusTx(config.DB, number, status)
}

// SetStatusTx is SetStatus running on a caller-supplied transaction, used
// by the order ledger and the settlement engine to keep status changes in
// the same atomic unit as their ledger writes.
func SetStatusTx(db *gorm.DB, number int, status models.TableStatus) error {
	res := db.Model(&models.Table{}).Where("number = ?", number).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTableNotFound
	}
	return nil
}

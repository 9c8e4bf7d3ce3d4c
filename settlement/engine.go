// Package settlement computes and commits the end-of-day closeout:
// one immutable report over every open order, then a clean slate for
// the next business day.
package settlement

import (
	"errors"
	"time"

	"mesa-pos/config"
	"mesa-pos/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNothingToSettle = errors.New("no orders to settle")

// serviceRate is the fixed 10% surcharge applied to the gross total.
var serviceRate = decimal.RequireFromString("0.10")

// CloseDay settles the whole restaurant: it aggregates all open orders
// into a DailyReport, deletes every order and frees every table. The
// report write and the purge run in one transaction.
func CloseDay() (models.DailyReport, error) {
	var report models.DailyReport

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var open []models.Order
		if err := tx.Order("id asc").Find(&open).Error; err != nil {
			return err
		}
		if len(open) == 0 {
			return ErrNothingToSettle
		}

		gross := decimal.Zero
		for _, o := range open {
			gross = gross.Add(o.LineTotal())
		}
		gross = gross.Round(2)
		charge := gross.Mul(serviceRate).Round(2)

		now := time.Now()
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		report = models.DailyReport{
			ReportDate:    day,
			GrossTotal:    gross,
			ServiceCharge: charge,
			FinalTotal:    gross.Add(charge),
		}
		if err := tx.Create(&report).Error; err != nil {
			return err
		}

		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := session.Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return session.Model(&models.Table{}).Update("status", models.StatusFree).Error
	})
	if err != nil {
		return models.DailyReport{}, err
	}
	return report, nil
}

// Reports returns every historical settlement record, newest first.
func Reports() ([]models.DailyReport, error) {
	var all []models.DailyReport
	if err := config.DB.Order("report_date desc, id desc").Find(&all).Error; err != nil {
		return nil, err
	}
	return all, nil
}

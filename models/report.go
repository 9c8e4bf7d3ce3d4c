package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReport is one end-of-day settlement record. Rows are immutable once
// written: FinalTotal == GrossTotal + ServiceCharge and
// ServiceCharge == round(GrossTotal * 0.10, 2) hold for every row.
type DailyReport struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	ReportDate    time.Time       `json:"report_date" gorm:"type:date;not null"`
	GrossTotal    decimal.Decimal `json:"gross_total" gorm:"type:decimal(12,2);not null"`
	ServiceCharge decimal.Decimal `json:"service_charge" gorm:"type:decimal(12,2);not null"`
	FinalTotal    decimal.Decimal `json:"final_total" gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time       `json:"created_at"`
}

package models

import "github.com/shopspring/decimal"

// Order is one line item billed against a table. Price is the unit price,
// stored fixed-point with 2 fractional digits.
type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	TableNumber int             `json:"table_number" gorm:"not null;index"`
	Table       Table           `json:"-" gorm:"foreignKey:TableNumber;references:Number"`
	Product     string          `json:"product" gorm:"not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Note        string          `json:"note"`
}

// LineTotal is price × quantity in exact decimal arithmetic.
func (o Order) LineTotal() decimal.Decimal {
	return o.Price.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

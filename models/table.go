package models

// TableStatus represents the occupancy state of a table
type TableStatus string

const (
	StatusFree     TableStatus = "free"
	StatusOccupied TableStatus = "occupied"
	StatusClosing  TableStatus = "closing"
)

// TableCount is the size of the pre-provisioned table pool (numbers 1..100)
const TableCount = 100

// Table is one physical seating unit. The pool is seeded once at startup
// and never resized; only the status column is ever mutated.
type Table struct {
	Number int         `json:"number" gorm:"primaryKey;autoIncrement:false"`
	Status TableStatus `json:"status" gorm:"not null;default:'free'"`
}

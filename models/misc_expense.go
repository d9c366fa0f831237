package models

import "time"

// MiscExpense is an ad hoc cost entry outside the menu, dated by day.
// Append-only: the API exposes no edit or delete for it.
type MiscExpense struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	Date   time.Time `gorm:"type:date;not null" json:"date"`
	Amount float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"amount"`
	Note   string    `gorm:"type:text" json:"note"`
}

// TableName keeps the legacy table name.
func (MiscExpense) TableName() string {
	return "miscellaneous_expense"
}

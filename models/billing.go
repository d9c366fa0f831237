package models

// Billing records one monthly invoice total. Month is a free-text label
// ("2025-05"); repeated entries for the same month accumulate as separate
// rows rather than overwrite.
type Billing struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Month       string  `gorm:"type:varchar(20)" json:"month"`
	TotalAmount float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
}

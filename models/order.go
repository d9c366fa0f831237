package models

import "time"

// Order is immutable after creation. TotalRevenue/TotalCost are snapshots of
// the menu prices at order time and do not follow later menu edits.
// CreatedAt is nullable in the schema so the column can be added to legacy
// tables and backfilled.
type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	TotalRevenue float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_revenue"`
	TotalCost    float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_cost"`
	OrderItems   []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
}

// Profit is derived, never stored.
func (o *Order) Profit() float64 {
	return o.TotalRevenue - o.TotalCost
}

package models

// OrderItem links an order to one selected menu item. A menu item picked
// twice in the same order shows up as two rows; there is no quantity column.
// MenuID carries no foreign key constraint because the menu-delete cascade is
// done in the application so it holds even with enforcement disabled.
type OrderItem struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	OrderID uint  `gorm:"not null;index" json:"order_id"`
	Order   Order `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuID  uint  `gorm:"not null;index" json:"menu_id"`
}

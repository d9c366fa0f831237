package models

type Menu struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"type:varchar(255)" json:"name"`
	Price float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"price"`
	Cost  float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"cost"`
}

// TableName keeps the legacy singular table name.
func (Menu) TableName() string {
	return "menu"
}

package models

// Order represents a customer order in the system.
// CustomerID is not declared as a foreign key: referential integrity is left
// to the storage engine.
type Order struct {
	OrderID    uint `gorm:"primaryKey;column:order_id" json:"order_id"`
	CustomerID int  `gorm:"not null;column:customer_id" json:"customer_id"`
	Date       Date `gorm:"not null" json:"date"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

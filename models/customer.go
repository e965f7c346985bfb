package models

// Customer represents a customer row in the system
type Customer struct {
	CustomerID uint   `gorm:"primaryKey;column:customer_id" json:"customer_id"`
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"not null" json:"email"`
	Phone      string `gorm:"not null" json:"phone"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "Customer"
}

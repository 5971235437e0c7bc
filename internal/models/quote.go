package models

import "time"

// Quote is a customer quote request for a product sold via the quote
// flow instead of direct checkout.
type Quote struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ProductID     uint      `gorm:"not null;index" json:"product_id"`
	CustomerName  string    `gorm:"not null" json:"customer_name"`
	CustomerEmail string    `gorm:"not null" json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	Message       string    `gorm:"type:text" json:"message"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (Quote) TableName() string {
	return "quotes"
}

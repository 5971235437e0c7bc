package models

import "time"

// Order is the checkout result table. Status values live in
// constants.OrderStatuses.
type Order struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Total     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total"`
	Status    string    `gorm:"not null;index" json:"status"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}

package models

import "time"

// CartItem is one user+product line in the cart.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}

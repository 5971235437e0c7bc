package models

// OrderItem is one product line of an order. Price is the unit price
// captured at checkout time.
type OrderItem struct {
	ID        uint  `gorm:"primarykey" json:"id"`
	OrderID   uint  `gorm:"not null;index" json:"order_id"`
	ProductID uint  `gorm:"not null;index" json:"product_id"`
	Quantity  int   `gorm:"not null" json:"quantity"`
	Price     Money `gorm:"type:decimal(20,2);not null;default:0" json:"price"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}

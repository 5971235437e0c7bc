package models

import "time"

// Product is the catalog product table.
type Product struct {
	ID               uint        `gorm:"primarykey" json:"id"`
	Title            string      `gorm:"not null;index" json:"title"`
	Description      string      `gorm:"type:text" json:"description"`
	Price            Money       `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	OriginalPrice    *Money      `gorm:"type:decimal(20,2)" json:"original_price"`
	Discount         int         `gorm:"default:0" json:"discount"`                   // percent off shown on the card
	Installments     int         `gorm:"default:0" json:"installments"`               // 0 disables installment display
	Image            string      `gorm:"type:varchar(500)" json:"image"`              // cover image
	Images           StringArray `gorm:"type:json" json:"images"`                     // gallery
	FreeShipping     bool        `gorm:"default:false;index" json:"free_shipping"`
	Rating           *float64    `json:"rating"`                                      // mean of reviews, 1 decimal, nil until reviewed
	ReviewsCount     int         `gorm:"default:0" json:"reviews_count"`
	Sold             int         `gorm:"default:0;index" json:"sold"`
	CategoryID       uint        `gorm:"not null;index" json:"category_id"`
	Condition        string      `gorm:"type:varchar(30)" json:"condition"`
	Brand            string      `gorm:"index" json:"brand"`
	Stock            int         `gorm:"default:0" json:"stock"`
	SellerName       string      `json:"seller_name"`
	SellerReputation string      `json:"seller_reputation"`
	SellerLocation   string      `json:"seller_location"`
	Specs            SpecList    `gorm:"type:json" json:"specs"`
	ActionType       string      `gorm:"type:varchar(20);not null;default:'buy'" json:"action_type"` // buy / whatsapp / quote
	WhatsappNumber   string      `gorm:"type:varchar(30)" json:"whatsapp_number"`
	DisplayOverrides BoolMap     `gorm:"type:json" json:"display_overrides"` // NULL means follow global settings
	CreatedAt        time.Time   `gorm:"index" json:"created_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

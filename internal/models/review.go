package models

import "time"

// Review is one user rating for a product. The product's Rating and
// ReviewsCount columns are recomputed whenever a review is written or
// removed.
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (Review) TableName() string {
	return "reviews"
}

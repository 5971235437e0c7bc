package models

import "time"

// ProductView is the append-only view tracking table feeding the
// also-viewed recommendations.
type ProductView struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	SessionID string    `gorm:"not null;index" json:"session_id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	ViewedAt  time.Time `gorm:"index" json:"viewed_at"`
}

// TableName sets the table name.
func (ProductView) TableName() string {
	return "product_views"
}

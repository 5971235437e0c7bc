package models

import "time"

// Category is the product category table. Categories form a tree via
// ParentID; a NULL parent marks a root.
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Icon      string    `gorm:"type:varchar(500)" json:"icon"`
	ParentID  *uint     `gorm:"index" json:"parent_id"`
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}

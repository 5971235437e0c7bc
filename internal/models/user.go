package models

import "time"

// User is the storefront customer table.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}

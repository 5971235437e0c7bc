package models

import "time"

// Admin is the back-office account table.
type Admin struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         string     `gorm:"type:varchar(20);not null;default:'admin';index" json:"role"` // admin / super_admin
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (Admin) TableName() string {
	return "admins"
}

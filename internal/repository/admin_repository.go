package repository

import (
	"errors"
	"time"

	"github.com/mercadoclone/api/internal/models"

	"gorm.io/gorm"
)

// AdminRepository is the back-office account data access interface.
type AdminRepository interface {
	List() ([]models.Admin, error)
	GetByID(id uint) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
	Create(admin *models.Admin) error
	Delete(id uint) error
	CountByEmail(email string) (int64, error)
	TouchLastLogin(id uint) error
}

// GormAdminRepository is the GORM implementation.
type GormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates an admin repository.
func NewAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// List returns every admin account.
func (r *GormAdminRepository) List() ([]models.Admin, error) {
	var admins []models.Admin
	if err := r.db.Order("id ASC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

// GetByID fetches one admin, nil when missing.
func (r *GormAdminRepository) GetByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// GetByEmail fetches one admin by email, nil when missing.
func (r *GormAdminRepository) GetByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// Create inserts an admin.
func (r *GormAdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// Delete removes an admin.
func (r *GormAdminRepository) Delete(id uint) error {
	return r.db.Delete(&models.Admin{}, id).Error
}

// CountByEmail counts admins holding email.
func (r *GormAdminRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TouchLastLogin stamps the login time.
func (r *GormAdminRepository) TouchLastLogin(id uint) error {
	now := time.Now()
	return r.db.Model(&models.Admin{}).Where("id = ?", id).Update("last_login_at", &now).Error
}

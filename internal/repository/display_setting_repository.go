package repository

import (
	"errors"

	"github.com/mercadoclone/api/internal/models"

	"gorm.io/gorm"
)

// DisplaySettingRepository is the display settings data access interface.
type DisplaySettingRepository interface {
	List() ([]models.DisplaySetting, error)
	GetByKey(key string) (*models.DisplaySetting, error)
	UpdateValue(key string, value bool) error
}

// GormDisplaySettingRepository is the GORM implementation.
type GormDisplaySettingRepository struct {
	db *gorm.DB
}

// NewDisplaySettingRepository creates a display setting repository.
func NewDisplaySettingRepository(db *gorm.DB) *GormDisplaySettingRepository {
	return &GormDisplaySettingRepository{db: db}
}

// List returns every global flag in display order.
func (r *GormDisplaySettingRepository) List() ([]models.DisplaySetting, error) {
	var settings []models.DisplaySetting
	if err := r.db.Order("sort_order ASC, id ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// GetByKey fetches one flag, nil when missing.
func (r *GormDisplaySettingRepository) GetByKey(key string) (*models.DisplaySetting, error) {
	var setting models.DisplaySetting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// UpdateValue sets one flag by key.
func (r *GormDisplaySettingRepository) UpdateValue(key string, value bool) error {
	return r.db.Model(&models.DisplaySetting{}).Where("key = ?", key).Update("value", value).Error
}

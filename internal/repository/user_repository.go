package repository

import (
	"errors"
	"strings"

	"github.com/mercadoclone/api/internal/models"

	"gorm.io/gorm"
)

// UserWithStats is one user row joined with order aggregates for the
// admin listing.
type UserWithStats struct {
	models.User
	OrdersCount int64   `json:"orders_count"`
	TotalSpent  float64 `json:"total_spent"`
}

// UserRepository is the customer data access interface.
type UserRepository interface {
	ListWithStats(filter UserListFilter) ([]UserWithStats, int64, error)
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Delete(id uint) error
	CountByEmail(email string) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) UserRepository
}

// GormUserRepository is the GORM implementation.
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormUserRepository) WithTx(tx *gorm.DB) UserRepository {
	if tx == nil {
		return r
	}
	return &GormUserRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormUserRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// ListWithStats returns users with their order counts and lifetime
// spend.
func (r *GormUserRepository) ListWithStats(filter UserListFilter) ([]UserWithStats, int64, error) {
	query := r.db.Model(&models.User{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []UserWithStats
	err := applyPagination(query, filter.Page, filter.PageSize).
		Select(`users.*,
			(SELECT COUNT(*) FROM orders WHERE orders.user_id = users.id) AS orders_count,
			COALESCE((SELECT SUM(total) FROM orders WHERE orders.user_id = users.id), 0) AS total_spent`).
		Order("users.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetByID fetches one user, nil when missing.
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail fetches one user by email, nil when missing.
func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a user.
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Delete removes a user.
func (r *GormUserRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

// CountByEmail counts users holding email.
func (r *GormUserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

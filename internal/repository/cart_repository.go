package repository

import (
	"errors"

	"github.com/mercadoclone/api/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface.
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartItem, error)
	GetByID(id uint) (*models.CartItem, error)
	GetByUserProduct(userID, productID uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(id uint, quantity int) error
	Delete(id uint) error
	ClearUser(userID uint) error
	DeleteByProduct(productID uint) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser returns the user's cart with products preloaded.
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches one cart item, nil when missing.
func (r *GormCartRepository) GetByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByUserProduct fetches the line for one user+product pair, nil
// when absent.
func (r *GormCartRepository) GetByUserProduct(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a cart item.
func (r *GormCartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateQuantity sets the quantity of one line.
func (r *GormCartRepository) UpdateQuantity(id uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity).Error
}

// Delete removes a cart item.
func (r *GormCartRepository) Delete(id uint) error {
	return r.db.Delete(&models.CartItem{}, id).Error
}

// ClearUser empties a user's cart.
func (r *GormCartRepository) ClearUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// DeleteByProduct removes a product from every cart.
func (r *GormCartRepository) DeleteByProduct(productID uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&models.CartItem{}).Error
}

package repository

import (
	"errors"
	"strings"

	"github.com/mercadoclone/api/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order data access interface.
type OrderRepository interface {
	List(filter OrderListFilter) ([]models.Order, int64, error)
	ListByUser(userID uint) ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id uint, status string) error
	DeleteByUser(userID uint) error
	DeleteItemsByProduct(productID uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List returns orders for the back office.
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"user_id IN (SELECT id FROM users WHERE name LIKE ? OR email LIKE ?) OR CAST(orders.id AS TEXT) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := applyPagination(query, filter.Page, filter.PageSize).
		Preload("Items").
		Preload("Items.Product").
		Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListByUser returns a user's orders, newest first.
func (r *GormOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID fetches one order with items and user, nil when missing.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").
		Preload("Items.Product").
		Preload("User").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Create inserts an order with its items.
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// UpdateStatus sets an order's status.
func (r *GormOrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

// DeleteByUser removes a user's orders with their items.
func (r *GormOrderRepository) DeleteByUser(userID uint) error {
	err := r.db.Where("order_id IN (SELECT id FROM orders WHERE user_id = ?)", userID).
		Delete(&models.OrderItem{}).Error
	if err != nil {
		return err
	}
	return r.db.Where("user_id = ?", userID).Delete(&models.Order{}).Error
}

// DeleteItemsByProduct removes every order line for a product.
func (r *GormOrderRepository) DeleteItemsByProduct(productID uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&models.OrderItem{}).Error
}

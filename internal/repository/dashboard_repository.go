package repository

import (
	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository aggregates back-office statistics. It carries no
// business rules, only counting queries.
type DashboardRepository interface {
	GetTotals() (DashboardTotalsRow, error)
	GetOrdersByStatus() ([]DashboardStatusCountRow, error)
	GetRecentOrders(limit int) ([]models.Order, error)
	GetTopSellers(limit int) ([]models.Product, error)
	GetLowStock(threshold, limit int) ([]models.Product, error)
	GetCategoryCounts() ([]DashboardCategoryCountRow, error)
}

// DashboardTotalsRow holds the headline totals.
type DashboardTotalsRow struct {
	Products int64
	Users    int64
	Orders   int64
	Revenue  float64
}

// DashboardStatusCountRow is one order-status bucket.
type DashboardStatusCountRow struct {
	Status string
	Count  int64
}

// DashboardCategoryCountRow is one category with its product count.
type DashboardCategoryCountRow struct {
	CategoryID uint
	Name       string
	Count      int64
}

// GormDashboardRepository is the GORM implementation.
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a dashboard repository.
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// GetTotals counts products, users and orders and sums revenue.
// Canceled orders do not count toward revenue.
func (r *GormDashboardRepository) GetTotals() (DashboardTotalsRow, error) {
	result := DashboardTotalsRow{}

	if err := r.db.Model(&models.Product{}).Count(&result.Products).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.User{}).Count(&result.Users).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Order{}).Count(&result.Orders).Error; err != nil {
		return result, err
	}
	err := r.db.Model(&models.Order{}).
		Where("status != ?", constants.OrderStatusCanceled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&result.Revenue).Error
	if err != nil {
		return result, err
	}
	return result, nil
}

// GetOrdersByStatus buckets orders per status.
func (r *GormDashboardRepository) GetOrdersByStatus() ([]DashboardStatusCountRow, error) {
	var rows []DashboardStatusCountRow
	err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetRecentOrders returns the newest orders with their users.
func (r *GormDashboardRepository) GetRecentOrders(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetTopSellers returns the best selling products.
func (r *GormDashboardRepository) GetTopSellers(limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("sold DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetLowStock returns the products lowest on stock at or below the
// threshold, regardless of how they are sold.
func (r *GormDashboardRepository) GetLowStock(threshold, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("stock <= ?", threshold).
		Order("stock ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetCategoryCounts returns every category with its product count.
func (r *GormDashboardRepository) GetCategoryCounts() ([]DashboardCategoryCountRow, error) {
	var rows []DashboardCategoryCountRow
	err := r.db.Model(&models.Category{}).
		Select("categories.id AS category_id, categories.name AS name, (SELECT COUNT(*) FROM products WHERE products.category_id = categories.id) AS count").
		Order("categories.sort_order ASC, categories.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

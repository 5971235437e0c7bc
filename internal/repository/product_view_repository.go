package repository

import (
	"github.com/mercadoclone/api/internal/models"

	"gorm.io/gorm"
)

// CoViewedRow is one co-view aggregation result.
type CoViewedRow struct {
	ProductID uint
	Views     int64
}

// ProductViewRepository is the view tracking data access interface.
type ProductViewRepository interface {
	Create(view *models.ProductView) error
	ListCoViewed(productID uint, limit int) ([]CoViewedRow, error)
	DeleteByProduct(productID uint) error
	WithTx(tx *gorm.DB) ProductViewRepository
}

// GormProductViewRepository is the GORM implementation.
type GormProductViewRepository struct {
	db *gorm.DB
}

// NewProductViewRepository creates a product view repository.
func NewProductViewRepository(db *gorm.DB) *GormProductViewRepository {
	return &GormProductViewRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormProductViewRepository) WithTx(tx *gorm.DB) ProductViewRepository {
	if tx == nil {
		return r
	}
	return &GormProductViewRepository{db: tx}
}

// Create appends one view event.
func (r *GormProductViewRepository) Create(view *models.ProductView) error {
	return r.db.Create(view).Error
}

// ListCoViewed groups the products seen by the sessions that also saw
// productID, most co-viewed first, ratings breaking ties.
func (r *GormProductViewRepository) ListCoViewed(productID uint, limit int) ([]CoViewedRow, error) {
	var rows []CoViewedRow
	err := r.db.Raw(`
		SELECT pv.product_id AS product_id, COUNT(*) AS views
		FROM product_views pv
		JOIN products p ON p.id = pv.product_id
		WHERE pv.session_id IN (
			SELECT DISTINCT session_id FROM product_views WHERE product_id = ?
		)
		AND pv.product_id != ?
		GROUP BY pv.product_id
		ORDER BY views DESC, MAX(p.rating) DESC
		LIMIT ?`, productID, productID, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteByProduct removes every view of a product.
func (r *GormProductViewRepository) DeleteByProduct(productID uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&models.ProductView{}).Error
}

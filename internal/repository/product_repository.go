package repository

import (
	"errors"
	"strings"

	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/models"

	"gorm.io/gorm"
)

// ProductRepository is the product data access interface.
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
	Create(product *models.Product) error
	UpdateColumns(id uint, values map[string]interface{}) error
	Delete(id uint) error
	ListRelated(product *models.Product, limit int) ([]models.Product, error)
	ListSuggested(product *models.Product, limit int) ([]models.Product, error)
	ListBestSellers(categoryID *uint, excludeIDs []uint, limit int) ([]models.Product, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository is the GORM implementation.
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List returns products matching the filter.
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.WithCategory {
		query = query.Preload("Category")
	}
	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if brand := strings.TrimSpace(filter.Brand); brand != "" {
		query = query.Where("brand = ?", brand)
	}
	if condition := strings.TrimSpace(filter.Condition); condition != "" {
		query = query.Where("condition = ?", condition)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.FreeShipping != nil {
		query = query.Where("free_shipping = ?", *filter.FreeShipping)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR brand LIKE ? OR description LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClauseFor(filter.Sort))
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = applyPagination(query, filter.Page, filter.PageSize)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func orderClauseFor(sort string) string {
	switch sort {
	case constants.SortPriceAsc:
		return "price ASC"
	case constants.SortPriceDesc:
		return "price DESC"
	case constants.SortRating:
		return "rating DESC"
	case constants.SortRelevance:
		return "sold DESC"
	default:
		return "id ASC"
	}
}

// GetByID fetches one product with its category, nil when missing.
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs fetches products by id, in no particular order.
func (r *GormProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts a product.
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// UpdateColumns writes exactly the given columns in one UPDATE.
func (r *GormProductRepository) UpdateColumns(id uint, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	return r.db.Model(&models.Product{}).Where("id = ?", id).Updates(values).Error
}

// Delete removes a product.
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// ListRelated returns the best sellers of the same category, source
// excluded.
func (r *GormProductRepository) ListRelated(product *models.Product, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("category_id = ? AND id != ?", product.CategoryID, product.ID).
		Order("sold DESC, rating DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListSuggested returns well rated products from other categories
// inside a price window around the source product.
func (r *GormProductRepository) ListSuggested(product *models.Product, limit int) ([]models.Product, error) {
	price, _ := product.Price.Float64()
	var products []models.Product
	err := r.db.Where("category_id != ? AND id != ?", product.CategoryID, product.ID).
		Where("price >= ? AND price <= ?", price*0.5, price*2.0).
		Order("rating DESC, sold DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListBestSellers returns top sold products, optionally scoped to one
// category, excluding the given ids.
func (r *GormProductRepository) ListBestSellers(categoryID *uint, excludeIDs []uint, limit int) ([]models.Product, error) {
	query := r.db.Model(&models.Product{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	var products []models.Product
	if err := query.Order("sold DESC, rating DESC").Limit(limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

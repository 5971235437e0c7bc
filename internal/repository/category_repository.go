package repository

import (
	"errors"

	"github.com/mercadoclone/api/internal/models"

	"gorm.io/gorm"
)

// CategoryWithCount is one category row joined with its product count.
type CategoryWithCount struct {
	models.Category
	ProductCount int64 `json:"product_count"`
}

// CategoryRepository is the category data access interface.
type CategoryRepository interface {
	List() ([]models.Category, error)
	ListWithProductCount() ([]CategoryWithCount, error)
	ListParents() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Create(category *models.Category) error
	UpdateColumns(id uint, values map[string]interface{}) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
	CountProducts(categoryID uint) (int64, error)
	CountChildren(categoryID uint) (int64, error)
}

// GormCategoryRepository is the GORM implementation.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository.
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List returns all categories in display order.
func (r *GormCategoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("sort_order ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListWithProductCount returns every category joined with its product
// count, in display order. This feeds the tree builder.
func (r *GormCategoryRepository) ListWithProductCount() ([]CategoryWithCount, error) {
	var rows []CategoryWithCount
	err := r.db.Model(&models.Category{}).
		Select("categories.*, (SELECT COUNT(*) FROM products WHERE products.category_id = categories.id) AS product_count").
		Order("categories.sort_order ASC, categories.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListParents returns root categories only.
func (r *GormCategoryRepository) ListParents() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("parent_id IS NULL").
		Order("sort_order ASC, id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID fetches one category, nil when missing.
func (r *GormCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Create inserts a category.
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// UpdateColumns writes exactly the given columns in one UPDATE.
func (r *GormCategoryRepository) UpdateColumns(id uint, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	return r.db.Model(&models.Category{}).Where("id = ?", id).Updates(values).Error
}

// Delete removes a category.
func (r *GormCategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// CountBySlug counts categories holding slug.
func (r *GormCategoryRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Category{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountProducts counts products attached to a category.
func (r *GormCategoryRepository) CountProducts(categoryID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountChildren counts direct subcategories.
func (r *GormCategoryRepository) CountChildren(categoryID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Where("parent_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

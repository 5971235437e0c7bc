package repository

import (
	"errors"

	"github.com/mercadoclone/api/internal/models"

	"gorm.io/gorm"
)

// ReviewAggregate is the per-product rating summary.
type ReviewAggregate struct {
	Count   int64
	Average float64
}

// ReviewRepository is the review data access interface.
type ReviewRepository interface {
	List(filter ReviewListFilter) ([]models.Review, int64, error)
	ListByProduct(productID uint) ([]models.Review, error)
	GetByID(id uint) (*models.Review, error)
	Create(review *models.Review) error
	Delete(id uint) error
	DeleteByProduct(productID uint) error
	DeleteByUser(userID uint) error
	CountByUserProduct(userID, productID uint) (int64, error)
	AggregateForProduct(productID uint) (ReviewAggregate, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ReviewRepository
}

// GormReviewRepository is the GORM implementation.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a review repository.
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormReviewRepository) WithTx(tx *gorm.DB) ReviewRepository {
	if tx == nil {
		return r
	}
	return &GormReviewRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormReviewRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List returns reviews for the back office.
func (r *GormReviewRepository) List(filter ReviewListFilter) ([]models.Review, int64, error) {
	query := r.db.Model(&models.Review{})
	if filter.ProductID > 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := applyPagination(query, filter.Page, filter.PageSize).
		Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// ListByProduct returns a product's reviews, newest first.
func (r *GormReviewRepository) ListByProduct(productID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetByID fetches one review, nil when missing.
func (r *GormReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// Create inserts a review.
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// Delete removes a review.
func (r *GormReviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.Review{}, id).Error
}

// DeleteByProduct removes every review of a product.
func (r *GormReviewRepository) DeleteByProduct(productID uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&models.Review{}).Error
}

// DeleteByUser removes every review by a user.
func (r *GormReviewRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Review{}).Error
}

// CountByUserProduct counts a user's reviews for one product.
func (r *GormReviewRepository) CountByUserProduct(userID, productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// AggregateForProduct computes the review count and mean rating.
func (r *GormReviewRepository) AggregateForProduct(productID uint) (ReviewAggregate, error) {
	var agg ReviewAggregate
	err := r.db.Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS average").
		Where("product_id = ?", productID).
		Scan(&agg).Error
	if err != nil {
		return ReviewAggregate{}, err
	}
	return agg, nil
}

package repository

import (
	"errors"
	"strings"

	"github.com/mercadoclone/api/internal/models"

	"gorm.io/gorm"
)

// QuoteRepository is the quote request data access interface.
type QuoteRepository interface {
	List(filter QuoteListFilter) ([]models.Quote, int64, error)
	GetByID(id uint) (*models.Quote, error)
	Create(quote *models.Quote) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
	DeleteByProduct(productID uint) error
	WithTx(tx *gorm.DB) QuoteRepository
}

// GormQuoteRepository is the GORM implementation.
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a quote repository.
func NewQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormQuoteRepository) WithTx(tx *gorm.DB) QuoteRepository {
	if tx == nil {
		return r
	}
	return &GormQuoteRepository{db: tx}
}

// List returns quote requests for the back office.
func (r *GormQuoteRepository) List(filter QuoteListFilter) ([]models.Quote, int64, error) {
	query := r.db.Model(&models.Quote{})
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quotes []models.Quote
	err := applyPagination(query, filter.Page, filter.PageSize).
		Preload("Product").
		Order("created_at DESC").
		Find(&quotes).Error
	if err != nil {
		return nil, 0, err
	}
	return quotes, total, nil
}

// GetByID fetches one quote, nil when missing.
func (r *GormQuoteRepository) GetByID(id uint) (*models.Quote, error) {
	var quote models.Quote
	if err := r.db.Preload("Product").First(&quote, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quote, nil
}

// Create inserts a quote request.
func (r *GormQuoteRepository) Create(quote *models.Quote) error {
	return r.db.Create(quote).Error
}

// UpdateStatus sets a quote's status.
func (r *GormQuoteRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Quote{}).Where("id = ?", id).Update("status", status).Error
}

// Delete removes a quote.
func (r *GormQuoteRepository) Delete(id uint) error {
	return r.db.Delete(&models.Quote{}, id).Error
}

// DeleteByProduct removes every quote for a product.
func (r *GormQuoteRepository) DeleteByProduct(productID uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&models.Quote{}).Error
}

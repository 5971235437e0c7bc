package service

import (
	"math"

	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"gorm.io/gorm"
)

// ReviewService holds the review rules. Every write recomputes the
// product's cached rating inside the same transaction.
type ReviewService struct {
	repo        repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService creates a review service.
func NewReviewService(repo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{repo: repo, productRepo: productRepo}
}

// CreateReviewInput carries a new review.
type CreateReviewInput struct {
	ProductID uint
	UserID    uint
	Rating    int
	Comment   string
}

// ListByProduct returns a product's reviews.
func (s *ReviewService) ListByProduct(productID uint) ([]models.Review, error) {
	return s.repo.ListByProduct(productID)
}

// List returns reviews for the back office.
func (s *ReviewService) List(filter repository.ReviewListFilter) ([]models.Review, int64, error) {
	return s.repo.List(filter)
}

// Create inserts a review and refreshes the product rating, both in
// one transaction.
func (s *ReviewService) Create(input CreateReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	existing, err := s.repo.CountByUserProduct(input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrAlreadyReviewed
	}

	review := models.Review{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	err = s.repo.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(&review); err != nil {
			return err
		}
		return s.recomputeRating(tx, input.ProductID)
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes a review and refreshes the product rating, both in
// one transaction.
func (s *ReviewService) Delete(id uint) error {
	review, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrNotFound
	}

	return s.repo.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(id); err != nil {
			return err
		}
		return s.recomputeRating(tx, review.ProductID)
	})
}

// recomputeRating writes the mean rating rounded to one decimal and
// the review count back onto the product. A product with no reviews
// left returns to the unrated state.
func (s *ReviewService) recomputeRating(tx *gorm.DB, productID uint) error {
	agg, err := s.repo.WithTx(tx).AggregateForProduct(productID)
	if err != nil {
		return err
	}

	values := map[string]interface{}{
		"reviews_count": agg.Count,
	}
	if agg.Count == 0 {
		values["rating"] = nil
	} else {
		values["rating"] = math.Round(agg.Average*10) / 10
	}
	return s.productRepo.WithTx(tx).UpdateColumns(productID, values)
}

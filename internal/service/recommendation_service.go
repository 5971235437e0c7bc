package service

import (
	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"
)

// RecommendationService resolves the three product recommendation
// strategies. Results are computed per request from live data.
type RecommendationService struct {
	productRepo repository.ProductRepository
	viewRepo    repository.ProductViewRepository
}

// NewRecommendationService creates a recommendation service.
func NewRecommendationService(productRepo repository.ProductRepository, viewRepo repository.ProductViewRepository) *RecommendationService {
	return &RecommendationService{productRepo: productRepo, viewRepo: viewRepo}
}

// Related returns the best sellers of the source product's category.
func (s *RecommendationService) Related(productID uint) ([]models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return s.productRepo.ListRelated(product, constants.RelatedLimit)
}

// Suggested returns well rated products from other categories priced
// between half and double the source price.
func (s *RecommendationService) Suggested(productID uint) ([]models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return s.productRepo.ListSuggested(product, constants.SuggestedLimit)
}

// AlsoViewed resolves products co-viewed by the sessions that viewed
// the source. When the co-view signal is thin, same-category best
// sellers fill the list, never duplicating the picks or the source.
func (s *RecommendationService) AlsoViewed(productID uint) ([]models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	coViewed, err := s.viewRepo.ListCoViewed(productID, constants.AlsoViewedLimit)
	if err != nil {
		return nil, err
	}

	orderedIDs := make([]uint, 0, len(coViewed))
	for _, row := range coViewed {
		orderedIDs = append(orderedIDs, row.ProductID)
	}

	fetched, err := s.productRepo.ListByIDs(orderedIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(fetched))
	for _, p := range fetched {
		byID[p.ID] = p
	}

	results := make([]models.Product, 0, constants.AlsoViewedLimit)
	for _, id := range orderedIDs {
		if p, ok := byID[id]; ok {
			results = append(results, p)
		}
	}

	if len(results) >= constants.AlsoViewedMinBefore {
		return results, nil
	}

	exclude := make([]uint, 0, len(results)+1)
	exclude = append(exclude, productID)
	for _, p := range results {
		exclude = append(exclude, p.ID)
	}
	fill, err := s.productRepo.ListBestSellers(&product.CategoryID, exclude, constants.AlsoViewedLimit-len(results))
	if err != nil {
		return nil, err
	}
	results = append(results, fill...)
	return results, nil
}

package service

import (
	"strings"

	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"
)

// QuoteService holds the quote request rules.
type QuoteService struct {
	repo        repository.QuoteRepository
	productRepo repository.ProductRepository
}

// NewQuoteService creates a quote service.
func NewQuoteService(repo repository.QuoteRepository, productRepo repository.ProductRepository) *QuoteService {
	return &QuoteService{repo: repo, productRepo: productRepo}
}

// CreateQuoteInput carries a new quote request.
type CreateQuoteInput struct {
	ProductID     uint
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Message       string
}

// Create registers a quote request against an existing product.
func (s *QuoteService) Create(input CreateQuoteInput) (*models.Quote, error) {
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	quote := models.Quote{
		ProductID:     input.ProductID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerEmail: strings.TrimSpace(input.CustomerEmail),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		Message:       input.Message,
		Status:        constants.QuoteStatusPending,
	}
	if err := s.repo.Create(&quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// List returns quote requests for the back office.
func (s *QuoteService) List(filter repository.QuoteListFilter) ([]models.Quote, int64, error) {
	return s.repo.List(filter)
}

// UpdateStatus moves a quote along its pipeline.
func (s *QuoteService) UpdateStatus(id uint, status string) (*models.Quote, error) {
	valid := false
	for _, known := range constants.QuoteStatuses {
		if status == known {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidStatus
	}

	quote, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, ErrNotFound
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	quote.Status = status
	return quote, nil
}

// Delete removes a quote request.
func (s *QuoteService) Delete(id uint) error {
	quote, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if quote == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

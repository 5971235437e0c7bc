package service

import (
	"strings"
	"time"

	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"gorm.io/gorm"
)

// ProductService holds the catalog business rules.
type ProductService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	reviewRepo   repository.ReviewRepository
	cartRepo     repository.CartRepository
	orderRepo    repository.OrderRepository
	quoteRepo    repository.QuoteRepository
	viewRepo     repository.ProductViewRepository
}

// NewProductService creates a product service.
func NewProductService(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	reviewRepo repository.ReviewRepository,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	quoteRepo repository.QuoteRepository,
	viewRepo repository.ProductViewRepository,
) *ProductService {
	return &ProductService{
		repo:         repo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		quoteRepo:    quoteRepo,
		viewRepo:     viewRepo,
	}
}

// CreateProductInput carries the fields of a new product.
type CreateProductInput struct {
	Title            string
	Description      string
	Price            models.Money
	OriginalPrice    *models.Money
	Discount         int
	Installments     int
	Image            string
	Images           []string
	FreeShipping     bool
	CategoryID       uint
	Condition        string
	Brand            string
	Stock            int
	SellerName       string
	SellerReputation string
	SellerLocation   string
	Specs            models.SpecList
	ActionType       string
	WhatsappNumber   string
}

// UpdateProductInput carries a partial product update. Nil fields are
// untouched, except DisplayOverrides: that column is written on every
// update, and a nil map clears it to NULL so the product follows the
// global settings again.
type UpdateProductInput struct {
	Title            *string
	Description      *string
	Price            *models.Money
	OriginalPrice    *models.Money
	Discount         *int
	Installments     *int
	Image            *string
	Images           *[]string
	FreeShipping     *bool
	CategoryID       *uint
	Condition        *string
	Brand            *string
	Stock            *int
	Sold             *int
	SellerName       *string
	SellerReputation *string
	SellerLocation   *string
	Specs            *models.SpecList
	ActionType       *string
	WhatsappNumber   *string
	DisplayOverrides models.BoolMap
}

// List returns products matching the filter.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.repo.List(filter)
}

// Get fetches one product with its category.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create inserts a product after validating its category and action
// type.
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	actionType := normalizeActionType(input.ActionType)
	if actionType == "" {
		return nil, ErrInvalidStatus
	}

	product := models.Product{
		Title:            input.Title,
		Description:      input.Description,
		Price:            input.Price,
		OriginalPrice:    input.OriginalPrice,
		Discount:         input.Discount,
		Installments:     input.Installments,
		Image:            input.Image,
		Images:           models.StringArray(input.Images),
		FreeShipping:     input.FreeShipping,
		CategoryID:       input.CategoryID,
		Condition:        input.Condition,
		Brand:            input.Brand,
		Stock:            input.Stock,
		SellerName:       input.SellerName,
		SellerReputation: input.SellerReputation,
		SellerLocation:   input.SellerLocation,
		Specs:            input.Specs,
		ActionType:       actionType,
		WhatsappNumber:   input.WhatsappNumber,
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

func normalizeActionType(actionType string) string {
	normalized := strings.ToLower(strings.TrimSpace(actionType))
	switch normalized {
	case "":
		return constants.ActionTypeBuy
	case constants.ActionTypeBuy, constants.ActionTypeWhatsapp, constants.ActionTypeQuote:
		return normalized
	default:
		return ""
	}
}

// AssembleUpdate converts a partial update input into the column set
// of a single UPDATE statement. Absent fields produce no column, with
// one exception: display_overrides is always part of the set, so a
// request that does not carry the key clears the column. An input
// naming no other column is rejected.
func AssembleUpdate(input UpdateProductInput) (map[string]interface{}, error) {
	values := map[string]interface{}{}
	if input.Title != nil {
		values["title"] = *input.Title
	}
	if input.Description != nil {
		values["description"] = *input.Description
	}
	if input.Price != nil {
		values["price"] = *input.Price
	}
	if input.OriginalPrice != nil {
		values["original_price"] = *input.OriginalPrice
	}
	if input.Discount != nil {
		values["discount"] = *input.Discount
	}
	if input.Installments != nil {
		values["installments"] = *input.Installments
	}
	if input.Image != nil {
		values["image"] = *input.Image
	}
	if input.Images != nil {
		values["images"] = models.StringArray(*input.Images)
	}
	if input.FreeShipping != nil {
		values["free_shipping"] = *input.FreeShipping
	}
	if input.CategoryID != nil {
		values["category_id"] = *input.CategoryID
	}
	if input.Condition != nil {
		values["condition"] = *input.Condition
	}
	if input.Brand != nil {
		values["brand"] = *input.Brand
	}
	if input.Stock != nil {
		values["stock"] = *input.Stock
	}
	if input.Sold != nil {
		values["sold"] = *input.Sold
	}
	if input.SellerName != nil {
		values["seller_name"] = *input.SellerName
	}
	if input.SellerReputation != nil {
		values["seller_reputation"] = *input.SellerReputation
	}
	if input.SellerLocation != nil {
		values["seller_location"] = *input.SellerLocation
	}
	if input.Specs != nil {
		values["specs"] = *input.Specs
	}
	if input.ActionType != nil {
		actionType := normalizeActionType(*input.ActionType)
		if actionType == "" {
			return nil, ErrInvalidStatus
		}
		values["action_type"] = actionType
	}
	if input.WhatsappNumber != nil {
		values["whatsapp_number"] = *input.WhatsappNumber
	}

	// display_overrides does not count toward the empty check; the
	// override-only write belongs to the dedicated endpoint.
	if len(values) == 0 {
		return nil, ErrNothingToUpdate
	}
	// BoolMap's Valuer turns a nil map into NULL.
	values["display_overrides"] = input.DisplayOverrides
	return values, nil
}

// Update applies a partial product update atomically: either every
// named column is written or none is.
func (s *ProductService) Update(id uint, input UpdateProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}

	values, err := AssembleUpdate(input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateColumns(id, values); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// UpdateDisplayOverrides replaces the product's whole override map.
// A nil map clears the column so the product follows the global
// settings again.
func (s *ProductService) UpdateDisplayOverrides(id uint, overrides models.BoolMap) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if err := s.repo.UpdateColumns(id, map[string]interface{}{"display_overrides": overrides}); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// Delete removes a product with everything referencing it, in one
// transaction.
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}

	return s.repo.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.WithTx(tx).DeleteByProduct(id); err != nil {
			return err
		}
		if err := s.cartRepo.WithTx(tx).DeleteByProduct(id); err != nil {
			return err
		}
		if err := s.viewRepo.WithTx(tx).DeleteByProduct(id); err != nil {
			return err
		}
		if err := s.orderRepo.WithTx(tx).DeleteItemsByProduct(id); err != nil {
			return err
		}
		if err := s.quoteRepo.WithTx(tx).DeleteByProduct(id); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Delete(id)
	})
}

// TrackView appends one view event for the also-viewed signal.
func (s *ProductService) TrackView(productID uint, sessionID string, userID *uint) error {
	product, err := s.repo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	view := models.ProductView{
		ProductID: productID,
		SessionID: sessionID,
		UserID:    userID,
		ViewedAt:  time.Now(),
	}
	return s.viewRepo.Create(&view)
}

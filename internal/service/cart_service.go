package service

import (
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"
)

// CartService holds the cart business rules. A user carries at most
// one line per product; adding again accumulates the quantity.
type CartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a cart service.
func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{repo: repo, productRepo: productRepo}
}

// List returns the user's cart with products.
func (s *CartService) List(userID uint) ([]models.CartItem, error) {
	return s.repo.ListByUser(userID)
}

// Add puts a product in the cart, merging with an existing line.
func (s *CartService) Add(userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	existing, err := s.repo.GetByUserProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		newQuantity := existing.Quantity + quantity
		if err := s.repo.UpdateQuantity(existing.ID, newQuantity); err != nil {
			return nil, err
		}
		existing.Quantity = newQuantity
		return existing, nil
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity sets the quantity of one of the user's lines. A
// quantity of zero or less removes the line and returns nil.
func (s *CartService) UpdateQuantity(userID, itemID uint, quantity int) (*models.CartItem, error) {
	item, err := s.repo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != userID {
		return nil, ErrNotFound
	}

	if quantity <= 0 {
		if err := s.repo.Delete(itemID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err := s.repo.UpdateQuantity(itemID, quantity); err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return item, nil
}

// Remove deletes one of the user's lines.
func (s *CartService) Remove(userID, itemID uint) error {
	item, err := s.repo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil || item.UserID != userID {
		return ErrNotFound
	}
	return s.repo.Delete(itemID)
}

// Clear empties the user's cart.
func (s *CartService) Clear(userID uint) error {
	return s.repo.ClearUser(userID)
}

package service

import (
	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService holds the checkout and order management rules.
type OrderService struct {
	repo        repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates an order service.
func NewOrderService(repo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository) *OrderService {
	return &OrderService{repo: repo, cartRepo: cartRepo, productRepo: productRepo}
}

// ListByUser returns the user's orders.
func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	return s.repo.ListByUser(userID)
}

// List returns orders for the back office.
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.repo.List(filter)
}

// Get fetches one order.
func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// Checkout converts the user's cart into an order. The order insert,
// its items and the cart clear commit as one transaction; a failure
// anywhere leaves the cart untouched.
func (s *OrderService) Checkout(userID uint) (*models.Order, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		price := item.Product.Price
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}
	if len(orderItems) == 0 {
		return nil, ErrCartEmpty
	}

	order := models.Order{
		UserID: userID,
		Total:  models.NewMoneyFromDecimal(total),
		Status: constants.OrderStatusProcessing,
		Items:  orderItems,
	}

	err = s.repo.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(&order); err != nil {
			return err
		}
		for _, item := range orderItems {
			sold := map[string]interface{}{"sold": gorm.Expr("sold + ?", item.Quantity)}
			if err := s.productRepo.WithTx(tx).UpdateColumns(item.ProductID, sold); err != nil {
				return err
			}
		}
		return s.cartRepo.WithTx(tx).ClearUser(userID)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(order.ID)
}

// UpdateStatus sets an order's status after validating it against the
// known set.
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	valid := false
	for _, known := range constants.OrderStatuses {
		if status == known {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidStatus
	}

	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

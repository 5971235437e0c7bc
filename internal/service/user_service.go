package service

import (
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"gorm.io/gorm"
)

// UserService holds the back-office customer management rules.
type UserService struct {
	repo       repository.UserRepository
	orderRepo  repository.OrderRepository
	reviewRepo repository.ReviewRepository
	cartRepo   repository.CartRepository
}

// NewUserService creates a user service.
func NewUserService(repo repository.UserRepository, orderRepo repository.OrderRepository, reviewRepo repository.ReviewRepository, cartRepo repository.CartRepository) *UserService {
	return &UserService{repo: repo, orderRepo: orderRepo, reviewRepo: reviewRepo, cartRepo: cartRepo}
}

// UserDetail is one customer with their order history.
type UserDetail struct {
	models.User
	Orders []models.Order `json:"orders"`
}

// List returns customers with order aggregates.
func (s *UserService) List(filter repository.UserListFilter) ([]repository.UserWithStats, int64, error) {
	return s.repo.ListWithStats(filter)
}

// Get fetches one customer with their orders.
func (s *UserService) Get(id uint) (*UserDetail, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	orders, err := s.orderRepo.ListByUser(id)
	if err != nil {
		return nil, err
	}
	return &UserDetail{User: *user, Orders: orders}, nil
}

// Delete removes a customer with their reviews, cart and orders in one
// transaction.
func (s *UserService) Delete(id uint) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	return s.repo.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.WithTx(tx).DeleteByUser(id); err != nil {
			return err
		}
		if err := s.cartRepo.WithTx(tx).ClearUser(id); err != nil {
			return err
		}
		if err := s.orderRepo.WithTx(tx).DeleteByUser(id); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Delete(id)
	})
}

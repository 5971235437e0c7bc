package service

import (
	"errors"
	"testing"

	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newOrderTestService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.User{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	svc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func TestOrderService_CheckoutEmptyCart(t *testing.T) {
	svc, _ := newOrderTestService(t)

	if _, err := svc.Checkout(1); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestOrderService_Checkout(t *testing.T) {
	svc, db := newOrderTestService(t)
	category := seedCategory(t, db, "Tecnologia", "tecnologia")

	user := models.User{Name: "Carlos", Email: "carlos@example.com", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	phone := models.Product{Title: "iPhone 15", Price: models.NewMoneyFromFloat(7999.90), CategoryID: category.ID, ActionType: "buy", Sold: 3}
	coffee := models.Product{Title: "Nespresso", Price: models.NewMoneyFromFloat(549.05), CategoryID: category.ID, ActionType: "buy"}
	for _, p := range []*models.Product{&phone, &coffee} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("seed product failed: %v", err)
		}
	}

	cart := []models.CartItem{
		{UserID: user.ID, ProductID: phone.ID, Quantity: 2},
		{UserID: user.ID, ProductID: coffee.ID, Quantity: 1},
	}
	for i := range cart {
		if err := db.Create(&cart[i]).Error; err != nil {
			t.Fatalf("seed cart item failed: %v", err)
		}
	}

	order, err := svc.Checkout(user.ID)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.Status != constants.OrderStatusProcessing {
		t.Fatalf("expected status %q, got %q", constants.OrderStatusProcessing, order.Status)
	}
	// 2 * 7999.90 + 549.05
	if order.Total.String() != "16548.85" {
		t.Fatalf("expected total 16548.85, got %s", order.Total.String())
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}

	var phoneAfter models.Product
	if err := db.First(&phoneAfter, phone.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if phoneAfter.Sold != 5 {
		t.Fatalf("expected sold 5 after checkout, got %d", phoneAfter.Sold)
	}

	var remaining int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&remaining).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("cart should be cleared, found %d items", remaining)
	}

	if _, err := svc.Checkout(user.ID); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("second checkout should find an empty cart, got %v", err)
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	svc, db := newOrderTestService(t)

	order := models.Order{UserID: 1, Total: models.NewMoneyFromFloat(100), Status: constants.OrderStatusProcessing}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}

	if _, err := svc.UpdateStatus(order.ID, "enviado"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	updated, err := svc.UpdateStatus(order.ID, constants.OrderStatusInTransit)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.OrderStatusInTransit {
		t.Fatalf("expected %q, got %q", constants.OrderStatusInTransit, updated.Status)
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if stored.Status != constants.OrderStatusInTransit {
		t.Fatalf("status not persisted: %q", stored.Status)
	}

	if _, err := svc.UpdateStatus(999, constants.OrderStatusDelivered); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

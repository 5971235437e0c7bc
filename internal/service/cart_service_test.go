package service

import (
	"errors"
	"testing"

	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newCartTestService(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	svc := NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func TestCartService_AddMergesLines(t *testing.T) {
	svc, db := newCartTestService(t)
	category := seedCategory(t, db, "Tecnologia", "tecnologia")

	product := models.Product{Title: "Mouse", Price: models.NewMoneyFromFloat(149.90), CategoryID: category.ID, ActionType: "buy"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}

	first, err := svc.Add(1, product.ID, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if first.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", first.Quantity)
	}

	merged, err := svc.Add(1, product.ID, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if merged.ID != first.ID {
		t.Fatal("adding the same product must merge into the existing line")
	}
	if merged.Quantity != 5 {
		t.Fatalf("expected quantity 5 after merge, got %d", merged.Quantity)
	}

	items, err := svc.List(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected a single line, got %d", len(items))
	}
	if items[0].Product == nil || items[0].Product.Title != "Mouse" {
		t.Fatal("cart listing should preload the product")
	}
}

func TestCartService_AddGuards(t *testing.T) {
	svc, db := newCartTestService(t)
	category := seedCategory(t, db, "Tecnologia", "tecnologia")

	product := models.Product{Title: "Teclado", Price: models.NewMoneyFromFloat(299), CategoryID: category.ID, ActionType: "buy"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}

	if _, err := svc.Add(1, product.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.Add(1, product.ID, -2); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.Add(1, 9999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartService_OwnershipChecks(t *testing.T) {
	svc, db := newCartTestService(t)
	category := seedCategory(t, db, "Tecnologia", "tecnologia")

	product := models.Product{Title: "Monitor", Price: models.NewMoneyFromFloat(1200), CategoryID: category.ID, ActionType: "buy"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}

	item, err := svc.Add(1, product.ID, 1)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := svc.UpdateQuantity(2, item.ID, 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other user's line must look missing, got %v", err)
	}
	if err := svc.Remove(2, item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other user's remove must look missing, got %v", err)
	}

	updated, err := svc.UpdateQuantity(1, item.ID, 3)
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if updated.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", updated.Quantity)
	}

	if err := svc.Remove(1, item.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	items, err := svc.List(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(items))
	}
}

func TestCartService_UpdateToZeroRemovesLine(t *testing.T) {
	svc, db := newCartTestService(t)
	category := seedCategory(t, db, "Tecnologia", "tecnologia")

	product := models.Product{Title: "Webcam", Price: models.NewMoneyFromFloat(450), CategoryID: category.ID, ActionType: "buy"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}

	item, err := svc.Add(1, product.ID, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	removed, err := svc.UpdateQuantity(1, item.ID, 0)
	if err != nil {
		t.Fatalf("update to zero failed: %v", err)
	}
	if removed != nil {
		t.Fatalf("zero quantity should remove the line, got %+v", removed)
	}
	items, err := svc.List(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(items))
	}

	if _, err := svc.UpdateQuantity(1, item.ID, -1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for the removed line, got %v", err)
	}
}

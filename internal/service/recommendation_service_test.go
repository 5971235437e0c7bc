package service

import (
	"errors"
	"testing"

	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newRecommendationTestService(t *testing.T) (*RecommendationService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.ProductView{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	svc := NewRecommendationService(
		repository.NewProductRepository(db),
		repository.NewProductViewRepository(db),
	)
	return svc, db
}

func seedRecProduct(t *testing.T, db *gorm.DB, title string, categoryID uint, price float64, sold int, rating float64) models.Product {
	t.Helper()
	product := models.Product{
		Title:      title,
		Price:      models.NewMoneyFromFloat(price),
		CategoryID: categoryID,
		Sold:       sold,
		ActionType: "buy",
	}
	if rating > 0 {
		product.Rating = &rating
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product %q failed: %v", title, err)
	}
	return product
}

func TestRecommendationService_Related(t *testing.T) {
	svc, db := newRecommendationTestService(t)
	tech := seedCategory(t, db, "Tecnologia", "tecnologia")
	home := seedCategory(t, db, "Casa", "casa")

	source := seedRecProduct(t, db, "Fonte", tech.ID, 1000, 5, 4.0)
	first := seedRecProduct(t, db, "Mais vendido", tech.ID, 900, 300, 4.5)
	second := seedRecProduct(t, db, "Segundo", tech.ID, 800, 120, 4.8)
	seedRecProduct(t, db, "Outra categoria", home.ID, 950, 999, 5.0)

	products, err := svc.Related(source.ID)
	if err != nil {
		t.Fatalf("related failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 related, got %d", len(products))
	}
	if products[0].ID != first.ID || products[1].ID != second.ID {
		t.Fatalf("related not ordered by sold: got %d, %d", products[0].ID, products[1].ID)
	}
	for _, p := range products {
		if p.ID == source.ID {
			t.Fatal("source product leaked into related")
		}
	}
}

func TestRecommendationService_SuggestedPriceWindow(t *testing.T) {
	svc, db := newRecommendationTestService(t)
	tech := seedCategory(t, db, "Tecnologia", "tecnologia")
	home := seedCategory(t, db, "Casa", "casa")

	source := seedRecProduct(t, db, "Fonte", tech.ID, 1000, 10, 4.0)
	inWindow := seedRecProduct(t, db, "Na janela", home.ID, 600, 10, 4.9)
	alsoIn := seedRecProduct(t, db, "Tambem na janela", home.ID, 1900, 10, 4.1)
	seedRecProduct(t, db, "Barato demais", home.ID, 100, 10, 5.0)
	seedRecProduct(t, db, "Caro demais", home.ID, 5000, 10, 5.0)
	seedRecProduct(t, db, "Mesma categoria", tech.ID, 1000, 10, 5.0)

	products, err := svc.Suggested(source.ID)
	if err != nil {
		t.Fatalf("suggested failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 suggested, got %d", len(products))
	}
	if products[0].ID != inWindow.ID || products[1].ID != alsoIn.ID {
		t.Fatalf("suggested not ordered by rating: got %d, %d", products[0].ID, products[1].ID)
	}
}

func TestRecommendationService_AlsoViewedBackfill(t *testing.T) {
	svc, db := newRecommendationTestService(t)
	tech := seedCategory(t, db, "Tecnologia", "tecnologia")

	source := seedRecProduct(t, db, "Fonte", tech.ID, 1000, 5, 4.0)
	coViewed := seedRecProduct(t, db, "Co-visto", tech.ID, 900, 1, 4.5)
	filler := make([]models.Product, 0, 8)
	for i := 0; i < 8; i++ {
		filler = append(filler, seedRecProduct(t, db, "Campeao", tech.ID, 500, 100-i, 4.0))
	}

	views := []models.ProductView{
		{ProductID: source.ID, SessionID: "s1"},
		{ProductID: coViewed.ID, SessionID: "s1"},
	}
	for i := range views {
		if err := db.Create(&views[i]).Error; err != nil {
			t.Fatalf("seed view failed: %v", err)
		}
	}

	products, err := svc.AlsoViewed(source.ID)
	if err != nil {
		t.Fatalf("also viewed failed: %v", err)
	}
	if len(products) != 8 {
		t.Fatalf("expected backfill to 8, got %d", len(products))
	}
	if products[0].ID != coViewed.ID {
		t.Fatalf("co-viewed product should come first, got %d", products[0].ID)
	}
	if products[1].ID != filler[0].ID {
		t.Fatalf("backfill should follow best sellers, got %d", products[1].ID)
	}
	seen := map[uint]bool{}
	for _, p := range products {
		if p.ID == source.ID {
			t.Fatal("source product leaked into also viewed")
		}
		if seen[p.ID] {
			t.Fatalf("duplicate product %d", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestRecommendationService_UnknownProduct(t *testing.T) {
	svc, _ := newRecommendationTestService(t)

	if _, err := svc.Related(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Suggested(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.AlsoViewed(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

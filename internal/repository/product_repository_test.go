package repository

import (
	"testing"

	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newProductTestRepo(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewProductRepository(db), db
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.Category, models.Category) {
	t.Helper()

	tech := models.Category{Name: "Tecnologia", Slug: "tecnologia"}
	fashion := models.Category{Name: "Moda", Slug: "moda"}
	for _, category := range []*models.Category{&tech, &fashion} {
		if err := db.Create(category).Error; err != nil {
			t.Fatalf("seed category failed: %v", err)
		}
	}

	products := []models.Product{
		{Title: "iPhone 15 Pro", Brand: "Apple", Price: models.NewMoneyFromFloat(10499), CategoryID: tech.ID, Condition: "Novo", FreeShipping: true, Sold: 120, ActionType: "buy"},
		{Title: "Galaxy S24", Brand: "Samsung", Price: models.NewMoneyFromFloat(6999), CategoryID: tech.ID, Condition: "Novo", FreeShipping: true, Sold: 340, ActionType: "buy"},
		{Title: "iPhone 12 usado", Brand: "Apple", Price: models.NewMoneyFromFloat(2400), CategoryID: tech.ID, Condition: "Usado", Sold: 15, ActionType: "buy"},
		{Title: "Tenis Air Max", Brand: "Nike", Price: models.NewMoneyFromFloat(799.90), CategoryID: fashion.ID, Condition: "Novo", FreeShipping: true, Sold: 560, ActionType: "buy"},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("seed product failed: %v", err)
		}
	}
	return tech, fashion
}

func TestProductRepository_ListFilters(t *testing.T) {
	repo, db := newProductTestRepo(t)
	tech, _ := seedCatalog(t, db)

	products, total, err := repo.List(ProductListFilter{CategoryID: tech.ID})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if total != 3 || len(products) != 3 {
		t.Fatalf("expected 3 tech products, got total=%d len=%d", total, len(products))
	}

	products, total, err = repo.List(ProductListFilter{Brand: "Apple"})
	if err != nil {
		t.Fatalf("list by brand failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 Apple products, got %d", total)
	}
	for _, p := range products {
		if p.Brand != "Apple" {
			t.Fatalf("brand filter leaked %q", p.Brand)
		}
	}

	_, total, err = repo.List(ProductListFilter{Condition: "Usado"})
	if err != nil {
		t.Fatalf("list by condition failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 used product, got %d", total)
	}

	min := 1000.0
	max := 8000.0
	_, total, err = repo.List(ProductListFilter{MinPrice: &min, MaxPrice: &max})
	if err != nil {
		t.Fatalf("list by price window failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 products between 1000 and 8000, got %d", total)
	}

	shipping := true
	_, total, err = repo.List(ProductListFilter{FreeShipping: &shipping})
	if err != nil {
		t.Fatalf("list by free shipping failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 free shipping products, got %d", total)
	}

	_, total, err = repo.List(ProductListFilter{Search: "iphone"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 matches for iphone, got %d", total)
	}
}

func TestProductRepository_ListSorts(t *testing.T) {
	repo, db := newProductTestRepo(t)
	seedCatalog(t, db)

	products, _, err := repo.List(ProductListFilter{Sort: constants.SortPriceAsc})
	if err != nil {
		t.Fatalf("sort price asc failed: %v", err)
	}
	for i := 1; i < len(products); i++ {
		if products[i].Price.LessThan(products[i-1].Price.Decimal) {
			t.Fatalf("price asc broken at %d", i)
		}
	}

	products, _, err = repo.List(ProductListFilter{Sort: constants.SortRelevance})
	if err != nil {
		t.Fatalf("sort relevance failed: %v", err)
	}
	for i := 1; i < len(products); i++ {
		if products[i].Sold > products[i-1].Sold {
			t.Fatalf("relevance sort broken at %d", i)
		}
	}
}

func TestProductRepository_ListPagination(t *testing.T) {
	repo, db := newProductTestRepo(t)
	seedCatalog(t, db)

	first, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 3})
	if err != nil {
		t.Fatalf("page 1 failed: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected total 4, got %d", total)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 rows on page 1, got %d", len(first))
	}

	second, _, err := repo.List(ProductListFilter{Page: 2, PageSize: 3})
	if err != nil {
		t.Fatalf("page 2 failed: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected 1 row on page 2, got %d", len(second))
	}

	// limit bypasses pagination for embedded listings
	limited, _, err := repo.List(ProductListFilter{Limit: 2, Page: 2, PageSize: 3})
	if err != nil {
		t.Fatalf("limited list failed: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 rows with limit, got %d", len(limited))
	}
}

func TestProductRepository_ListByIDs(t *testing.T) {
	repo, db := newProductTestRepo(t)
	seedCatalog(t, db)

	products, err := repo.ListByIDs(nil)
	if err != nil {
		t.Fatalf("empty id list failed: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected no rows for empty id list, got %d", len(products))
	}

	products, err = repo.ListByIDs([]uint{1, 3, 9999})
	if err != nil {
		t.Fatalf("list by ids failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(products))
	}
}

func TestProductRepository_UpdateColumns(t *testing.T) {
	repo, db := newProductTestRepo(t)
	seedCatalog(t, db)

	// empty map is a no-op, not an error
	if err := repo.UpdateColumns(1, nil); err != nil {
		t.Fatalf("empty update failed: %v", err)
	}

	if err := repo.UpdateColumns(1, map[string]interface{}{"stock": 42}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	var product models.Product
	if err := db.First(&product, 1).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if product.Stock != 42 {
		t.Fatalf("expected stock 42, got %d", product.Stock)
	}
}

package service

import (
	"errors"
	"testing"

	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newProductTestService(t *testing.T) (*ProductService, *gorm.DB) {
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
		&models.Review{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Quote{},
		&models.ProductView{},
	)
	if err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	svc := NewProductService(
		repository.NewProductRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewReviewRepository(db),
		repository.NewCartRepository(db),
		repository.NewOrderRepository(db),
		repository.NewQuoteRepository(db),
		repository.NewProductViewRepository(db),
	)
	return svc, db
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Slug: slug}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category failed: %v", err)
	}
	return category
}

func TestAssembleUpdate_OnlyNamedColumns(t *testing.T) {
	title := "iPhone 15 Pro Max"
	price := models.NewMoneyFromFloat(10499)
	values, err := AssembleUpdate(UpdateProductInput{Title: &title, Price: &price})
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("expected 3 columns, got %d: %v", len(values), values)
	}
	if values["title"] != title {
		t.Fatalf("title column wrong: %v", values["title"])
	}
	if _, ok := values["price"]; !ok {
		t.Fatal("price column missing")
	}
	overrides, ok := values["display_overrides"].(models.BoolMap)
	if !ok {
		t.Fatalf("display_overrides must be written on every update, got %T", values["display_overrides"])
	}
	if overrides != nil {
		t.Fatalf("absent overrides must clear the column, got %v", overrides)
	}
}

func TestAssembleUpdate_Empty(t *testing.T) {
	if _, err := AssembleUpdate(UpdateProductInput{}); !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestAssembleUpdate_ActionType(t *testing.T) {
	bad := "subscribe"
	if _, err := AssembleUpdate(UpdateProductInput{ActionType: &bad}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	mixed := "  WhatsApp "
	values, err := AssembleUpdate(UpdateProductInput{ActionType: &mixed})
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if values["action_type"] != "whatsapp" {
		t.Fatalf("expected normalized whatsapp, got %v", values["action_type"])
	}
}

func TestAssembleUpdate_DisplayOverrides(t *testing.T) {
	// overrides alone do not make a valid partial update
	overrides := models.BoolMap{"show_price": false}
	if _, err := AssembleUpdate(UpdateProductInput{DisplayOverrides: overrides}); !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}

	stock := 3
	values, err := AssembleUpdate(UpdateProductInput{Stock: &stock, DisplayOverrides: overrides})
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 columns, got %d: %v", len(values), values)
	}
	got, ok := values["display_overrides"].(models.BoolMap)
	if !ok {
		t.Fatalf("display_overrides has wrong type: %T", values["display_overrides"])
	}
	if got["show_price"] {
		t.Fatal("override value lost")
	}
}

func TestProductService_UpdatePartial(t *testing.T) {
	svc, db := newProductTestService(t)
	category := seedCategory(t, db, "Tecnologia", "tecnologia")

	created, err := svc.Create(CreateProductInput{
		Title:      "Notebook Gamer Acer Nitro 5",
		Price:      models.NewMoneyFromFloat(4299),
		CategoryID: category.ID,
		Brand:      "Acer",
		Stock:      10,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	price := models.NewMoneyFromFloat(3999.99)
	updated, err := svc.Update(created.ID, UpdateProductInput{Price: &price})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Price.String() != "3999.99" {
		t.Fatalf("expected price 3999.99, got %s", updated.Price.String())
	}
	if updated.Title != created.Title {
		t.Fatalf("title should be untouched, got %q", updated.Title)
	}
	if updated.Brand != "Acer" || updated.Stock != 10 {
		t.Fatalf("unrelated columns changed: brand=%q stock=%d", updated.Brand, updated.Stock)
	}
}

func TestProductService_UpdateUnknownCategory(t *testing.T) {
	svc, db := newProductTestService(t)
	category := seedCategory(t, db, "Tecnologia", "tecnologia")

	created, err := svc.Create(CreateProductInput{
		Title:      "Echo Dot",
		Price:      models.NewMoneyFromFloat(349),
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	ghost := uint(9999)
	if _, err := svc.Update(created.ID, UpdateProductInput{CategoryID: &ghost}); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestProductService_DisplayOverridesRoundTrip(t *testing.T) {
	svc, db := newProductTestService(t)
	category := seedCategory(t, db, "Tecnologia", "tecnologia")

	created, err := svc.Create(CreateProductInput{
		Title:      "Apple Watch Series 9",
		Price:      models.NewMoneyFromFloat(4599),
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if created.DisplayOverrides != nil {
		t.Fatalf("new product should follow globals, got %v", created.DisplayOverrides)
	}

	updated, err := svc.UpdateDisplayOverrides(created.ID, models.BoolMap{"show_installments": false})
	if err != nil {
		t.Fatalf("set overrides failed: %v", err)
	}
	if updated.DisplayOverrides == nil || updated.DisplayOverrides["show_installments"] {
		t.Fatalf("override not persisted: %v", updated.DisplayOverrides)
	}

	updated, err = svc.UpdateDisplayOverrides(created.ID, nil)
	if err != nil {
		t.Fatalf("clear overrides failed: %v", err)
	}
	if updated.DisplayOverrides != nil {
		t.Fatalf("expected overrides cleared to NULL, got %v", updated.DisplayOverrides)
	}
}

func TestProductService_UpdateResetsOverrides(t *testing.T) {
	svc, db := newProductTestService(t)
	category := seedCategory(t, db, "Tecnologia", "tecnologia")

	created, err := svc.Create(CreateProductInput{
		Title:      "Smart TV Samsung 55",
		Price:      models.NewMoneyFromFloat(2799),
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if _, err := svc.UpdateDisplayOverrides(created.ID, models.BoolMap{"show_price": false}); err != nil {
		t.Fatalf("set overrides failed: %v", err)
	}

	title := "Smart TV Samsung 55 4K"
	updated, err := svc.Update(created.ID, UpdateProductInput{Title: &title})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("title not written: %q", updated.Title)
	}
	if updated.DisplayOverrides != nil {
		t.Fatalf("update without overrides must reset them to the globals, got %v", updated.DisplayOverrides)
	}

	if _, err := svc.Update(created.ID, UpdateProductInput{DisplayOverrides: models.BoolMap{"show_price": true}}); !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("override-only update must be rejected, got %v", err)
	}
}

func TestProductService_DeleteCascades(t *testing.T) {
	svc, db := newProductTestService(t)
	category := seedCategory(t, db, "Tecnologia", "tecnologia")

	created, err := svc.Create(CreateProductInput{
		Title:      "PlayStation 5 Slim",
		Price:      models.NewMoneyFromFloat(3799),
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	fixtures := []interface{}{
		&models.Review{ProductID: created.ID, UserID: 1, Rating: 5},
		&models.CartItem{UserID: 1, ProductID: created.ID, Quantity: 1},
		&models.ProductView{ProductID: created.ID, SessionID: "s1"},
		&models.OrderItem{OrderID: 1, ProductID: created.ID, Quantity: 1, Price: created.Price},
		&models.Quote{ProductID: created.ID, CustomerName: "Ana", CustomerEmail: "ana@example.com", Status: "pending"},
	}
	for _, fixture := range fixtures {
		if err := db.Create(fixture).Error; err != nil {
			t.Fatalf("seed fixture failed: %v", err)
		}
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	tables := map[string]interface{}{
		"reviews":       &models.Review{},
		"cart_items":    &models.CartItem{},
		"product_views": &models.ProductView{},
		"order_items":   &models.OrderItem{},
		"quotes":        &models.Quote{},
		"products":      &models.Product{},
	}
	for name, model := range tables {
		var count int64
		if err := db.Model(model).Where("id > 0").Count(&count).Error; err != nil {
			t.Fatalf("count %s failed: %v", name, err)
		}
		if count != 0 {
			t.Fatalf("expected %s emptied by cascade, found %d rows", name, count)
		}
	}

	if err := svc.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestProductService_TrackView(t *testing.T) {
	svc, db := newProductTestService(t)
	category := seedCategory(t, db, "Tecnologia", "tecnologia")

	if err := svc.TrackView(555, "s1", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown product, got %v", err)
	}

	created, err := svc.Create(CreateProductInput{
		Title:      "Kindle 11a Geracao",
		Price:      models.NewMoneyFromFloat(599),
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	userID := uint(7)
	if err := svc.TrackView(created.ID, "s1", &userID); err != nil {
		t.Fatalf("track view failed: %v", err)
	}

	var view models.ProductView
	if err := db.First(&view).Error; err != nil {
		t.Fatalf("load view failed: %v", err)
	}
	if view.ProductID != created.ID || view.SessionID != "s1" {
		t.Fatalf("view row wrong: %+v", view)
	}
	if view.UserID == nil || *view.UserID != userID {
		t.Fatalf("expected user 7 on view, got %v", view.UserID)
	}
	if view.ViewedAt.IsZero() {
		t.Fatal("viewed_at not stamped")
	}
}

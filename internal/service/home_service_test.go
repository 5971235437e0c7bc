package service

import (
	"testing"

	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newHomeTestService(t *testing.T) (*HomeService, *gorm.DB) {
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
		&models.HeroSlide{},
		&models.HomeBanner{},
		&models.HomeCarousel{},
		&models.ContentBlock{},
	)
	if err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	svc := NewHomeService(
		repository.NewHomeRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func seedHomeProduct(t *testing.T, db *gorm.DB, title string, categoryID uint, sold int) models.Product {
	t.Helper()
	product := models.Product{Title: title, Price: models.NewMoneyFromFloat(100), CategoryID: categoryID, Sold: sold, ActionType: "buy"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func TestHomeService_LayoutCustomCarouselKeepsOrder(t *testing.T) {
	svc, db := newHomeTestService(t)
	category := seedCategory(t, db, "Tecnologia", "tecnologia")

	first := seedHomeProduct(t, db, "Primeiro", category.ID, 1)
	second := seedHomeProduct(t, db, "Segundo", category.ID, 500)
	third := seedHomeProduct(t, db, "Terceiro", category.ID, 50)
	fourth := seedHomeProduct(t, db, "Quarto", category.ID, 10)

	carousel := models.HomeCarousel{
		Title:      "Escolhas da equipe",
		Kind:       constants.CarouselKindCustom,
		ProductIDs: models.UintArray{third.ID, 9999, first.ID, second.ID, fourth.ID},
		Limit:      3,
		Active:     true,
	}
	if err := svc.CreateCarousel(&carousel); err != nil {
		t.Fatalf("create carousel failed: %v", err)
	}

	layout, err := svc.Layout()
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	if len(layout.Carousels) != 1 {
		t.Fatalf("expected 1 carousel, got %d", len(layout.Carousels))
	}

	products := layout.Carousels[0].Products
	if len(products) != 3 {
		t.Fatalf("expected 3 picks after limit, got %d", len(products))
	}
	// configured order, missing id skipped, capped at the limit
	want := []uint{third.ID, first.ID, second.ID}
	for i, id := range want {
		if products[i].ID != id {
			t.Fatalf("pick %d: expected product %d, got %d", i, id, products[i].ID)
		}
	}
}

func TestHomeService_LayoutCarouselKinds(t *testing.T) {
	svc, db := newHomeTestService(t)
	tech := seedCategory(t, db, "Tecnologia", "tecnologia")
	home := seedCategory(t, db, "Casa", "casa")

	techTop := seedHomeProduct(t, db, "Top tecnologia", tech.ID, 900)
	seedHomeProduct(t, db, "Fraco tecnologia", tech.ID, 2)
	homeTop := seedHomeProduct(t, db, "Top casa", home.ID, 700)

	bestSellers := models.HomeCarousel{Title: "Mais vendidos", Kind: constants.CarouselKindBestSellers, Active: true, SortOrder: 1, Limit: 2}
	byCategory := models.HomeCarousel{Title: "Casa", Kind: constants.CarouselKindCategory, CategoryID: &home.ID, Active: true, SortOrder: 2, Limit: 5}
	emptyCategory := models.HomeCarousel{Title: "Sem categoria", Kind: constants.CarouselKindCategory, Active: true, SortOrder: 3, Limit: 5}
	for _, carousel := range []*models.HomeCarousel{&bestSellers, &byCategory, &emptyCategory} {
		if err := svc.CreateCarousel(carousel); err != nil {
			t.Fatalf("create carousel %q failed: %v", carousel.Title, err)
		}
	}

	layout, err := svc.Layout()
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	if len(layout.Carousels) != 3 {
		t.Fatalf("expected 3 carousels, got %d", len(layout.Carousels))
	}

	best := layout.Carousels[0].Products
	if len(best) != 2 || best[0].ID != techTop.ID || best[1].ID != homeTop.ID {
		t.Fatalf("best sellers wrong: %+v", best)
	}

	casa := layout.Carousels[1].Products
	if len(casa) != 1 || casa[0].ID != homeTop.ID {
		t.Fatalf("category carousel wrong: %+v", casa)
	}

	if len(layout.Carousels[2].Products) != 0 {
		t.Fatalf("category carousel without category must be empty, got %d", len(layout.Carousels[2].Products))
	}
}

func TestHomeService_LayoutSkipsInactiveSections(t *testing.T) {
	svc, db := newHomeTestService(t)

	slide := models.HeroSlide{Title: "Oferta", Active: true}
	if err := svc.CreateHeroSlide(&slide); err != nil {
		t.Fatalf("create slide failed: %v", err)
	}
	hidden := models.HeroSlide{Title: "Escondido", Active: true}
	if err := svc.CreateHeroSlide(&hidden); err != nil {
		t.Fatalf("create hidden slide failed: %v", err)
	}
	if err := db.Model(&models.HeroSlide{}).Where("id = ?", hidden.ID).Update("active", false).Error; err != nil {
		t.Fatalf("deactivate slide failed: %v", err)
	}

	banner := models.HomeBanner{Title: "Banner", Image: "/img/banner.jpg", Active: true}
	if err := svc.CreateBanner(&banner); err != nil {
		t.Fatalf("create banner failed: %v", err)
	}
	block := models.ContentBlock{Title: "Sobre", Body: "Texto", Active: true}
	if err := svc.CreateContentBlock(&block); err != nil {
		t.Fatalf("create block failed: %v", err)
	}

	layout, err := svc.Layout()
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	if len(layout.HeroSlides) != 1 || layout.HeroSlides[0].ID != slide.ID {
		t.Fatalf("inactive slide leaked: %+v", layout.HeroSlides)
	}
	if len(layout.Banners) != 1 || len(layout.ContentBlocks) != 1 {
		t.Fatalf("expected active banner and block: %d banners, %d blocks", len(layout.Banners), len(layout.ContentBlocks))
	}

	full, err := svc.ListHeroSlides()
	if err != nil {
		t.Fatalf("list slides failed: %v", err)
	}
	if len(full) != 2 {
		t.Fatalf("back office must see every slide, got %d", len(full))
	}
}

func TestHomeService_CarouselKindValidation(t *testing.T) {
	svc, _ := newHomeTestService(t)

	bad := models.HomeCarousel{Title: "Invalido", Kind: "spotlight", Active: true}
	if err := svc.CreateCarousel(&bad); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	ok := models.HomeCarousel{Title: "Valido", Kind: constants.CarouselKindBestSellers, Active: true}
	if err := svc.CreateCarousel(&ok); err != nil {
		t.Fatalf("create carousel failed: %v", err)
	}

	if _, err := svc.UpdateCarousel(ok.ID, func(c *models.HomeCarousel) { c.Kind = "spotlight" }); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus on update, got %v", err)
	}
}

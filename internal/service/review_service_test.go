package service

import (
	"errors"
	"testing"

	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newReviewTestService(t *testing.T) (*ReviewService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.User{}, &models.Review{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	svc := NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func seedReviewProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	category := seedCategory(t, db, "Tecnologia", "tecnologia")
	product := models.Product{Title: "Sony WH-1000XM5", Price: models.NewMoneyFromFloat(2199), CategoryID: category.ID, ActionType: "buy"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func TestReviewService_CreateRecomputesRating(t *testing.T) {
	svc, db := newReviewTestService(t)
	product := seedReviewProduct(t, db)

	if _, err := svc.Create(CreateReviewInput{ProductID: product.ID, UserID: 1, Rating: 4, Comment: "Muito bom"}); err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	if _, err := svc.Create(CreateReviewInput{ProductID: product.ID, UserID: 2, Rating: 5}); err != nil {
		t.Fatalf("second review failed: %v", err)
	}

	var stored models.Product
	if err := db.First(&stored, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if stored.ReviewsCount != 2 {
		t.Fatalf("expected 2 reviews counted, got %d", stored.ReviewsCount)
	}
	if stored.Rating == nil || *stored.Rating != 4.5 {
		t.Fatalf("expected rating 4.5, got %v", stored.Rating)
	}
}

func TestReviewService_RatingRoundsToOneDecimal(t *testing.T) {
	svc, db := newReviewTestService(t)
	product := seedReviewProduct(t, db)

	ratings := []int{5, 4, 4} // mean 4.333...
	for i, rating := range ratings {
		if _, err := svc.Create(CreateReviewInput{ProductID: product.ID, UserID: uint(i + 1), Rating: rating}); err != nil {
			t.Fatalf("review %d failed: %v", i, err)
		}
	}

	var stored models.Product
	if err := db.First(&stored, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if stored.Rating == nil || *stored.Rating != 4.3 {
		t.Fatalf("expected rating 4.3, got %v", stored.Rating)
	}
}

func TestReviewService_CreateGuards(t *testing.T) {
	svc, db := newReviewTestService(t)
	product := seedReviewProduct(t, db)

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.Create(CreateReviewInput{ProductID: product.ID, UserID: 1, Rating: rating}); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}

	if _, err := svc.Create(CreateReviewInput{ProductID: 999, UserID: 1, Rating: 5}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	if _, err := svc.Create(CreateReviewInput{ProductID: product.ID, UserID: 1, Rating: 5}); err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	if _, err := svc.Create(CreateReviewInput{ProductID: product.ID, UserID: 1, Rating: 3}); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
}

func TestReviewService_DeleteLastReviewClearsRating(t *testing.T) {
	svc, db := newReviewTestService(t)
	product := seedReviewProduct(t, db)

	review, err := svc.Create(CreateReviewInput{ProductID: product.ID, UserID: 1, Rating: 5})
	if err != nil {
		t.Fatalf("create review failed: %v", err)
	}

	if err := svc.Delete(review.ID); err != nil {
		t.Fatalf("delete review failed: %v", err)
	}

	var stored models.Product
	if err := db.First(&stored, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if stored.Rating != nil {
		t.Fatalf("expected rating cleared, got %v", *stored.Rating)
	}
	if stored.ReviewsCount != 0 {
		t.Fatalf("expected 0 reviews counted, got %d", stored.ReviewsCount)
	}

	if err := svc.Delete(review.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

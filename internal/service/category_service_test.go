package service

import (
	"errors"
	"testing"

	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newCategoryTestService(t *testing.T) (*CategoryService, *gorm.DB) {
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
	return NewCategoryService(repository.NewCategoryRepository(db)), db
}

func TestBuildCategoryTree_ShapeAndOrder(t *testing.T) {
	parentA := uint(1)
	missing := uint(99)
	rows := []repository.CategoryWithCount{
		{Category: models.Category{ID: 1, Name: "Tecnologia", Slug: "tecnologia"}, ProductCount: 5},
		{Category: models.Category{ID: 2, Name: "Moda", Slug: "moda"}, ProductCount: 2},
		{Category: models.Category{ID: 3, Name: "Celulares", Slug: "celulares", ParentID: &parentA}, ProductCount: 3},
		{Category: models.Category{ID: 4, Name: "Notebooks", Slug: "notebooks", ParentID: &parentA}, ProductCount: 2},
		{Category: models.Category{ID: 5, Name: "Orfao", Slug: "orfao", ParentID: &missing}, ProductCount: 1},
	}

	roots := BuildCategoryTree(rows)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].ID != 1 || roots[1].ID != 2 {
		t.Fatalf("root order not preserved: got %d, %d", roots[0].ID, roots[1].ID)
	}
	if len(roots[0].Children) != 2 {
		t.Fatalf("expected 2 children under root 1, got %d", len(roots[0].Children))
	}
	if roots[0].Children[0].ID != 3 || roots[0].Children[1].ID != 4 {
		t.Fatalf("child order not preserved: got %d, %d", roots[0].Children[0].ID, roots[0].Children[1].ID)
	}
	if roots[0].ProductCount != 5 {
		t.Fatalf("expected product count 5 on root 1, got %d", roots[0].ProductCount)
	}
	if len(roots[1].Children) != 0 {
		t.Fatalf("expected no children under root 2, got %d", len(roots[1].Children))
	}
	for _, root := range roots {
		if root.ID == 5 {
			t.Fatal("orphaned category should not become a root")
		}
	}
}

func TestBuildCategoryTree_Empty(t *testing.T) {
	roots := BuildCategoryTree(nil)
	if roots == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(roots) != 0 {
		t.Fatalf("expected no roots, got %d", len(roots))
	}
}

func TestCategoryService_UpdateGuards(t *testing.T) {
	svc, _ := newCategoryTestService(t)

	root := models.Category{Name: "Tecnologia", Slug: "tecnologia"}
	if _, err := svc.Create(CreateCategoryInput{Name: root.Name, Slug: root.Slug}); err != nil {
		t.Fatalf("create root failed: %v", err)
	}

	created, err := svc.Create(CreateCategoryInput{Name: "Celulares", Slug: "celulares"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	if _, err := svc.Update(created.ID, UpdateCategoryInput{}); !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}

	self := int(created.ID)
	if _, err := svc.Update(created.ID, UpdateCategoryInput{ParentID: &self}); !errors.Is(err, ErrSelfParent) {
		t.Fatalf("expected ErrSelfParent, got %v", err)
	}

	ghost := 12345
	if _, err := svc.Update(created.ID, UpdateCategoryInput{ParentID: &ghost}); !errors.Is(err, ErrParentNotFound) {
		t.Fatalf("expected ErrParentNotFound, got %v", err)
	}

	parent := 1
	updated, err := svc.Update(created.ID, UpdateCategoryInput{ParentID: &parent})
	if err != nil {
		t.Fatalf("set parent failed: %v", err)
	}
	if updated.ParentID == nil || *updated.ParentID != 1 {
		t.Fatalf("expected parent 1, got %v", updated.ParentID)
	}

	clear := 0
	updated, err = svc.Update(created.ID, UpdateCategoryInput{ParentID: &clear})
	if err != nil {
		t.Fatalf("clear parent failed: %v", err)
	}
	if updated.ParentID != nil {
		t.Fatalf("expected parent cleared, got %v", *updated.ParentID)
	}
}

func TestCategoryService_SlugUniqueness(t *testing.T) {
	svc, _ := newCategoryTestService(t)

	if _, err := svc.Create(CreateCategoryInput{Name: "Moda", Slug: "moda"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(CreateCategoryInput{Name: "Moda 2", Slug: "moda"}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}

	other, err := svc.Create(CreateCategoryInput{Name: "Esportes", Slug: "esportes"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	slug := "moda"
	if _, err := svc.Update(other.ID, UpdateCategoryInput{Slug: &slug}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists on update, got %v", err)
	}

	same := "esportes"
	if _, err := svc.Update(other.ID, UpdateCategoryInput{Slug: &same}); err != nil {
		t.Fatalf("keeping own slug should pass: %v", err)
	}
}

func TestCategoryService_DeleteGuards(t *testing.T) {
	svc, db := newCategoryTestService(t)

	parent, err := svc.Create(CreateCategoryInput{Name: "Casa", Slug: "casa"})
	if err != nil {
		t.Fatalf("create parent failed: %v", err)
	}
	child, err := svc.Create(CreateCategoryInput{Name: "Cozinha", Slug: "cozinha", ParentID: &parent.ID})
	if err != nil {
		t.Fatalf("create child failed: %v", err)
	}

	if err := svc.Delete(parent.ID); !errors.Is(err, ErrCategoryHasChildren) {
		t.Fatalf("expected ErrCategoryHasChildren, got %v", err)
	}

	product := models.Product{Title: "Panela", Price: models.NewMoneyFromFloat(99.9), CategoryID: child.ID, ActionType: "buy"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := svc.Delete(child.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}

	if err := db.Delete(&models.Product{}, product.ID).Error; err != nil {
		t.Fatalf("remove product failed: %v", err)
	}
	if err := svc.Delete(child.ID); err != nil {
		t.Fatalf("delete leaf failed: %v", err)
	}
	if err := svc.Delete(parent.ID); err != nil {
		t.Fatalf("delete emptied parent failed: %v", err)
	}

	if err := svc.Delete(parent.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

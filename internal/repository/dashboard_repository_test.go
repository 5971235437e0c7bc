package repository

import (
	"testing"

	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newDashboardTestRepo(t *testing.T) (*GormDashboardRepository, *gorm.DB) {
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
		&models.Order{},
	)
	if err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewDashboardRepository(db), db
}

func TestDashboardRepository_LowStockTopFive(t *testing.T) {
	repo, db := newDashboardTestRepo(t)

	category := models.Category{Name: "Tecnologia", Slug: "tecnologia"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category failed: %v", err)
	}

	actionTypes := []string{"buy", "whatsapp", "quote"}
	for i := 0; i < 8; i++ {
		product := models.Product{
			Title:      "Produto",
			Price:      models.NewMoneyFromFloat(100),
			CategoryID: category.ID,
			Stock:      i,
			ActionType: actionTypes[i%len(actionTypes)],
		}
		if err := db.Create(&product).Error; err != nil {
			t.Fatalf("seed product failed: %v", err)
		}
	}
	plenty := models.Product{Title: "Estocado", Price: models.NewMoneyFromFloat(100), CategoryID: category.ID, Stock: 50, ActionType: "buy"}
	if err := db.Create(&plenty).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}

	products, err := repo.GetLowStock(constants.LowStockThreshold, 5)
	if err != nil {
		t.Fatalf("low stock failed: %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("expected the 5 lowest products, got %d", len(products))
	}
	for i, product := range products {
		if product.Stock != i {
			t.Fatalf("expected stock ordered ascending, got %d at %d", product.Stock, i)
		}
		if product.Stock > constants.LowStockThreshold {
			t.Fatalf("product over threshold leaked: stock %d", product.Stock)
		}
	}

	// quote and whatsapp products are low stock all the same
	hasNonBuy := false
	for _, product := range products {
		if product.ActionType != "buy" {
			hasNonBuy = true
		}
	}
	if !hasNonBuy {
		t.Fatal("low stock must not be limited to directly sold products")
	}
}

func TestDashboardRepository_RevenueSkipsCanceled(t *testing.T) {
	repo, db := newDashboardTestRepo(t)

	orders := []models.Order{
		{UserID: 1, Total: models.NewMoneyFromFloat(100), Status: constants.OrderStatusProcessing},
		{UserID: 1, Total: models.NewMoneyFromFloat(250.50), Status: constants.OrderStatusDelivered},
		{UserID: 2, Total: models.NewMoneyFromFloat(999), Status: constants.OrderStatusCanceled},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			t.Fatalf("seed order failed: %v", err)
		}
	}

	totals, err := repo.GetTotals()
	if err != nil {
		t.Fatalf("totals failed: %v", err)
	}
	if totals.Orders != 3 {
		t.Fatalf("expected 3 orders counted, got %d", totals.Orders)
	}
	if totals.Revenue != 350.50 {
		t.Fatalf("expected revenue 350.50 without the canceled order, got %v", totals.Revenue)
	}
}

func TestDashboardRepository_OrdersByStatus(t *testing.T) {
	repo, db := newDashboardTestRepo(t)

	orders := []models.Order{
		{UserID: 1, Total: models.NewMoneyFromFloat(10), Status: constants.OrderStatusProcessing},
		{UserID: 1, Total: models.NewMoneyFromFloat(10), Status: constants.OrderStatusProcessing},
		{UserID: 2, Total: models.NewMoneyFromFloat(10), Status: constants.OrderStatusDelivered},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			t.Fatalf("seed order failed: %v", err)
		}
	}

	rows, err := repo.GetOrdersByStatus()
	if err != nil {
		t.Fatalf("orders by status failed: %v", err)
	}
	byStatus := map[string]int64{}
	for _, row := range rows {
		byStatus[row.Status] = row.Count
	}
	if byStatus[constants.OrderStatusProcessing] != 2 {
		t.Fatalf("expected 2 processing orders, got %d", byStatus[constants.OrderStatusProcessing])
	}
	if byStatus[constants.OrderStatusDelivered] != 1 {
		t.Fatalf("expected 1 delivered order, got %d", byStatus[constants.OrderStatusDelivered])
	}
}

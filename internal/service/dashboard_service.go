package service

import (
	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"
)

// DashboardService assembles the back-office overview.
type DashboardService struct {
	repo repository.DashboardRepository
}

// NewDashboardService creates a dashboard service.
func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// DashboardStats is the full overview payload.
type DashboardStats struct {
	TotalProducts  int64                                  `json:"total_products"`
	TotalUsers     int64                                  `json:"total_users"`
	TotalOrders    int64                                  `json:"total_orders"`
	TotalRevenue   float64                                `json:"total_revenue"`
	OrdersByStatus map[string]int64                       `json:"orders_by_status"`
	RecentOrders   []models.Order                         `json:"recent_orders"`
	TopSellers     []models.Product                       `json:"top_sellers"`
	LowStock       []models.Product                       `json:"low_stock"`
	Categories     []repository.DashboardCategoryCountRow `json:"categories"`
}

// Stats gathers the overview numbers. Every known order status appears
// in the bucket map even at zero.
func (s *DashboardService) Stats() (*DashboardStats, error) {
	totals, err := s.repo.GetTotals()
	if err != nil {
		return nil, err
	}

	statusRows, err := s.repo.GetOrdersByStatus()
	if err != nil {
		return nil, err
	}
	byStatus := make(map[string]int64, len(constants.OrderStatuses))
	for _, status := range constants.OrderStatuses {
		byStatus[status] = 0
	}
	for _, row := range statusRows {
		byStatus[row.Status] = row.Count
	}

	recent, err := s.repo.GetRecentOrders(5)
	if err != nil {
		return nil, err
	}
	topSellers, err := s.repo.GetTopSellers(5)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.repo.GetLowStock(constants.LowStockThreshold, 5)
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.GetCategoryCounts()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProducts:  totals.Products,
		TotalUsers:     totals.Users,
		TotalOrders:    totals.Orders,
		TotalRevenue:   totals.Revenue,
		OrdersByStatus: byStatus,
		RecentOrders:   recent,
		TopSellers:     topSellers,
		LowStock:       lowStock,
		Categories:     categories,
	}, nil
}

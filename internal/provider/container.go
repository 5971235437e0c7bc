package provider

import (
	"github.com/mercadoclone/api/internal/authz"
	"github.com/mercadoclone/api/internal/cache"
	"github.com/mercadoclone/api/internal/config"
	"github.com/mercadoclone/api/internal/logger"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"
	"github.com/mercadoclone/api/internal/service"
)

// Container wires repositories and services once at startup.
type Container struct {
	Config *config.Config

	// Repositories
	AdminRepo          repository.AdminRepository
	UserRepo           repository.UserRepository
	CategoryRepo       repository.CategoryRepository
	ProductRepo        repository.ProductRepository
	ProductViewRepo    repository.ProductViewRepository
	DisplaySettingRepo repository.DisplaySettingRepository
	CartRepo           repository.CartRepository
	OrderRepo          repository.OrderRepository
	ReviewRepo         repository.ReviewRepository
	QuoteRepo          repository.QuoteRepository
	BlogRepo           repository.BlogRepository
	HomeRepo           repository.HomeRepository
	DashboardRepo      repository.DashboardRepository

	// Services
	AuthzService          *authz.Service
	AuthService           *service.AuthService
	UserAuthService       *service.UserAuthService
	AdminAccountService   *service.AdminAccountService
	CategoryService       *service.CategoryService
	ProductService        *service.ProductService
	RecommendationService *service.RecommendationService
	DisplaySettingService *service.DisplaySettingService
	CartService           *service.CartService
	OrderService          *service.OrderService
	ReviewService         *service.ReviewService
	QuoteService          *service.QuoteService
	BlogService           *service.BlogService
	HomeService           *service.HomeService
	UserService           *service.UserService
	DashboardService      *service.DashboardService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.ProductViewRepo = repository.NewProductViewRepository(db)
	c.DisplaySettingRepo = repository.NewDisplaySettingRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.QuoteRepo = repository.NewQuoteRepository(db)
	c.BlogRepo = repository.NewBlogRepository(db)
	c.HomeRepo = repository.NewHomeRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.AdminAccountService = service.NewAdminAccountService(c.Config, c.AdminRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo, c.ReviewRepo, c.CartRepo, c.OrderRepo, c.QuoteRepo, c.ProductViewRepo)
	c.RecommendationService = service.NewRecommendationService(c.ProductRepo, c.ProductViewRepo)
	c.DisplaySettingService = service.NewDisplaySettingService(c.DisplaySettingRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.ProductRepo)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo)
	c.QuoteService = service.NewQuoteService(c.QuoteRepo, c.ProductRepo)
	c.BlogService = service.NewBlogService(c.BlogRepo)
	c.HomeService = service.NewHomeService(c.HomeRepo, c.ProductRepo)
	c.UserService = service.NewUserService(c.UserRepo, c.OrderRepo, c.ReviewRepo, c.CartRepo)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo)
}

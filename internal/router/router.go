package router

import (
	"fmt"
	"strings"

	"github.com/mercadoclone/api/internal/cache"
	"github.com/mercadoclone/api/internal/config"
	"github.com/mercadoclone/api/internal/constants"
	adminhandlers "github.com/mercadoclone/api/internal/http/handlers/admin"
	publichandlers "github.com/mercadoclone/api/internal/http/handlers/public"
	"github.com/mercadoclone/api/internal/logger"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP surface: storefront routes under /api/v1
// and the back office under /api/v1/admin.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"name":    "mercadoclone-api",
			"version": "1.0",
			"status":  "ok",
		})
	})
	r.GET("/health", func(ctx *gin.Context) {
		if models.DB != nil {
			if sqlDB, err := models.DB.DB(); err == nil {
				if err := sqlDB.Ping(); err != nil {
					ctx.JSON(503, gin.H{"status": "degraded", "database": "down"})
					return
				}
			}
		}
		ctx.JSON(200, gin.H{"status": "ok", "database": "up"})
	})

	apiV1 := r.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
			auth.GET("/me", UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo), publicHandler.GetCurrentUser)
		}

		apiV1.GET("/categories", publicHandler.GetCategories)
		apiV1.GET("/categories/tree", publicHandler.GetCategoryTree)
		apiV1.GET("/categories/parents", publicHandler.GetParentCategories)

		apiV1.GET("/products", publicHandler.GetProducts)
		apiV1.GET("/products/:id", publicHandler.GetProduct)
		apiV1.POST("/products/:id/view", publicHandler.TrackProductView)
		apiV1.GET("/products/:id/related", publicHandler.GetRelatedProducts)
		apiV1.GET("/products/:id/suggested", publicHandler.GetSuggestedProducts)
		apiV1.GET("/products/:id/also-viewed", publicHandler.GetAlsoViewedProducts)

		apiV1.GET("/reviews/product/:id", publicHandler.ListProductReviews)
		apiV1.POST("/quotes", publicHandler.CreateQuote)

		apiV1.GET("/blog/categories", publicHandler.GetBlogCategories)
		apiV1.GET("/blog/posts", publicHandler.GetBlogPosts)
		apiV1.GET("/blog/posts/:slug", publicHandler.GetBlogPost)
		apiV1.GET("/blog/posts/:slug/comments", publicHandler.GetBlogComments)
		apiV1.POST("/blog/posts/:slug/comments", publicHandler.CreateBlogComment)

		apiV1.GET("/home/layout", publicHandler.GetHomeLayout)
		apiV1.GET("/display-settings", publicHandler.GetDisplaySettings)

		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart", publicHandler.AddCartItem)
			user.PUT("/cart/:id", publicHandler.UpdateCartItem)
			user.DELETE("/cart/:id", publicHandler.RemoveCartItem)
			user.DELETE("/cart", publicHandler.ClearCart)
			user.GET("/orders", publicHandler.ListOrders)
			user.POST("/orders", publicHandler.Checkout)
			user.POST("/reviews", publicHandler.CreateReview)
		}

		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.AdminLogin)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo), AdminRBACMiddleware(c.AuthzService))
			{
				authorized.GET("/dashboard/stats", adminHandler.GetDashboardStats)

				authorized.GET("/products", adminHandler.ListProducts)
				authorized.GET("/products/:id", adminHandler.GetProduct)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.PUT("/products/:id/display-overrides", adminHandler.UpdateProductDisplayOverrides)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				authorized.GET("/categories", adminHandler.ListCategories)
				authorized.GET("/categories/tree", adminHandler.GetCategoryTree)
				authorized.GET("/categories/parents", adminHandler.ListParentCategories)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

				authorized.GET("/orders", adminHandler.ListOrders)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)

				authorized.GET("/users", adminHandler.ListUsers)
				authorized.GET("/users/:id", adminHandler.GetUser)
				authorized.DELETE("/users/:id", adminHandler.DeleteUser)

				authorized.GET("/reviews", adminHandler.ListReviews)
				authorized.DELETE("/reviews/:id", adminHandler.DeleteReview)

				authorized.GET("/quotes", adminHandler.ListQuotes)
				authorized.PUT("/quotes/:id/status", adminHandler.UpdateQuoteStatus)
				authorized.DELETE("/quotes/:id", adminHandler.DeleteQuote)

				authorized.GET("/admins", adminHandler.ListAdmins)
				authorized.POST("/admins", adminHandler.CreateAdmin)
				authorized.DELETE("/admins/:id", adminHandler.DeleteAdmin)

				authorized.GET("/blog/categories", adminHandler.ListBlogCategories)
				authorized.POST("/blog/categories", adminHandler.CreateBlogCategory)
				authorized.PUT("/blog/categories/:id", adminHandler.UpdateBlogCategory)
				authorized.DELETE("/blog/categories/:id", adminHandler.DeleteBlogCategory)
				authorized.GET("/blog/posts", adminHandler.ListBlogPosts)
				authorized.GET("/blog/posts/:id", adminHandler.GetBlogPost)
				authorized.POST("/blog/posts", adminHandler.CreateBlogPost)
				authorized.PUT("/blog/posts/:id", adminHandler.UpdateBlogPost)
				authorized.DELETE("/blog/posts/:id", adminHandler.DeleteBlogPost)
				authorized.GET("/blog/posts/:id/comments", adminHandler.ListBlogPostComments)
				authorized.PUT("/blog/comments/:id/approve", adminHandler.ApproveBlogComment)
				authorized.DELETE("/blog/comments/:id", adminHandler.DeleteBlogComment)

				authorized.GET("/home/hero-slides", adminHandler.ListHeroSlides)
				authorized.POST("/home/hero-slides", adminHandler.CreateHeroSlide)
				authorized.PUT("/home/hero-slides/:id", adminHandler.UpdateHeroSlide)
				authorized.DELETE("/home/hero-slides/:id", adminHandler.DeleteHeroSlide)
				authorized.GET("/home/banners", adminHandler.ListHomeBanners)
				authorized.POST("/home/banners", adminHandler.CreateHomeBanner)
				authorized.PUT("/home/banners/:id", adminHandler.UpdateHomeBanner)
				authorized.DELETE("/home/banners/:id", adminHandler.DeleteHomeBanner)
				authorized.GET("/home/carousels", adminHandler.ListHomeCarousels)
				authorized.POST("/home/carousels", adminHandler.CreateHomeCarousel)
				authorized.PUT("/home/carousels/:id", adminHandler.UpdateHomeCarousel)
				authorized.DELETE("/home/carousels/:id", adminHandler.DeleteHomeCarousel)
				authorized.GET("/home/content-blocks", adminHandler.ListContentBlocks)
				authorized.POST("/home/content-blocks", adminHandler.CreateContentBlock)
				authorized.PUT("/home/content-blocks/:id", adminHandler.UpdateContentBlock)
				authorized.DELETE("/home/content-blocks/:id", adminHandler.DeleteContentBlock)

				authorized.GET("/display-settings", adminHandler.ListDisplaySettings)
				authorized.PUT("/display-settings", adminHandler.UpdateDisplaySettings)
			}
		}
	}

	return r
}

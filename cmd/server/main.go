package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/mercadoclone/api/internal/app"
	"github.com/mercadoclone/api/internal/config"
	"github.com/mercadoclone/api/internal/logger"
	"github.com/mercadoclone/api/internal/models"

	"github.com/gin-gonic/gin"
)

func main() {
	printStartupBanner()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.JWT.SecretKey) || isWeakSecret(cfg.UserJWT.SecretKey) {
			stdLog.Fatalf("JWT secret is weak or still the default, configure a strong random key in production")
		}
	} else if isWeakSecret(cfg.JWT.SecretKey) || isWeakSecret(cfg.UserJWT.SecretKey) {
		stdLog.Printf("warning: JWT secret is weak or still the default, change it before going to production")
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("database migration failed: %v", err)
	}

	defaultAdminEmail := os.Getenv("MC_DEFAULT_ADMIN_EMAIL")
	defaultAdminPass := os.Getenv("MC_DEFAULT_ADMIN_PASSWORD")
	if cfg.Server.Mode == "release" && defaultAdminPass == "" {
		stdLog.Printf("warning: MC_DEFAULT_ADMIN_PASSWORD not set, skipped default admin bootstrap")
	} else if err := models.InitDefaultAdmin(defaultAdminEmail, defaultAdminPass); err != nil {
		stdLog.Printf("warning: default admin bootstrap failed: %v", err)
	}

	if err := models.InitDefaultDisplaySettings(); err != nil {
		stdLog.Printf("warning: display settings bootstrap failed: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("service run failed: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println("==============================================")
	fmt.Println("  MercadoClone API")
	fmt.Println("==============================================")
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}

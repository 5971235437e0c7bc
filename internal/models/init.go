package models

import (
	"strings"

	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultAdmin creates the initial super admin when no admin exists.
func InitDefaultAdmin(email, password string) error {
	var count int64
	DB.Model(&Admin{}).Count(&count)

	// With admins present, make sure the default account keeps the
	// super_admin role.
	if count > 0 {
		if err := DB.Model(&Admin{}).
			Where("email = ?", "admin@mercadoclone.com").
			Update("role", constants.AdminRoleSuper).Error; err != nil {
			logger.Warnw("ensure_default_admin_super_failed", "error", err)
		}
		return nil
	}

	if email == "" {
		email = "admin@mercadoclone.com"
	}
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := Admin{
		Name:         "Administrador",
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hash),
		Role:         constants.AdminRoleSuper,
	}

	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == "admin123" {
		logger.Warnw("default_admin_created_with_default_password", "email", email)
		logger.Warnw("default_admin_password_change_required", "email", email)
	} else {
		logger.Warnw("default_admin_created", "email", email, "password_hidden", true)
	}

	return nil
}

type defaultDisplaySetting struct {
	Key   string
	Label string
	Group string
}

var defaultDisplaySettings = []defaultDisplaySetting{
	{"show_price", "Exibir preço", "price"},
	{"show_original_price", "Exibir preço original", "price"},
	{"show_discount", "Exibir desconto", "price"},
	{"show_installments", "Exibir parcelamento", "price"},
	{"show_free_shipping", "Exibir frete grátis", "delivery"},
	{"show_specs", "Exibir especificações", "product"},
	{"show_brand", "Exibir marca", "product"},
	{"show_condition", "Exibir condição", "product"},
	{"show_stock", "Exibir estoque", "product"},
	{"show_sold", "Exibir vendidos", "product"},
	{"show_rating", "Exibir avaliação", "product"},
	{"show_reviews_count", "Exibir número de avaliações", "product"},
	{"show_action_button", "Exibir botão de ação", "interaction"},
	{"show_seller_info", "Exibir informações do vendedor", "seller"},
}

// InitDefaultDisplaySettings inserts any missing global display flags.
// Existing rows keep their configured values.
func InitDefaultDisplaySettings() error {
	for i, def := range defaultDisplaySettings {
		var count int64
		if err := DB.Model(&DisplaySetting{}).Where("key = ?", def.Key).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		setting := DisplaySetting{
			Key:       def.Key,
			Value:     true,
			Label:     def.Label,
			Group:     def.Group,
			SortOrder: i,
		}
		if err := DB.Create(&setting).Error; err != nil {
			return err
		}
	}
	return nil
}

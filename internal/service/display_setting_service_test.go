package service

import (
	"testing"

	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newDisplaySettingTestService(t *testing.T) (*DisplaySettingService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.DisplaySetting{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	settings := []models.DisplaySetting{
		{Key: "show_price", Value: true, Label: "Exibir preço", Group: "price", SortOrder: 1},
		{Key: "show_installments", Value: true, Label: "Exibir parcelamento", Group: "price", SortOrder: 2},
		{Key: "show_free_shipping", Value: true, Label: "Exibir frete grátis", Group: "delivery", SortOrder: 1},
	}
	for i := range settings {
		if err := db.Create(&settings[i]).Error; err != nil {
			t.Fatalf("seed setting failed: %v", err)
		}
	}
	return NewDisplaySettingService(repository.NewDisplaySettingRepository(db)), db
}

func TestResolveEffective(t *testing.T) {
	global := map[string]bool{
		"show_price":         true,
		"show_installments":  true,
		"show_free_shipping": false,
	}

	effective := ResolveEffective(global, models.BoolMap{"show_installments": false, "unknown_key": true})
	if !effective["show_price"] {
		t.Fatal("global value should pass through when not overridden")
	}
	if effective["show_installments"] {
		t.Fatal("override should win over the global value")
	}
	if effective["show_free_shipping"] {
		t.Fatal("global false should pass through")
	}
	if _, ok := effective["unknown_key"]; ok {
		t.Fatal("override keys outside the global set must not appear")
	}

	effective = ResolveEffective(global, nil)
	if len(effective) != len(global) {
		t.Fatalf("nil overrides should yield the global set, got %d keys", len(effective))
	}
	for key, value := range global {
		if effective[key] != value {
			t.Fatalf("key %q diverged from global", key)
		}
	}
}

func TestDisplaySettingService_UpdateGlobal(t *testing.T) {
	svc, db := newDisplaySettingTestService(t)

	err := svc.UpdateGlobal([]DisplaySettingUpdate{
		{Key: "show_price", Value: false},
		{Key: "does_not_exist", Value: true},
	})
	if err != nil {
		t.Fatalf("update global failed: %v", err)
	}

	global, err := svc.GlobalMap()
	if err != nil {
		t.Fatalf("global map failed: %v", err)
	}
	if global["show_price"] {
		t.Fatal("show_price should be off after update")
	}
	if !global["show_installments"] {
		t.Fatal("untouched key changed")
	}
	if _, ok := global["does_not_exist"]; ok {
		t.Fatal("unknown keys must be ignored, not created")
	}

	var count int64
	if err := db.Model(&models.DisplaySetting{}).Count(&count).Error; err != nil {
		t.Fatalf("count settings failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 setting rows, got %d", count)
	}
}

func TestDisplaySettingService_ListGrouped(t *testing.T) {
	svc, _ := newDisplaySettingTestService(t)

	settings, groups, err := svc.ListGrouped()
	if err != nil {
		t.Fatalf("list grouped failed: %v", err)
	}
	if len(settings) != 3 {
		t.Fatalf("expected 3 settings, got %d", len(settings))
	}
	if len(groups["price"]) != 2 {
		t.Fatalf("expected 2 keys in price group, got %v", groups["price"])
	}
	if len(groups["delivery"]) != 1 {
		t.Fatalf("expected 1 key in delivery group, got %v", groups["delivery"])
	}
}

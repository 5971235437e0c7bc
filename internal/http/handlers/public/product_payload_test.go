package public

import (
	"testing"

	"github.com/mercadoclone/api/internal/models"
)

func TestInstallmentPrice(t *testing.T) {
	price := models.NewMoneyFromFloat(100)

	got := installmentPrice(price, 10)
	if got == nil {
		t.Fatal("expected a price for 10 installments")
	}
	if got.String() != "10.00" {
		t.Fatalf("expected 10.00, got %s", got.String())
	}

	// non-terminating division rounds to 2 decimals
	got = installmentPrice(price, 3)
	if got == nil {
		t.Fatal("expected a price for 3 installments")
	}
	if got.String() != "33.33" {
		t.Fatalf("expected 33.33, got %s", got.String())
	}

	if got := installmentPrice(price, 0); got != nil {
		t.Fatalf("installments off must omit the price, got %s", got.String())
	}
	if got := installmentPrice(price, -2); got != nil {
		t.Fatalf("negative installments must omit the price, got %s", got.String())
	}
}

func TestToProductPayload_Installments(t *testing.T) {
	product := &models.Product{
		ID:           1,
		Title:        "Geladeira Brastemp Frost Free",
		Price:        models.NewMoneyFromFloat(3499.90),
		Installments: 12,
	}

	payload := toProductPayload(product, nil)
	if payload.InstallmentPrice == nil {
		t.Fatal("expected installment price in the payload")
	}
	if payload.InstallmentPrice.String() != "291.66" {
		t.Fatalf("expected 291.66, got %s", payload.InstallmentPrice.String())
	}
	if !payload.UseGlobal {
		t.Fatal("product without overrides must report useGlobal")
	}

	product.Installments = 0
	payload = toProductPayload(product, nil)
	if payload.InstallmentPrice != nil {
		t.Fatalf("installments off must omit the price, got %s", payload.InstallmentPrice.String())
	}
}

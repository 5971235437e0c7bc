package public

import (
	"time"

	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/service"

	"github.com/shopspring/decimal"
)

// sellerPayload groups the seller columns the storefront renders as one
// object.
type sellerPayload struct {
	Name       string `json:"name"`
	Reputation string `json:"reputation"`
	Location   string `json:"location"`
}

// specPayload is one spec sheet row.
type specPayload struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// productPayload is the storefront product shape. Field names are
// camelCase because the frontend consumes them directly.
type productPayload struct {
	ID               uint            `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Price            models.Money    `json:"price"`
	OriginalPrice    *models.Money   `json:"originalPrice"`
	Discount         int             `json:"discount"`
	Installments     int             `json:"installments"`
	InstallmentPrice *models.Money   `json:"installmentPrice"`
	Image            string          `json:"image"`
	Images           []string        `json:"images"`
	FreeShipping     bool            `json:"freeShipping"`
	Rating           *float64        `json:"rating"`
	ReviewsCount     int             `json:"reviewsCount"`
	Sold             int             `json:"sold"`
	CategoryID       uint            `json:"categoryId"`
	CategoryName     string          `json:"categoryName,omitempty"`
	CategorySlug     string          `json:"categorySlug,omitempty"`
	Condition        string          `json:"condition"`
	Brand            string          `json:"brand"`
	Stock            int             `json:"stock"`
	Seller           sellerPayload   `json:"seller"`
	Specs            []specPayload   `json:"specs"`
	ActionType       string          `json:"actionType"`
	WhatsappNumber   string          `json:"whatsappNumber,omitempty"`
	DisplayOverrides models.BoolMap  `json:"displayOverrides"`
	UseGlobal        bool            `json:"useGlobal"`
	DisplaySettings  map[string]bool `json:"displaySettings,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// installmentPrice computes price/installments rounded to 2 decimals,
// nil when installments are off.
func installmentPrice(price models.Money, installments int) *models.Money {
	if installments <= 0 {
		return nil
	}
	value := models.NewMoneyFromDecimal(price.Decimal.Div(decimal.NewFromInt(int64(installments))))
	return &value
}

// toProductPayload converts a product row. The effective display map is
// optional; list endpoints pass the shared global map resolved once.
func toProductPayload(product *models.Product, displaySettings map[string]bool) productPayload {
	specs := make([]specPayload, 0, len(product.Specs))
	for _, spec := range product.Specs {
		specs = append(specs, specPayload{Name: spec.Name, Value: spec.Value})
	}

	images := []string(product.Images)
	if images == nil {
		images = []string{}
	}

	payload := productPayload{
		ID:               product.ID,
		Title:            product.Title,
		Description:      product.Description,
		Price:            product.Price,
		OriginalPrice:    product.OriginalPrice,
		Discount:         product.Discount,
		Installments:     product.Installments,
		InstallmentPrice: installmentPrice(product.Price, product.Installments),
		Image:            product.Image,
		Images:           images,
		FreeShipping:     product.FreeShipping,
		Rating:           product.Rating,
		ReviewsCount:     product.ReviewsCount,
		Sold:             product.Sold,
		CategoryID:       product.CategoryID,
		Condition:        product.Condition,
		Brand:            product.Brand,
		Stock:            product.Stock,
		Seller: sellerPayload{
			Name:       product.SellerName,
			Reputation: product.SellerReputation,
			Location:   product.SellerLocation,
		},
		Specs:            specs,
		ActionType:       product.ActionType,
		WhatsappNumber:   product.WhatsappNumber,
		DisplayOverrides: product.DisplayOverrides,
		UseGlobal:        product.DisplayOverrides == nil,
		DisplaySettings:  displaySettings,
		CreatedAt:        product.CreatedAt,
	}
	if product.Category != nil {
		payload.CategoryName = product.Category.Name
		payload.CategorySlug = product.Category.Slug
	}
	return payload
}

// toProductPayloads converts a product list, resolving each product's
// effective display map against one shared global map.
func toProductPayloads(products []models.Product, global map[string]bool) []productPayload {
	payloads := make([]productPayload, 0, len(products))
	for i := range products {
		product := &products[i]
		var effective map[string]bool
		if global != nil {
			effective = service.ResolveEffective(global, product.DisplayOverrides)
		}
		payloads = append(payloads, toProductPayload(product, effective))
	}
	return payloads
}

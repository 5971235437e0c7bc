package admin

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"
	"github.com/mercadoclone/api/internal/service"

	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	Title            string          `json:"title" binding:"required"`
	Description      string          `json:"description"`
	Price            models.Money    `json:"price" binding:"required"`
	OriginalPrice    *models.Money   `json:"original_price"`
	Discount         int             `json:"discount"`
	Installments     int             `json:"installments"`
	Image            string          `json:"image"`
	Images           []string        `json:"images"`
	FreeShipping     bool            `json:"free_shipping"`
	CategoryID       uint            `json:"category_id" binding:"required"`
	Condition        string          `json:"condition"`
	Brand            string          `json:"brand"`
	Stock            int             `json:"stock"`
	SellerName       string          `json:"seller_name"`
	SellerReputation string          `json:"seller_reputation"`
	SellerLocation   string          `json:"seller_location"`
	Specs            models.SpecList `json:"specs"`
	ActionType       string          `json:"action_type"`
	WhatsappNumber   string          `json:"whatsapp_number"`
}

// updateProductRequest carries a partial update. Pointer fields tell
// "absent" apart from "set to zero". DisplayOverrides is replaced on
// every update; leaving it out (or sending null) clears the column.
type updateProductRequest struct {
	Title            *string          `json:"title"`
	Description      *string          `json:"description"`
	Price            *models.Money    `json:"price"`
	OriginalPrice    *models.Money    `json:"original_price"`
	Discount         *int             `json:"discount"`
	Installments     *int             `json:"installments"`
	Image            *string          `json:"image"`
	Images           *[]string        `json:"images"`
	FreeShipping     *bool            `json:"free_shipping"`
	CategoryID       *uint            `json:"category_id"`
	Condition        *string          `json:"condition"`
	Brand            *string          `json:"brand"`
	Stock            *int             `json:"stock"`
	Sold             *int             `json:"sold"`
	SellerName       *string          `json:"seller_name"`
	SellerReputation *string          `json:"seller_reputation"`
	SellerLocation   *string          `json:"seller_location"`
	Specs            *models.SpecList `json:"specs"`
	ActionType       *string          `json:"action_type"`
	WhatsappNumber   *string          `json:"whatsapp_number"`
	DisplayOverrides json.RawMessage  `json:"display_overrides"`
}

// ListProducts returns the catalog for the back office.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		Search:       strings.TrimSpace(c.Query("search")),
		WithCategory: true,
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.CategoryID = uint(id)
		}
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetProduct returns one product row.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, product)
}

// CreateProduct inserts a product.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	product, err := h.ProductService.Create(service.CreateProductInput{
		Title:            req.Title,
		Description:      req.Description,
		Price:            req.Price,
		OriginalPrice:    req.OriginalPrice,
		Discount:         req.Discount,
		Installments:     req.Installments,
		Image:            req.Image,
		Images:           req.Images,
		FreeShipping:     req.FreeShipping,
		CategoryID:       req.CategoryID,
		Condition:        req.Condition,
		Brand:            req.Brand,
		Stock:            req.Stock,
		SellerName:       req.SellerName,
		SellerReputation: req.SellerReputation,
		SellerLocation:   req.SellerLocation,
		Specs:            req.Specs,
		ActionType:       req.ActionType,
		WhatsappNumber:   req.WhatsappNumber,
	})
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, product)
}

// UpdateProduct applies a partial update through one UPDATE statement.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	input := service.UpdateProductInput{
		Title:            req.Title,
		Description:      req.Description,
		Price:            req.Price,
		OriginalPrice:    req.OriginalPrice,
		Discount:         req.Discount,
		Installments:     req.Installments,
		Image:            req.Image,
		Images:           req.Images,
		FreeShipping:     req.FreeShipping,
		CategoryID:       req.CategoryID,
		Condition:        req.Condition,
		Brand:            req.Brand,
		Stock:            req.Stock,
		Sold:             req.Sold,
		SellerName:       req.SellerName,
		SellerReputation: req.SellerReputation,
		SellerLocation:   req.SellerLocation,
		Specs:            req.Specs,
		ActionType:       req.ActionType,
		WhatsappNumber:   req.WhatsappNumber,
	}
	overrides, err := parseDisplayOverrides(req.DisplayOverrides)
	if err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	input.DisplayOverrides = overrides

	product, err := h.ProductService.Update(id, input)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, product)
}

// UpdateProductDisplayOverrides replaces the product's override map.
func (h *Handler) UpdateProductDisplayOverrides(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var body struct {
		DisplayOverrides json.RawMessage `json:"display_overrides"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	overrides, err := parseDisplayOverrides(body.DisplayOverrides)
	if err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	product, err := h.ProductService.UpdateDisplayOverrides(id, overrides)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes a product with everything referencing it.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}

// parseDisplayOverrides reads the raw display_overrides fragment. An
// absent key and an explicit null both yield a nil map, which clears
// the column.
func parseDisplayOverrides(raw json.RawMessage) (models.BoolMap, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	var overrides models.BoolMap
	if err := json.Unmarshal(raw, &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

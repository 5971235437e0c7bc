package public

import (
	"strconv"
	"strings"

	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/gin-gonic/gin"
)

const defaultProductListLimit = 50

// GetCategories returns the flat category list.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, categories)
}

// GetCategoryTree returns the category forest with product counts.
func (h *Handler) GetCategoryTree(c *gin.Context) {
	tree, err := h.CategoryService.Tree()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, tree)
}

// GetParentCategories returns root categories only.
func (h *Handler) GetParentCategories(c *gin.Context) {
	parents, err := h.CategoryService.ListParents()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, parents)
}

// GetProducts searches the catalog.
func (h *Handler) GetProducts(c *gin.Context) {
	filter := repository.ProductListFilter{
		Brand:        strings.TrimSpace(c.Query("brand")),
		Condition:    strings.TrimSpace(c.Query("condition")),
		Search:       strings.TrimSpace(c.Query("search")),
		Sort:         strings.TrimSpace(c.Query("sort")),
		Limit:        defaultProductListLimit,
		WithCategory: true,
	}
	if raw := c.Query("category"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.CategoryID = uint(id)
		}
	}
	if raw := c.Query("min_price"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &value
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &value
		}
	}
	if raw := c.Query("free_shipping"); raw != "" {
		value := raw == "true" || raw == "1"
		filter.FreeShipping = &value
	}
	if raw := c.Query("limit"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			filter.Limit = value
		}
	}

	products, _, err := h.ProductService.List(filter)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	global, err := h.DisplaySettingService.GlobalMap()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, toProductPayloads(products, global))
}

// GetProduct returns one product with its resolved display settings.
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

	effective, err := h.DisplaySettingService.EffectiveFor(product)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, toProductPayload(product, effective))
}

type trackViewRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	UserID    *uint  `json:"user_id"`
}

// TrackProductView records one view event for the also-viewed signal.
func (h *Handler) TrackProductView(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req trackViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	if err := h.ProductService.TrackView(id, req.SessionID, req.UserID); err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}

// GetRelatedProducts returns same-category best sellers.
func (h *Handler) GetRelatedProducts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	products, err := h.RecommendationService.Related(id)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, toProductPayloads(products, nil))
}

// GetSuggestedProducts returns cross-category price-affine products.
func (h *Handler) GetSuggestedProducts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	products, err := h.RecommendationService.Suggested(id)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, toProductPayloads(products, nil))
}

// GetAlsoViewedProducts returns co-viewed products with best-seller
// backfill.
func (h *Handler) GetAlsoViewedProducts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	products, err := h.RecommendationService.AlsoViewed(id)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, toProductPayloads(products, nil))
}

// GetDisplaySettings returns the global display flags as a flat map.
func (h *Handler) GetDisplaySettings(c *gin.Context) {
	global, err := h.DisplaySettingService.GlobalMap()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, global)
}

// pathID parses the :id path parameter, responding on failure.
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		return 0, false
	}
	return uint(id), true
}

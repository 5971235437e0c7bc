package public

import (
	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the customer's cart with products.
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := shared.GetContextUintWithKeys(c, "user_id", "error.unauthorized", "error.internal")
	if !ok {
		return
	}

	items, err := h.CartService.List(userID)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, items)
}

// AddCartItem puts a product in the cart, merging repeated adds.
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, ok := shared.GetContextUintWithKeys(c, "user_id", "error.unauthorized", "error.internal")
	if !ok {
		return
	}

	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.CartService.Add(userID, req.ProductID, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, item)
}

// UpdateCartItem sets the quantity of one cart line. Zero removes the
// line, mirroring the storefront's stepper hitting zero.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	userID, ok := shared.GetContextUintWithKeys(c, "user_id", "error.unauthorized", "error.internal")
	if !ok {
		return
	}
	itemID, ok := pathID(c)
	if !ok {
		return
	}

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	item, err := h.CartService.UpdateQuantity(userID, itemID, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, item)
}

// RemoveCartItem deletes one cart line.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := shared.GetContextUintWithKeys(c, "user_id", "error.unauthorized", "error.internal")
	if !ok {
		return
	}
	itemID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.CartService.Remove(userID, itemID); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}

// ClearCart empties the customer's cart.
func (h *Handler) ClearCart(c *gin.Context) {
	userID, ok := shared.GetContextUintWithKeys(c, "user_id", "error.unauthorized", "error.internal")
	if !ok {
		return
	}

	if err := h.CartService.Clear(userID); err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, nil)
}

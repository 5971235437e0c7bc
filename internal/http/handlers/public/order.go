package public

import (
	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListOrders returns the customer's orders, newest first.
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := shared.GetContextUintWithKeys(c, "user_id", "error.unauthorized", "error.internal")
	if !ok {
		return
	}

	orders, err := h.OrderService.ListByUser(userID)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, orders)
}

// Checkout turns the cart into an order in one transaction.
func (h *Handler) Checkout(c *gin.Context) {
	userID, ok := shared.GetContextUintWithKeys(c, "user_id", "error.unauthorized", "error.internal")
	if !ok {
		return
	}

	order, err := h.OrderService.Checkout(userID)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, order)
}

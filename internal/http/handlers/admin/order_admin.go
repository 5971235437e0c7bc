package admin

import (
	"strconv"
	"strings"

	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/gin-gonic/gin"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders returns orders for the back office.
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.List(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
		Search:   strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetOrder returns one order with its items.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatus moves an order through its lifecycle.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	order, err := h.OrderService.UpdateStatus(id, req.Status)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, order)
}

package admin

import (
	"strconv"
	"strings"

	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListUsers returns shopper accounts with order and review counts.
func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	users, total, err := h.UserService.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, users, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetUser returns one shopper with their order history.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	detail, err := h.UserService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, detail)
}

// DeleteUser removes a shopper together with their orders, reviews and
// cart in one transaction.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.UserService.Delete(id); err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}

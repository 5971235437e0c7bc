package admin

import (
	"strconv"
	"strings"

	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/gin-gonic/gin"
)

type updateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListQuotes returns quote requests for the back office.
func (h *Handler) ListQuotes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	quotes, total, err := h.QuoteService.List(repository.QuoteListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, quotes, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// UpdateQuoteStatus moves a quote through its follow-up pipeline.
func (h *Handler) UpdateQuoteStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	quote, err := h.QuoteService.UpdateStatus(id, req.Status)
	if err != nil {
		respondWithMappedError(c, err, quoteErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, quote)
}

// DeleteQuote removes a quote request.
func (h *Handler) DeleteQuote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.QuoteService.Delete(id); err != nil {
		respondWithMappedError(c, err, quoteErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}

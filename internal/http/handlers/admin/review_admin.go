package admin

import (
	"strconv"

	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListReviews returns reviews for moderation, optionally narrowed to
// one product.
func (h *Handler) ListReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	filter := repository.ReviewListFilter{Page: page, PageSize: pageSize}
	if raw := c.Query("product_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.ProductID = uint(id)
		}
	}

	reviews, total, err := h.ReviewService.List(filter)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, reviews, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// DeleteReview removes a review and recomputes the product rating.
func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ReviewService.Delete(id); err != nil {
		respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}

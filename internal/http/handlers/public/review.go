package public

import (
	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/service"

	"github.com/gin-gonic/gin"
)

type createReviewRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// ListProductReviews returns a product's reviews.
func (h *Handler) ListProductReviews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	reviews, err := h.ReviewService.ListByProduct(id)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, reviews)
}

// CreateReview files a review and refreshes the product rating.
func (h *Handler) CreateReview(c *gin.Context) {
	userID, ok := shared.GetContextUintWithKeys(c, "user_id", "error.unauthorized", "error.internal")
	if !ok {
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	review, err := h.ReviewService.Create(service.CreateReviewInput{
		ProductID: req.ProductID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, review)
}

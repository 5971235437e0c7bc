package public

import (
	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/service"

	"github.com/gin-gonic/gin"
)

type createQuoteRequest struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	Message       string `json:"message"`
}

// CreateQuote files a quote request for a quote-only product.
func (h *Handler) CreateQuote(c *gin.Context) {
	var req createQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	quote, err := h.QuoteService.Create(service.CreateQuoteInput{
		ProductID:     req.ProductID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Message:       req.Message,
	})
	if err != nil {
		respondWithMappedError(c, err, quoteErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, quote)
}

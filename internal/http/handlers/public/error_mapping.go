package public

import (
	"errors"

	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds a service sentinel to a response code and
// catalog key.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			shared.RespondError(c, rule.code, rule.key, nil)
			return
		}
	}
	shared.RespondError(c, fallbackCode, fallbackKey, err)
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrEmailTaken, code: response.CodeBadRequest, key: "error.email_taken"},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.invalid_credentials"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
}

var productErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "error.invalid_quantity"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
}

var reviewErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidRating, code: response.CodeBadRequest, key: "error.invalid_rating"},
	{target: service.ErrAlreadyReviewed, code: response.CodeBadRequest, key: "error.already_reviewed"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var quoteErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var blogErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.post_not_found"},
}

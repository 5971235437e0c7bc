package admin

import (
	"errors"
	"strconv"

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

var categoryErrorRules = []mappedHandlerError{
	{target: service.ErrSlugExists, code: response.CodeBadRequest, key: "error.slug_taken"},
	{target: service.ErrSelfParent, code: response.CodeBadRequest, key: "error.self_parent"},
	{target: service.ErrParentNotFound, code: response.CodeBadRequest, key: "error.parent_not_found"},
	{target: service.ErrCategoryInUse, code: response.CodeBadRequest, key: "error.category_in_use"},
	{target: service.ErrCategoryHasChildren, code: response.CodeBadRequest, key: "error.category_has_children"},
	{target: service.ErrNothingToUpdate, code: response.CodeBadRequest, key: "error.nothing_to_update"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.category_not_found"},
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, key: "error.category_not_found"},
}

var productErrorRules = []mappedHandlerError{
	{target: service.ErrCategoryNotFound, code: response.CodeBadRequest, key: "error.category_not_found"},
	{target: service.ErrNothingToUpdate, code: response.CodeBadRequest, key: "error.nothing_to_update"},
	{target: service.ErrInvalidStatus, code: response.CodeBadRequest, key: "error.invalid_status"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidStatus, code: response.CodeBadRequest, key: "error.invalid_status"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
}

var userErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
}

var reviewErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.review_not_found"},
}

var quoteErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidStatus, code: response.CodeBadRequest, key: "error.invalid_status"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.quote_not_found"},
}

var adminAccountErrorRules = []mappedHandlerError{
	{target: service.ErrEmailTaken, code: response.CodeBadRequest, key: "error.email_taken"},
	{target: service.ErrInvalidStatus, code: response.CodeBadRequest, key: "error.invalid_request"},
	{target: service.ErrSuperAdminProtected, code: response.CodeBadRequest, key: "error.super_admin_protected"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.admin_not_found"},
}

var blogErrorRules = []mappedHandlerError{
	{target: service.ErrSlugExists, code: response.CodeBadRequest, key: "error.slug_taken"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.post_not_found"},
}

var homeErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidStatus, code: response.CodeBadRequest, key: "error.invalid_request"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
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
